package parse

import "github.com/google/shlex"

// Split tokenizes a command line the way a POSIX shell would, honoring
// quoting and escaping.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
