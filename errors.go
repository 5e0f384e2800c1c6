package cliargs

// ErrorKind names the failure conditions Parse can report. The taxonomy is
// closed; consumers are expected to switch over it exhaustively.
type ErrorKind int

const (
	// UnknownArgument - the token resolved to no recognized flag
	UnknownArgument ErrorKind = iota
	// MissingRequiredArgument - a required flag never appeared
	MissingRequiredArgument
	// MissingValue - a flag needed a value and the token list ran out
	MissingValue
	// InvalidBooleanValue - a boolean literal other than "true" or "false"
	InvalidBooleanValue
	// InvalidIntegerValue - a literal which is not a full base-10 signed integer
	InvalidIntegerValue
	// TypeMismatch - a flag default carries a variant the coercion dispatch
	// does not recognize; unreachable for schemas built from Int/Bool/String
	TypeMismatch
	// DuplicateArgument - the same flag appeared twice in one invocation
	DuplicateArgument
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownArgument:
		return "unknown argument"
	case MissingRequiredArgument:
		return "missing required argument"
	case MissingValue:
		return "missing value for argument"
	case InvalidBooleanValue:
		return "invalid boolean value (expected 'true' or 'false')"
	case InvalidIntegerValue:
		return "invalid integer value"
	case TypeMismatch:
		return "type mismatch"
	case DuplicateArgument:
		return "duplicate argument"
	}

	return "unknown error"
}

// ParseError describes a single parse failure. Key is nil when the offending
// token could not be resolved to a flag at all, e.g. an unknown long option.
// Detail carries the raw offending token or, for a missing required flag,
// its long name when one exists.
type ParseError struct {
	Kind   ErrorKind
	Key    *FlagKey
	Detail string
}

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Key != nil {
		msg += " for '-" + string(*e.Key) + "'"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

func newParseError(kind ErrorKind, key FlagKey, detail string) *ParseError {
	return &ParseError{Kind: kind, Key: &key, Detail: detail}
}

func newUnresolvedParseError(kind ErrorKind, detail string) *ParseError {
	return &ParseError{Kind: kind, Detail: detail}
}
