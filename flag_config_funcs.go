package cliargs

// NewFlag convenience initialization method to describe a Flag using option
// functions.
func NewFlag(configs ...ConfigureFlagFunc) *Flag {
	flag := &Flag{}
	for _, config := range configs {
		config(flag, nil)
	}

	return flag
}

// WithDefault sets the flag's default value. The Kind of the value fixes the
// flag's type for the lifetime of the Schema.
func WithDefault(value Value) ConfigureFlagFunc {
	return func(flag *Flag, err *error) {
		flag.Default = value
	}
}

// WithLongName sets the flag's long alias ("--name" form)
func WithLongName(name string) ConfigureFlagFunc {
	return func(flag *Flag, err *error) {
		flag.LongName = name
	}
}

// SetRequired marks the flag as mandatory. A required boolean flag must be
// given an explicit "true" or "false" token, presence alone is not enough.
func SetRequired(required bool) ConfigureFlagFunc {
	return func(flag *Flag, err *error) {
		flag.Required = required
	}
}

// WithHelpText sets the flag's documentation used by the renderer
func WithHelpText(text string) ConfigureFlagFunc {
	return func(flag *Flag, err *error) {
		flag.HelpText = text
	}
}
