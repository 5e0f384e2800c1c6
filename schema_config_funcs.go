package cliargs

import "fmt"

// NewSchemaWith allows building a Schema using option functions. The caller
// should always test for error on return because the Schema will be nil when
// a configuration function fails.
//
// Configuration example:
//
//	schema, err := NewSchemaWith(
//		WithFlag('n', NewFlag(
//			WithDefault(Int(5)),
//			WithLongName("number"),
//			WithHelpText("number of items"))),
//		WithFlag('v', NewFlag(
//			WithDefault(Bool(false)),
//			WithLongName("verbose"),
//			SetRequired(true))))
func NewSchemaWith(configs ...ConfigureSchemaFunc) (*Schema, error) {
	cfg := Config{
		Defaults:  map[FlagKey]Value{},
		LongNames: map[FlagKey]string{},
		Help:      map[FlagKey]string{},
	}

	var err error
	for _, config := range configs {
		config(&cfg, &err)
		if err != nil {
			return nil, err
		}
	}

	return New(cfg), nil
}

// WithFlag registers a flag under key. The flag must carry a default value
// since the default's Kind fixes the flag's type.
func WithFlag(key FlagKey, flag *Flag) ConfigureSchemaFunc {
	return func(cfg *Config, err *error) {
		if key == 0 {
			*err = fmt.Errorf("%w: %q", ErrInvalidFlagKey, key)
			return
		}
		if _, exists := cfg.Defaults[key]; exists {
			*err = fmt.Errorf("%w: -%c", ErrFlagDefined, key)
			return
		}
		if flag.Default.Kind() == KindInvalid {
			*err = fmt.Errorf("%w: -%c", ErrNoDefaultValue, key)
			return
		}

		cfg.Defaults[key] = flag.Default
		if flag.LongName != "" {
			cfg.LongNames[key] = flag.LongName
		}
		if flag.Required {
			cfg.Required = append(cfg.Required, key)
		}
		if flag.HelpText != "" {
			cfg.Help[key] = flag.HelpText
		}
	}
}

// WithAutoHelp toggles injection of the auto-help flag under HelpKey
func WithAutoHelp(enabled bool) ConfigureSchemaFunc {
	return func(cfg *Config, err *error) {
		cfg.DisableAutoHelp = !enabled
	}
}

// WithNameConverter sets a conversion applied to every long name once at
// construction, e.g. ToKebabCase to accept Go-style names in WithLongName.
func WithNameConverter(converter NameConversionFunc) ConfigureSchemaFunc {
	return func(cfg *Config, err *error) {
		cfg.NameConverter = converter
	}
}
