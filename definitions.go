package cliargs

import (
	"errors"
	"strings"

	"github.com/iancoleman/strcase"
)

var (
	ErrNoDefaultValue = errors.New("flag has no default value")
	ErrFlagDefined    = errors.New("flag is already defined")
	ErrInvalidFlagKey = errors.New("invalid flag key")
)

// FlagKey is the single-character identifier naming a recognized flag
type FlagKey rune

// HelpKey is the reserved key under which the auto-help flag is registered
// when a Schema is constructed without one.
const HelpKey FlagKey = 'h'

const (
	helpLongName = "help"
	helpHelpText = "Show this help message"
)

// NameConversionFunc converts a long flag name before it is stored in a Schema
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a long name to kebab case "my-flag-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a long name to snake case "my_flag_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCase converts a long name to lower case "myflagname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}
)

// ConfigureSchemaFunc is used when building a Schema with NewSchemaWith
type ConfigureSchemaFunc func(cfg *Config, err *error)

// ConfigureFlagFunc is used when describing a Flag with NewFlag
type ConfigureFlagFunc func(flag *Flag, err *error)

// Flag describes a single command-line flag. The Kind of Default fixes the
// flag's type for the lifetime of the Schema.
type Flag struct {
	Default  Value
	LongName string
	Required bool
	HelpText string
}

// Config describes a complete Schema. Defaults defines the set of recognized
// flags and their types; LongNames, Required and Help refer back to keys in
// Defaults. The zero value of DisableAutoHelp keeps the auto-help flag on.
type Config struct {
	Defaults        map[FlagKey]Value
	LongNames       map[FlagKey]string
	Required        []FlagKey
	Help            map[FlagKey]string
	DisableAutoHelp bool
	NameConverter   NameConversionFunc
}
