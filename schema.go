package cliargs

import (
	"sort"

	"github.com/napalu/cliargs/types/orderedmap"
)

// Schema is the immutable description of the flags a Parser recognizes.
// Construct one with New or NewSchemaWith; it is never mutated afterwards
// and may be shared freely between parsers and goroutines.
type Schema struct {
	defaults  *orderedmap.OrderedMap[FlagKey, Value]
	longNames *orderedmap.OrderedMap[FlagKey, string]
	required  *orderedmap.OrderedMap[FlagKey, bool]
	help      *orderedmap.OrderedMap[FlagKey, string]
}

// New builds a Schema from cfg. Construction never fails: the caller-supplied
// maps are copied verbatim, keys sorted ascending so every iteration over the
// Schema is deterministic. Unless cfg.DisableAutoHelp is set and no flag is
// registered under HelpKey, a boolean help flag aliased to "help" is injected.
func New(cfg Config) *Schema {
	defaults := make(map[FlagKey]Value, len(cfg.Defaults)+1)
	for k, v := range cfg.Defaults {
		defaults[k] = v
	}
	longNames := make(map[FlagKey]string, len(cfg.LongNames)+1)
	for k, n := range cfg.LongNames {
		longNames[k] = n
	}
	help := make(map[FlagKey]string, len(cfg.Help)+1)
	for k, h := range cfg.Help {
		help[k] = h
	}

	if !cfg.DisableAutoHelp {
		if _, exists := defaults[HelpKey]; !exists {
			defaults[HelpKey] = Bool(false)
			longNames[HelpKey] = helpLongName
			help[HelpKey] = helpHelpText
		}
	}

	if cfg.NameConverter != nil {
		for k, n := range longNames {
			longNames[k] = cfg.NameConverter(n)
		}
	}

	s := &Schema{
		defaults:  orderedmap.NewOrderedMap[FlagKey, Value](),
		longNames: orderedmap.NewOrderedMap[FlagKey, string](),
		required:  orderedmap.NewOrderedMap[FlagKey, bool](),
		help:      orderedmap.NewOrderedMap[FlagKey, string](),
	}

	for _, k := range sortedKeys(defaults) {
		s.defaults.Set(k, defaults[k])
	}
	for _, k := range sortedKeys(longNames) {
		s.longNames.Set(k, longNames[k])
	}
	for _, k := range sortedKeys(help) {
		s.help.Set(k, help[k])
	}

	required := append([]FlagKey(nil), cfg.Required...)
	sort.Slice(required, func(i, j int) bool { return required[i] < required[j] })
	for _, k := range required {
		s.required.Set(k, true)
	}

	return s
}

// Keys returns every recognized FlagKey in ascending order
func (s *Schema) Keys() []FlagKey {
	return s.defaults.Keys()
}

// Default returns the default value registered for key. The Kind of the
// returned Value is the flag's type.
func (s *Schema) Default(key FlagKey) (Value, bool) {
	return s.defaults.Get(key)
}

// LongName returns the long alias registered for key, if any
func (s *Schema) LongName(key FlagKey) (string, bool) {
	return s.longNames.Get(key)
}

// IsRequired reports whether key must appear on the command line
func (s *Schema) IsRequired(key FlagKey) bool {
	_, required := s.required.Get(key)
	return required
}

// RequiredKeys returns the required keys in ascending order
func (s *Schema) RequiredKeys() []FlagKey {
	return s.required.Keys()
}

// HelpText returns the documentation registered for key, if any
func (s *Schema) HelpText(key FlagKey) (string, bool) {
	return s.help.Get(key)
}

func sortedKeys[V any](m map[FlagKey]V) []FlagKey {
	keys := make([]FlagKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}
