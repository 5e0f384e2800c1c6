package cliargs

import (
	"github.com/napalu/cliargs/types/orderedmap"
)

// Result holds the outcome of a successful parse: the schema's defaults
// overlaid with every value actually seen on the command line. It contains
// an entry for every declared FlagKey, in ascending key order.
type Result struct {
	values *orderedmap.OrderedMap[FlagKey, Value]
}

func newResult(schema *Schema, parsed map[FlagKey]Value) *Result {
	values := orderedmap.NewOrderedMap[FlagKey, Value]()
	schema.defaults.ForEach(func(key FlagKey, def Value) bool {
		if value, ok := parsed[key]; ok {
			values.Set(key, value)
		} else {
			values.Set(key, def)
		}
		return true
	})

	return &Result{values: values}
}

// Get returns the value parsed (or defaulted) for key
func (r *Result) Get(key FlagKey) (Value, bool) {
	return r.values.Get(key)
}

// GetInt returns the integer value for key. The second return value is false
// when key is unknown or holds a different variant.
func (r *Result) GetInt(key FlagKey) (int, bool) {
	value, ok := r.values.Get(key)
	if !ok {
		return 0, false
	}

	return value.AsInt()
}

// GetBool returns the boolean value for key. The second return value is false
// when key is unknown or holds a different variant.
func (r *Result) GetBool(key FlagKey) (bool, bool) {
	value, ok := r.values.Get(key)
	if !ok {
		return false, false
	}

	return value.AsBool()
}

// GetString returns the text value for key. The second return value is false
// when key is unknown or holds a different variant.
func (r *Result) GetString(key FlagKey) (string, bool) {
	value, ok := r.values.Get(key)
	if !ok {
		return "", false
	}

	return value.AsString()
}

// Len returns the number of entries in the Result
func (r *Result) Len() int {
	return r.values.Count()
}

// ForEach iterates over the entries in ascending key order. Returning false
// from the callback stops the iteration early.
func (r *Result) ForEach(callback func(key FlagKey, value Value) bool) {
	r.values.ForEach(callback)
}
