package cliargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_AutoHelpInjection(t *testing.T) {
	schema := New(Config{Defaults: map[FlagKey]Value{'n': Int(5)}})

	def, ok := schema.Default(HelpKey)
	require.True(t, ok, "auto-help should register a flag under HelpKey")
	assert.Equal(t, KindBool, def.Kind())

	longName, ok := schema.LongName(HelpKey)
	require.True(t, ok)
	assert.Equal(t, "help", longName)

	text, ok := schema.HelpText(HelpKey)
	require.True(t, ok)
	assert.Equal(t, "Show this help message", text)
}

func TestSchema_AutoHelpKeepsCallerFlag(t *testing.T) {
	schema := New(Config{
		Defaults:  map[FlagKey]Value{'h': Int(1)},
		LongNames: map[FlagKey]string{'h': "height"},
	})

	def, ok := schema.Default('h')
	require.True(t, ok)
	assert.Equal(t, KindInt, def.Kind(), "a caller-supplied 'h' flag should never be overwritten")

	longName, _ := schema.LongName('h')
	assert.Equal(t, "height", longName)
}

func TestSchema_DisableAutoHelp(t *testing.T) {
	schema := New(Config{
		Defaults:        map[FlagKey]Value{'n': Int(5)},
		DisableAutoHelp: true,
	})

	_, ok := schema.Default(HelpKey)
	assert.False(t, ok)
	assert.Equal(t, []FlagKey{'n'}, schema.Keys())
}

func TestSchema_KeysAscending(t *testing.T) {
	schema := New(Config{
		Defaults: map[FlagKey]Value{
			'z': Int(0),
			'a': Bool(false),
			'm': String(""),
		},
		Required:        []FlagKey{'z', 'a'},
		DisableAutoHelp: true,
	})

	assert.Equal(t, []FlagKey{'a', 'm', 'z'}, schema.Keys())
	assert.Equal(t, []FlagKey{'a', 'z'}, schema.RequiredKeys(),
		"required keys should iterate in ascending order")
}

func TestSchema_NameConverter(t *testing.T) {
	schema := New(Config{
		Defaults:      map[FlagKey]Value{'c': Int(1)},
		LongNames:     map[FlagKey]string{'c': "MaxCount"},
		NameConverter: ToKebabCase,
	})

	longName, ok := schema.LongName('c')
	require.True(t, ok)
	assert.Equal(t, "max-count", longName)

	parser := NewParser(schema)
	result, err := parser.Parse([]string{"--max-count", "3"})
	require.NoError(t, err)

	count, _ := result.GetInt('c')
	assert.Equal(t, 3, count)
}

func TestNewSchemaWith(t *testing.T) {
	schema, err := NewSchemaWith(
		WithFlag('n', NewFlag(
			WithDefault(Int(5)),
			WithLongName("number"),
			WithHelpText("number of items"))),
		WithFlag('v', NewFlag(
			WithDefault(Bool(false)),
			SetRequired(true))))
	require.NoError(t, err)
	require.NotNil(t, schema)

	def, ok := schema.Default('n')
	require.True(t, ok)
	number, _ := def.AsInt()
	assert.Equal(t, 5, number)

	longName, _ := schema.LongName('n')
	assert.Equal(t, "number", longName)
	assert.True(t, schema.IsRequired('v'))
	assert.False(t, schema.IsRequired('n'))

	text, _ := schema.HelpText('n')
	assert.Equal(t, "number of items", text)
}

func TestNewSchemaWith_Errors(t *testing.T) {
	_, err := NewSchemaWith(
		WithFlag('n', NewFlag(WithLongName("number"))))
	assert.ErrorIs(t, err, ErrNoDefaultValue, "a flag without a default has no type")

	_, err = NewSchemaWith(
		WithFlag('n', NewFlag(WithDefault(Int(1)))),
		WithFlag('n', NewFlag(WithDefault(Int(2)))))
	assert.ErrorIs(t, err, ErrFlagDefined)

	_, err = NewSchemaWith(
		WithFlag(0, NewFlag(WithDefault(Int(1)))))
	assert.ErrorIs(t, err, ErrInvalidFlagKey)
}

func TestNewSchemaWith_AutoHelpOption(t *testing.T) {
	schema, err := NewSchemaWith(
		WithFlag('n', NewFlag(WithDefault(Int(5)))),
		WithAutoHelp(false))
	require.NoError(t, err)

	_, ok := schema.Default(HelpKey)
	assert.False(t, ok)
}
