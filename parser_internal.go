package cliargs

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/napalu/cliargs/types/queue"
)

// parseTokens walks the token list left to right in a single pass, consuming
// at most one extra token per flag when a value is needed. It stops at the
// first failure.
func (p *Parser) parseTokens(args []string) (map[FlagKey]Value, *ParseError) {
	stream := queue.New[string]()
	for _, arg := range args {
		stream.Enqueue(arg)
	}

	values := make(map[FlagKey]Value, p.schema.defaults.Count())
	seen := make(map[FlagKey]bool, p.schema.defaults.Count())

	for stream.Len() > 0 {
		token, _ := stream.Dequeue()

		// stray positional-looking tokens and the bare markers are
		// silently accepted
		if !strings.HasPrefix(token, "-") || token == "-" || token == "--" {
			continue
		}

		key, inline, hasInline, perr := p.resolveToken(token)
		if perr != nil {
			return nil, perr
		}

		def, known := p.schema.Default(key)
		if !known {
			return nil, newParseError(UnknownArgument, key, token)
		}
		if seen[key] {
			return nil, newParseError(DuplicateArgument, key, "")
		}
		seen[key] = true

		value, perr := p.acquireValue(stream, key, def.Kind(), inline, hasInline)
		if perr != nil {
			return nil, perr
		}
		values[key] = value
	}

	for _, key := range p.schema.RequiredKeys() {
		if !seen[key] {
			longName, _ := p.schema.LongName(key)
			return nil, newParseError(MissingRequiredArgument, key, longName)
		}
	}

	return values, nil
}

// resolveToken classifies a dash-prefixed token into a FlagKey and an
// optional inline "=value" part. Long names resolve by exact match only;
// in a short token everything after the key which is not an inline value is
// dropped.
func (p *Parser) resolveToken(token string) (key FlagKey, inline string, hasInline bool, perr *ParseError) {
	if strings.HasPrefix(token, "--") {
		name := token[2:]
		if pos := strings.IndexByte(name, '='); pos >= 0 {
			inline = name[pos+1:]
			hasInline = true
			name = name[:pos]
		}

		resolved, found := p.lookup[name]
		if !found {
			return 0, "", false, newUnresolvedParseError(UnknownArgument, token)
		}

		return resolved, inline, hasInline, nil
	}

	r, size := utf8.DecodeRuneInString(token[1:])
	key = FlagKey(r)
	if rest := token[1+size:]; strings.HasPrefix(rest, "=") {
		inline = rest[1:]
		hasInline = true
	}

	return key, inline, hasInline, nil
}

// acquireValue picks the literal for a flag - inline value first, then
// presence-implies-true for optional booleans, otherwise the next token -
// and coerces it to the flag's declared kind.
func (p *Parser) acquireValue(stream *queue.Q[string], key FlagKey, kind Kind, inline string, hasInline bool) (Value, *ParseError) {
	if hasInline {
		return p.coerceValue(key, kind, inline)
	}

	if kind == KindBool {
		if !p.schema.IsRequired(key) {
			return Bool(true), nil
		}

		// required booleans need an explicit true/false token
		literal, ok := stream.Dequeue()
		if !ok {
			return Value{}, newParseError(MissingValue, key, "required boolean needs explicit value")
		}

		return p.coerceValue(key, kind, literal)
	}

	literal, ok := stream.Dequeue()
	if !ok {
		return Value{}, newParseError(MissingValue, key, "")
	}

	return p.coerceValue(key, kind, literal)
}

// coerceValue converts a literal to the flag's declared kind. The dispatch is
// total: a kind outside the closed set reports TypeMismatch.
func (p *Parser) coerceValue(key FlagKey, kind Kind, literal string) (Value, *ParseError) {
	switch kind {
	case KindBool:
		switch literal {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}

		return Value{}, newParseError(InvalidBooleanValue, key, literal)
	case KindInt:
		// base-10 signed, full token; a leading '+' is not accepted
		if strings.HasPrefix(literal, "+") {
			return Value{}, newParseError(InvalidIntegerValue, key, literal)
		}
		number, err := strconv.Atoi(literal)
		if err != nil {
			return Value{}, newParseError(InvalidIntegerValue, key, literal)
		}

		return Int(number), nil
	case KindString:
		return String(literal), nil
	}

	return Value{}, newParseError(TypeMismatch, key, "")
}
