// Copyright 2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package cliargs provides declarative command-line argument parsing.
//
// A Schema describes the recognized flags: each flag is named by a
// single-character FlagKey, carries a typed default value (the default's
// Kind fixes the flag's type), an optional long alias, a required marker and
// optional help text. A Parser turns the raw argument vector into a Result
// mapping every declared key to a Value, or into a structured *ParseError.
//
// Accepted syntaxes are -x, -x value, -x=value, --long, --long value and
// --long=value. Bare "-" and bare "--" are skipped, and any token not
// starting with '-' is ignored wherever it appears. Note that "--" does not
// end option processing: tokens after it are still parsed as flags. This
// deviates from the POSIX end-of-options convention on purpose.
package cliargs

import (
	"github.com/napalu/cliargs/parse"
)

// Parser evaluates argument vectors against an immutable Schema. It holds no
// mutable state: the same Parser may be used concurrently and repeated calls
// with identical input yield identical outcomes.
type Parser struct {
	schema *Schema
	lookup map[string]FlagKey
}

// NewParser creates a Parser for schema
func NewParser(schema *Schema) *Parser {
	lookup := make(map[string]FlagKey, schema.longNames.Count())
	schema.longNames.ForEach(func(key FlagKey, name string) bool {
		lookup[name] = key
		return true
	})

	return &Parser{schema: schema, lookup: lookup}
}

// Schema returns the Schema the Parser was built from
func (p *Parser) Schema() *Schema {
	return p.schema
}

// Parse evaluates args - the process argument vector excluding the program
// name, i.e. os.Args[1:] - and returns a Result covering every declared flag,
// or a *ParseError describing the first failure. Nothing is returned for
// flags parsed before a failing token.
func (p *Parser) Parse(args []string) (*Result, error) {
	values, err := p.parseTokens(args)
	if err != nil {
		return nil, err
	}

	return newResult(p.schema, values), nil
}

// ParseString splits line with shell-style quoting rules and parses the
// resulting tokens.
func (p *Parser) ParseString(line string) (*Result, error) {
	args, err := parse.Split(line)
	if err != nil {
		return nil, err
	}

	return p.Parse(args)
}

// HasHelpRequest reports whether args contains a dedicated help token: the
// short form "-h", or "--help" when the flag registered under HelpKey has
// the long alias "help". The scan covers the whole token list and does not
// require the rest of the line to parse successfully.
func (p *Parser) HasHelpRequest(args []string) bool {
	longName, found := p.schema.LongName(HelpKey)
	matchLong := found && longName == helpLongName

	for _, arg := range args {
		if arg == "-h" {
			return true
		}
		if matchLong && arg == "--help" {
			return true
		}
	}

	return false
}

// HasHelpRequestString splits line with shell-style quoting rules and reports
// whether the resulting tokens contain a help request.
func (p *Parser) HasHelpRequestString(line string) (bool, error) {
	args, err := parse.Split(line)
	if err != nil {
		return false, err
	}

	return p.HasHelpRequest(args), nil
}
