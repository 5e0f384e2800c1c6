package cliargs

import (
	"fmt"
	"os"
	"strings"

	"github.com/napalu/cliargs/util"
)

const (
	// column where flag descriptions start
	descriptionColumn = 28
	// width used when stdout is not a terminal
	defaultUsageWidth = 80
)

// DefaultRenderer formats a Schema as help text. The core never renders help
// itself; callers pair this with Parser.HasHelpRequest.
type DefaultRenderer struct {
	schema *Schema
	width  int
}

// NewRenderer creates a renderer sized to the terminal attached to stdout,
// falling back to a width of 80 columns.
func NewRenderer(schema *Schema) *DefaultRenderer {
	width := util.TerminalWidth(int(os.Stdout.Fd()))
	if width == 0 {
		width = defaultUsageWidth
	}

	return NewRendererWithWidth(schema, width)
}

// NewRendererWithWidth creates a renderer wrapping output at width columns
func NewRendererWithWidth(schema *Schema, width int) *DefaultRenderer {
	return &DefaultRenderer{schema: schema, width: width}
}

// Usage renders the full usage block for programName, one line (or more, when
// wrapped) per flag in ascending key order.
func (r *DefaultRenderer) Usage(programName string) string {
	var sb strings.Builder

	sb.WriteString("Usage: " + programName + " [OPTIONS]\n\nOptions:\n")
	for _, key := range r.schema.Keys() {
		sb.WriteString(r.FlagUsage(key))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// FlagUsage renders the help line for a single flag: short form, long alias
// when present, help text and a default/required annotation.
func (r *DefaultRenderer) FlagUsage(key FlagKey) string {
	head := "  -" + string(key)
	if longName, ok := r.schema.LongName(key); ok {
		head += ", --" + longName
	}

	description := strings.TrimSpace(r.description(key) + " " + r.annotation(key))
	if description == "" {
		return head
	}

	if len(head) < descriptionColumn {
		head += strings.Repeat(" ", descriptionColumn-len(head))
	} else {
		head += " "
	}

	lines := wrapText(description, r.width-descriptionColumn)
	var sb strings.Builder
	sb.WriteString(head + lines[0])
	for _, line := range lines[1:] {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", descriptionColumn) + line)
	}

	return sb.String()
}

func (r *DefaultRenderer) description(key FlagKey) string {
	text, _ := r.schema.HelpText(key)
	return text
}

// annotation mirrors what the parser will do with the flag: required flags
// take no default, boolean defaults and empty string defaults stay unprinted.
func (r *DefaultRenderer) annotation(key FlagKey) string {
	def, ok := r.schema.Default(key)
	if !ok {
		return ""
	}

	if r.schema.IsRequired(key) {
		return "(required)"
	}

	switch def.Kind() {
	case KindInt:
		return fmt.Sprintf("(default: %s)", def.String())
	case KindString:
		if text, _ := def.AsString(); text != "" {
			return fmt.Sprintf("(default: %q)", text)
		}
	}

	return ""
}

// wrapText greedily wraps text into lines of at most width columns. Words
// longer than width are emitted on their own line rather than split.
func wrapText(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}

	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}

	return lines
}
