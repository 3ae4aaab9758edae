// Package output renders command results as an aligned table, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"tamilwords/internal/errors"
)

// Format selects how results are written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts table, json or yaml in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", errors.NewValidationError("output", s, "format", "must be one of table, json, yaml")
	}
}

// Printer writes results in one format.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a printer for w.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// Format returns the printer's format.
func (p *Printer) Format() Format {
	return p.format
}

// Print writes v. In table format the table callback draws the rows; v is
// only serialized for json and yaml.
func (p *Printer) Print(v any, table func(tw *tabwriter.Writer)) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case FormatYAML:
		return p.printYAML(v)
	default:
		tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
		table(tw)
		return tw.Flush()
	}
}

// printYAML goes through JSON first so field names follow the API's json tags.
func (p *Printer) printYAML(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}

// Row writes tab-separated cells followed by a newline.
func Row(tw io.Writer, cells ...any) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, Cell(c))
	}
	fmt.Fprintln(tw)
}

// Cell formats optional API fields; nil pointers render as "-".
func Cell(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case *string:
		if x == nil {
			return "-"
		}
		return *x
	case *int:
		if x == nil {
			return "-"
		}
		return fmt.Sprint(*x)
	case string:
		if x == "" {
			return "-"
		}
		return x
	default:
		return fmt.Sprint(x)
	}
}
