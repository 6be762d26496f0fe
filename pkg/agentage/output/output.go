// Package output renders CLI results as tables, JSON, or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatWide  Format = "wide"
)

// ParseFormat maps a --output flag or AGENTAGE_OUTPUT value to a Format.
// The empty string selects the table format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML, FormatWide:
		return Format(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// WriteObject serializes obj in the structured formats. Table and wide
// output go through the typed table writers instead.
func WriteObject(w io.Writer, format Format, obj any) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(obj)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatTable, FormatWide:
		return fmt.Errorf("%s output requires a dedicated table writer", format)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
