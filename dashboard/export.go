// SPDX-License-Identifier: MIT

package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatJSON   = "json"
	FormatPretty = "pretty"
	FormatYAML   = "yaml"
)

// ErrUnknownFormat is returned by Export for an unsupported format name.
var ErrUnknownFormat = errors.New("dashboard: unknown export format")

// Export writes d to w as compact JSON, indented JSON or YAML.
func Export(w io.Writer, d Dashboard, format string) error {
	switch format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(d)
	case FormatPretty:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
