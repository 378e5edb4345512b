// Package render turns computed layouts into output artifacts.
//
// The layout engine guarantees geometry only; this package is a set of
// sinks over that geometry. The SVG sink exists for debugging and sharing,
// not for exact-fidelity client rendering - the application's own renderer
// consumes the layout JSON directly.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/danehlert/courtline/pkg/draw/layout"
	"github.com/danehlert/courtline/pkg/draw/standings"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatSVG:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, svg)", format)
	}
	return nil
}

// Layout renders a layout in the given format.
func Layout(l layout.Layout, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(l), nil
	case FormatJSON:
		return marshalIndent(l)
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}

// Standings renders a standings table as indented JSON. Only JSON is
// supported; the CLI renders its own terminal table.
func Standings(rows []standings.Standing, format string) ([]byte, error) {
	if format != FormatJSON {
		return nil, fmt.Errorf("standings only support json output, got %q", format)
	}
	return marshalIndent(rows)
}

func marshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
