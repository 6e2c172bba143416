package report

import (
	"fmt"
	"io"

	"field-inspector/internal/inspect"
)

// Renderer writes a report to w.
type Renderer interface {
	Render(w io.Writer, r *inspect.Report) error
}

// Format names an output format.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
)

// New returns the renderer for format.
func New(format Format) (Renderer, error) {
	switch format {
	case FormatText, "":
		return Text{}, nil
	case FormatTable:
		return Table{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}
