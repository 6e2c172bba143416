package report

import (
	"bufio"
	"io"
	"strings"

	"field-inspector/internal/inspect"
)

// PublicFieldsHeader follows the qualified name of every participant.
const PublicFieldsHeader = "Public Fields:"

// Text renders the nested plain text report.
type Text struct{}

// Render writes every participant of r in report order.
func (Text) Render(w io.Writer, r *inspect.Report) error {
	bw := bufio.NewWriter(w)

	for _, t := range r.Types {
		writeType(bw, t)
	}

	return bw.Flush()
}

// RenderType renders a single participant.
func (Text) RenderType(t inspect.TypeReport) string {
	var sb strings.Builder
	bw := bufio.NewWriter(&sb)
	writeType(bw, t)
	_ = bw.Flush()

	return sb.String()
}

// writeType writes one participant block. Write errors are sticky in
// bufio.Writer and surface on Flush.
func writeType(bw *bufio.Writer, t inspect.TypeReport) {
	line(bw, 0, t.ID.String())
	line(bw, 0, PublicFieldsHeader)

	for _, g := range t.Groups {
		depth := 1
		if !g.IsDefault() {
			line(bw, 1, g.Name+":")
			depth = 2
		}

		for _, f := range g.Fields {
			line(bw, depth, f.TypeName+": "+f.Name)

			for _, opt := range f.Options {
				line(bw, 3, opt)
			}
		}

		_ = bw.WriteByte('\n')
	}
}

func line(bw *bufio.Writer, depth int, s string) {
	for range depth {
		_ = bw.WriteByte('\t')
	}
	_, _ = bw.WriteString(s)
	_ = bw.WriteByte('\n')
}
