package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"field-inspector/internal/inspect"
)

// Table renders one row per editable field.
type Table struct{}

// Render writes r as a borderless table with a participant count footer.
// Only the Type column is merged; a group label is printed on the first row
// of its group.
func (Table) Render(w io.Writer, r *inspect.Report) error {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Type", "Group", "Field", "Field Type", "Options"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoMergeCellsByColumnIndex([]int{0})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	fields := 0
	for _, t := range r.Types {
		for _, g := range t.Groups {
			group := g.Name
			if g.IsDefault() {
				group = ""
			}

			for i, f := range g.Fields {
				label := group
				if i > 0 {
					label = ""
				}

				table.Append([]string{t.ID.String(), label, f.Name, f.TypeName, strings.Join(f.Options, ", ")})
				fields++
			}
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Types %d", len(r.Types)),
		"", "", "",
		fmt.Sprintf("%d fields", fields),
	})
	table.Render()

	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	return nil
}
