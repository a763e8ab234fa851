package ui

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Row is one line of a status table
type Row struct {
	Status FileStatus
	Path   string
	Detail string
}

// RenderTable writes rows as a compact table
func RenderTable(w io.Writer, rows []Row) error {
	table := tablewriter.NewWriter(w)
	table.Header("State", "Path", "Detail")

	for _, r := range rows {
		if err := table.Append(r.Status.String(), r.Path, r.Detail); err != nil {
			return err
		}
	}

	return table.Render()
}
