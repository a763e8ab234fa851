package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/megadvc/cmd/ui"
	"github.com/utkarsh5026/megadvc/pkg/repository/megarepo"
)

func newStatusCmd() *cobra.Command {
	var useTable bool
	var noWrite bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Re-scan the directory and show what changed",
		Long: `Re-scan the working tree and compare it with the last recorded snapshot.
Shows staged files, then moved, added and deleted files. The new snapshot is
recorded unless --no-write is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository()
			if err != nil {
				return err
			}

			st, err := repo.Status(cmd.Context(), megarepo.StatusOptions{Persist: !noWrite})
			if err != nil {
				return err
			}

			if useTable {
				return ui.RenderTable(cmd.OutOrStdout(), statusRows(st))
			}
			displayStatus(cmd.OutOrStdout(), st)
			return nil
		},
	}

	cmd.Flags().BoolVar(&useTable, "table", false, "Display changes as a table")
	cmd.Flags().BoolVar(&noWrite, "no-write", false, "Do not record the new snapshot")

	return cmd
}

func statusRows(st *megarepo.Status) []ui.Row {
	var rows []ui.Row
	for _, p := range st.Staged {
		rows = append(rows, ui.Row{Status: ui.StatusStaged, Path: p})
	}
	for _, p := range st.ToRemove {
		rows = append(rows, ui.Row{Status: ui.StatusToRemove, Path: p})
	}
	for _, m := range st.Diff.Moved {
		rows = append(rows, ui.Row{Status: ui.StatusMoved, Path: m.To, Detail: "from " + m.From})
	}
	for _, p := range st.Diff.Added {
		rows = append(rows, ui.Row{Status: ui.StatusAdded, Path: p})
	}
	for _, p := range st.Diff.Deleted {
		rows = append(rows, ui.Row{Status: ui.StatusDeleted, Path: p})
	}
	return rows
}

func displayStatus(w io.Writer, st *megarepo.Status) {
	fmt.Fprintln(w, ui.Header(" Repository Status "))
	fmt.Fprintf(w, "%s %s\n", ui.Cyan(ui.IconRemote), ui.Blue("Remote: "+st.Remote))
	fmt.Fprintf(w, "%s %s\n\n", ui.Cyan(ui.IconLocal), ui.Gray(fmt.Sprintf("generation %d -> %d", st.PreviousGeneration, st.Generation)))

	section := func(title string, paths []string, status ui.FileStatus) {
		if len(paths) == 0 {
			return
		}
		fmt.Fprintln(w, ui.Section(title))
		for _, p := range paths {
			fmt.Fprintln(w, ui.FormatFileStatus(status, p))
		}
		fmt.Fprintln(w)
	}

	section("Staged for push:", st.Staged, ui.StatusStaged)
	section("Staged for removal:", st.ToRemove, ui.StatusToRemove)

	if len(st.Diff.Moved) > 0 {
		fmt.Fprintln(w, ui.Section("Moved:"))
		for _, m := range st.Diff.Moved {
			fmt.Fprintln(w, ui.FormatMove(m.From, m.To))
		}
		fmt.Fprintln(w)
	}

	section("Added:", st.Diff.Added, ui.StatusAdded)
	section("Deleted:", st.Diff.Deleted, ui.StatusDeleted)

	if st.Diff.Empty() {
		fmt.Fprintln(w, ui.Green(fmt.Sprintf("  %s  No changes since last scan (%d files)", ui.IconCheck, st.Diff.Unchanged)))
	}
}
