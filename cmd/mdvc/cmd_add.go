package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/megadvc/cmd/ui"
	"github.com/utkarsh5026/megadvc/pkg/repository/megarepo"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <file>...",
		Short: "Stage files for the next push",
		Long: `Queue files to be uploaded by the next push.
Every file must exist inside the repository; if one does not, nothing is staged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository()
			if err != nil {
				return err
			}

			res, err := repo.Add(resolveArgs(args))
			if err != nil {
				return err
			}

			printStageResult(cmd, res, ui.StatusStaged, "staged for push")
			return nil
		},
	}

	return cmd
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <file>...",
		Aliases: []string{"rm"},
		Short:   "Stage files for removal from the remote",
		Long: `Queue files to be deleted from the remote by the next push.
A file staged for both push and removal is neither pushed nor removed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository()
			if err != nil {
				return err
			}

			res, err := repo.Remove(resolveArgs(args))
			if err != nil {
				return err
			}

			printStageResult(cmd, res, ui.StatusToRemove, "staged for removal")
			return nil
		},
	}

	return cmd
}

func printStageResult(cmd *cobra.Command, res *megarepo.StageResult, status ui.FileStatus, what string) {
	out := cmd.OutOrStdout()
	for _, p := range res.Staged {
		fmt.Fprintln(out, ui.FormatFileStatus(status, p))
	}
	for _, p := range res.Unchanged {
		fmt.Fprintln(out, ui.WarningMessage(fmt.Sprintf("  already %s: %s", what, p)))
	}
	fmt.Fprintln(out, ui.SuccessMessage(fmt.Sprintf("%d file(s) %s", len(res.Staged), what)))
}
