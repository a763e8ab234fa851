package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/megadvc/cmd/ui"
	"github.com/utkarsh5026/megadvc/pkg/repository/megarepo"
)

func newPushCmd() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Upload staged files and apply staged removals",
		Long: `Upload every file staged with add, delete every file staged with remove
from the remote, then publish the lock file. The staging area is cleared
only when every remote command succeeds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository()
			if err != nil {
				return err
			}

			res, err := repo.Push(cmd.Context(), megarepo.PushOptions{Jobs: jobs})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range res.Dropped {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningMessage("Dropped from staging, file no longer exists: "+p))
			}
			if len(res.Pushed) == 0 && len(res.Removed) == 0 {
				fmt.Fprintln(out, ui.InfoMessage("Nothing staged; lock published to "+repo.Options().RemotePath()))
				return nil
			}
			for _, p := range res.Pushed {
				fmt.Fprintln(out, ui.FormatFileStatus(ui.StatusStaged, p))
			}
			for _, p := range res.Removed {
				fmt.Fprintln(out, ui.FormatFileStatus(ui.StatusToRemove, p))
			}
			fmt.Fprintln(out, ui.SuccessMessage(
				fmt.Sprintf("Pushed %d file(s), removed %d", len(res.Pushed), len(res.Removed)),
				repo.Options().RemotePath()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", megarepo.DefaultJobs, "Number of concurrent uploads")

	return cmd
}
