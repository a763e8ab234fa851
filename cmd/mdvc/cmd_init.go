package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/megadvc/cmd/ui"
	"github.com/utkarsh5026/megadvc/pkg/repository/megarepo"
)

func newInitCmd() *cobra.Command {
	var remoteDir string
	var ignorePatterns []string

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Start tracking a directory",
		Long: `Scan a directory and write its metadata files (.mega.toml and .mega.lock).
The remote directory defaults to the base name of the local directory. Init
fails if the remote already holds a lock file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := repoDir
			if len(args) > 0 {
				path = resolveArgs(args)[0]
			}

			repo, err := megarepo.Init(cmd.Context(), megarepo.InitOptions{
				Local:     path,
				RemoteDir: remoteDir,
				Ignore:    ignorePatterns,
				Connect:   connect,
			})

			var remoteExists *megarepo.RemoteExistsError
			if errors.As(err, &remoteExists) {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningMessage(
					fmt.Sprintf("local metadata written in %s; remove it or pick another --remote-dir", repo.Root())))
				return err
			}
			if err != nil {
				return err
			}

			lock, err := repo.Snapshot()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.SuccessMessage("Initialized repository in", repo.Root().String()))
			fmt.Fprintln(out, ui.FormatOptions(repo.Options()))
			fmt.Fprintf(out, "%d files tracked\n", len(lock.Files()))
			return nil
		},
	}

	cmd.Flags().StringVar(&remoteDir, "remote-dir", "", "Remote directory to mirror to (default: local directory name)")
	cmd.Flags().StringSliceVar(&ignorePatterns, "ignore", nil, "Pattern to exclude from scans (repeatable)")

	return cmd
}
