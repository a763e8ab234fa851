package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/megadvc/cmd/ui"
	"github.com/utkarsh5026/megadvc/pkg/repository/megarepo"
)

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Show the repository options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := megarepo.Open(repoDir, nil)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatOptions(repo.Options()))
			return nil
		},
	}
}
