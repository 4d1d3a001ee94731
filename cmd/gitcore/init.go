package main

import (
	"errors"
	"fmt"

	"github.com/arjunvc/gitcore"
	"github.com/spf13/cobra"
)

func newInitCmd(f *rootFlags) *cobra.Command {
	var (
		initialBranch string
		bare          bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "create an empty repository",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVarP(&initialBranch, "initial-branch", "b", "", "name of the initial branch")
	cmd.Flags().BoolVar(&bare, "bare", false, "create a bare repository with no working tree")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		dir, err := f.workDir()
		if err != nil {
			return err
		}

		_, err = gitcore.InitRepositoryWithOptions(f.fs, dir, gitcore.InitOptions{
			IsBare:        bare,
			DefaultBranch: initialBranch,
		})
		switch {
		case err == nil:
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty repository in %s\n", dir)
		case errors.Is(err, gitcore.ErrRepositoryExists):
			fmt.Fprintf(cmd.OutOrStdout(), "Reinitialized existing repository in %s\n", dir)
		default:
			return err
		}
		return nil
	}

	return cmd
}
