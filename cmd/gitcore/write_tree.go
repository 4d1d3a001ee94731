package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWriteTreeCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write-tree",
		Short: "materialize the current index into tree objects",
		Args:  cobra.NoArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		r, err := openRepo(f)
		if err != nil {
			return err
		}
		oid, err := r.WriteTreeCmd()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), oid.String())
		return nil
	}

	return cmd
}
