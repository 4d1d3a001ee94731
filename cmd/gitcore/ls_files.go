package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLsFilesCmd(f *rootFlags) *cobra.Command {
	var stage bool

	cmd := &cobra.Command{
		Use:   "ls-files",
		Short: "show the files currently staged in the index",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().BoolVarP(&stage, "stage", "s", false, "show mode and object id alongside each path")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		r, err := openRepo(f)
		if err != nil {
			return err
		}
		entries, err := r.LsFiles()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, e := range entries {
			if stage {
				fmt.Fprintf(out, "%06o %s\t%s\n", e.Mode, e.SHA1.String(), e.Name)
			} else {
				fmt.Fprintln(out, e.Name)
			}
		}
		return nil
	}

	return cmd
}
