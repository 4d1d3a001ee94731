package main

import "github.com/spf13/cobra"

func newAddCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <pathspec>...",
		Short: "stage file contents into the index",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		r, err := openRepo(f)
		if err != nil {
			return err
		}
		return r.Add(f.fs, args)
	}

	return cmd
}
