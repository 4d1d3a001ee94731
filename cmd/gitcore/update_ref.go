package main

import "github.com/spf13/cobra"

func newUpdateRefCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-ref <ref> <new-value>",
		Short: "update a ref (or HEAD) to point at a new object",
		Args:  cobra.ExactArgs(2),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		oid, err := parseOid(args[1])
		if err != nil {
			return err
		}
		r, err := openRepo(f)
		if err != nil {
			return err
		}
		return r.UpdateRef(args[0], oid)
	}

	return cmd
}
