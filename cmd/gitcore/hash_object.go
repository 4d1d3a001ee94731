package main

import (
	"fmt"

	"github.com/arjunvc/gitcore/ginternals/object"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newHashObjectCmd(f *rootFlags) *cobra.Command {
	var (
		typ   string
		write bool
	)

	cmd := &cobra.Command{
		Use:   "hash-object <file>",
		Short: "compute an object's id and optionally store it",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "blob", "object type: blob, tree, or commit")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the object to the store")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		objType, err := object.NewTypeFromString(typ)
		if err != nil {
			return err
		}

		content, err := afero.ReadFile(f.fs, args[0])
		if err != nil {
			return err
		}

		r, err := openRepo(f)
		if err != nil {
			return err
		}

		oid, err := r.HashObject(objType, content, write)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), oid.String())
		return nil
	}

	return cmd
}
