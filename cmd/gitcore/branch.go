package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newBranchCmd(f *rootFlags) *cobra.Command {
	var (
		create string
		del    string
	)

	cmd := &cobra.Command{
		Use:   "branch [name]",
		Short: "list, create, or delete branches",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.Flags().StringVarP(&create, "create", "c", "", "create a new branch")
	cmd.Flags().StringVarP(&del, "delete", "d", "", "delete a branch")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if create != "" && del != "" {
			return errors.New("branch: -c and -d are mutually exclusive")
		}

		r, err := openRepo(f)
		if err != nil {
			return err
		}

		switch {
		case create != "":
			return r.CreateBranch(create)
		case del != "":
			return r.DeleteBranch(del)
		case len(args) == 1:
			return r.CreateBranch(args[0])
		default:
			branches, err := r.ListBranches()
			if err != nil {
				return err
			}
			for _, b := range branches {
				marker := "  "
				if b.Current {
					marker = "* "
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", marker, b.Name)
			}
			return nil
		}
	}

	return cmd
}
