package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newSwitchCmd(f *rootFlags) *cobra.Command {
	var (
		create bool
		orphan bool
		detach bool
	)

	cmd := &cobra.Command{
		Use:   "switch <branch>",
		Short: "switch branches",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().BoolVarP(&create, "create", "c", false, "create the branch before switching to it")
	cmd.Flags().BoolVar(&orphan, "orphan", false, "create a new orphan branch")
	cmd.Flags().BoolVarP(&detach, "detach", "d", false, "switch to a commit for inspection, leaving HEAD detached")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if countTrue(create, orphan, detach) > 1 {
			return errors.New("switch: -c, --orphan and --detach are mutually exclusive")
		}

		r, err := openRepo(f)
		if err != nil {
			return err
		}

		name := args[0]
		switch {
		case create:
			if err := r.SwitchCreate(name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Switched to a new branch '%s'\n", name)
		case orphan:
			if err := r.SwitchOrphan(name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Switched to a new orphan branch '%s'\n", name)
		case detach:
			oid, err := parseOid(name)
			if err != nil {
				return err
			}
			if err := r.SwitchDetach(oid); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "HEAD is now at %s\n", oid.String())
		default:
			if err := r.Switch(name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Switched to branch '%s'\n", name)
		}
		return nil
	}

	return cmd
}

func countTrue(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
