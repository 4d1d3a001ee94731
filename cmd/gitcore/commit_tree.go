package main

import (
	"fmt"

	"github.com/arjunvc/gitcore"
	"github.com/arjunvc/gitcore/ginternals/githash"
	"github.com/arjunvc/gitcore/internal/env"
	"github.com/arjunvc/gitcore/internal/identity"
	"github.com/spf13/cobra"
)

func newCommitTreeCmd(f *rootFlags) *cobra.Command {
	var (
		parents []string
		message string
	)

	cmd := &cobra.Command{
		Use:   "commit-tree <tree>",
		Short: "create a commit object from a tree, without touching any ref",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringArrayVarP(&parents, "parent", "p", nil, "id of a parent commit (may be repeated)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		treeID, err := parseOid(args[0])
		if err != nil {
			return err
		}

		parentIDs := make([]githash.Oid, 0, len(parents))
		for _, p := range parents {
			oid, err := parseOid(p)
			if err != nil {
				return err
			}
			parentIDs = append(parentIDs, oid)
		}

		r, err := openRepo(f)
		if err != nil {
			return err
		}

		authorName, authorEmail, err := identity.Resolve(env.NewFromOs())
		if err != nil {
			return err
		}

		oid, err := r.CommitTree(treeID, gitcore.CommitTreeOptions{
			Message:     message,
			ParentIDs:   parentIDs,
			AuthorName:  authorName,
			AuthorEmail: authorEmail,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), oid.String())
		return nil
	}

	return cmd
}
