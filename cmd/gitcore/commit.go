package main

import (
	"fmt"

	"github.com/arjunvc/gitcore"
	"github.com/arjunvc/gitcore/internal/env"
	"github.com/arjunvc/gitcore/internal/identity"
	"github.com/spf13/cobra"
)

func newCommitCmd(f *rootFlags) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "record staged changes in a new commit",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if message == "" {
			return fmt.Errorf("commit: a message is required, use -m")
		}

		r, err := openRepo(f)
		if err != nil {
			return err
		}

		e := env.NewFromOs()
		authorName, authorEmail, err := identity.Resolve(e)
		if err != nil {
			return err
		}
		committerName, committerEmail, err := identity.ResolveCommitter(e)
		if err != nil {
			return err
		}

		oid, err := r.Commit(gitcore.CommitOptions{
			Message:        message,
			AuthorName:     authorName,
			AuthorEmail:    authorEmail,
			CommitterName:  committerName,
			CommitterEmail: committerEmail,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), oid.String())
		return nil
	}

	return cmd
}
