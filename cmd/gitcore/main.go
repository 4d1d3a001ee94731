// Command gitcore is a thin CLI over the gitcore driver package: one
// cobra command per porcelain/plumbing operation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// rootFlags holds state shared by every subcommand's RunE.
type rootFlags struct {
	fs afero.Fs
	C  string
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gitcore",
		Short:         "a content-addressed object store and indexer, git-compatible on disk",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := &rootFlags{fs: afero.NewOsFs()}
	cmd.PersistentFlags().StringVarP(&flags.C, "C", "C", "", "run as if started in the given path instead of the current directory")

	// porcelain
	cmd.AddCommand(newInitCmd(flags))
	cmd.AddCommand(newAddCmd(flags))
	cmd.AddCommand(newCommitCmd(flags))
	cmd.AddCommand(newSwitchCmd(flags))
	cmd.AddCommand(newBranchCmd(flags))

	// plumbing
	cmd.AddCommand(newCatFileCmd(flags))
	cmd.AddCommand(newHashObjectCmd(flags))
	cmd.AddCommand(newWriteTreeCmd(flags))
	cmd.AddCommand(newLsFilesCmd(flags))
	cmd.AddCommand(newCommitTreeCmd(flags))
	cmd.AddCommand(newUpdateRefCmd(flags))
	cmd.AddCommand(newUpdateIndexCmd(flags))

	return cmd
}

// workDir returns the directory the command should operate from: -C if
// set, otherwise the process's current directory.
func (f *rootFlags) workDir() (string, error) {
	if f.C != "" {
		return f.C, nil
	}
	return os.Getwd()
}
