package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arjunvc/gitcore/ginternals"
	"github.com/arjunvc/gitcore/ginternals/githash"
	"github.com/arjunvc/gitcore/ginternals/object"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func newUpdateIndexCmd(f *rootFlags) *cobra.Command {
	var (
		cacheinfo []string
		add       bool
		remove    bool
	)

	cmd := &cobra.Command{
		Use:   "update-index <file>...",
		Short: "register file contents in the index directly",
		Args:  cobra.ArbitraryArgs,
	}
	cmd.Flags().StringArrayVar(&cacheinfo, "cacheinfo", nil, "<mode>,<object>,<path>: stage an entry without reading the working tree")
	cmd.Flags().BoolVar(&add, "add", false, "allow staging paths not already tracked")
	cmd.Flags().BoolVar(&remove, "remove", false, "remove named paths from the index (unsupported)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if add && remove {
			return fmt.Errorf("update-index: cannot use --add and --remove together")
		}
		if remove {
			return xerrors.Errorf("update-index: --remove is not supported: %w", ginternals.ErrUnsupportedOperation)
		}

		r, err := openRepo(f)
		if err != nil {
			return err
		}

		for _, raw := range cacheinfo {
			mode, oid, path, err := parseCacheInfo(raw)
			if err != nil {
				return err
			}
			if err := r.UpdateIndexCacheInfo(mode, oid, path); err != nil {
				return err
			}
		}

		if len(args) > 0 {
			if err := r.UpdateIndexPaths(f.fs, args, add); err != nil {
				return err
			}
		}
		return nil
	}

	return cmd
}

// parseCacheInfo parses a "<mode>,<object>,<path>" triple, the same
// format `git update-index --cacheinfo` accepts as a single argument.
func parseCacheInfo(raw string) (mode object.TreeObjectMode, oid githash.Oid, path string, err error) {
	parts := strings.SplitN(raw, ",", 3)
	if len(parts) != 3 {
		return 0, githash.NullOid, "", fmt.Errorf("update-index: --cacheinfo expects <mode>,<object>,<path>, got %q", raw)
	}

	m, err := strconv.ParseUint(parts[0], 8, 32)
	if err != nil {
		return 0, githash.NullOid, "", fmt.Errorf("update-index: invalid mode %q: %w", parts[0], err)
	}

	oid, err = parseOid(parts[1])
	if err != nil {
		return 0, githash.NullOid, "", err
	}

	return object.TreeObjectMode(m), oid, parts[2], nil
}
