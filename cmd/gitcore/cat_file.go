package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/arjunvc/gitcore/ginternals/object"
	"github.com/spf13/cobra"
)

func newCatFileCmd(f *rootFlags) *cobra.Command {
	var (
		typeOnly    bool
		sizeOnly    bool
		prettyPrint bool
		exists      bool
	)

	cmd := &cobra.Command{
		Use:   "cat-file <object>",
		Short: "provide content, type, size, or existence information for a repository object",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().BoolVarP(&typeOnly, "t", "t", false, "show the object's type")
	cmd.Flags().BoolVarP(&sizeOnly, "s", "s", false, "show the object's size")
	cmd.Flags().BoolVarP(&prettyPrint, "p", "p", false, "pretty-print the object's content")
	cmd.Flags().BoolVarP(&exists, "e", "e", false, "exit 0 if the object exists, non-zero otherwise")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if countTrue(typeOnly, sizeOnly, prettyPrint, exists) != 1 {
			return errors.New("cat-file: exactly one of -t, -s, -p, -e is required")
		}

		r, err := openRepo(f)
		if err != nil {
			return err
		}

		oid, err := parseOid(args[0])
		if err != nil {
			return err
		}

		if exists {
			found, err := r.ObjectExists(oid)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("cat-file: object %s does not exist", oid)
			}
			return nil
		}

		o, err := r.CatFile(oid)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case typeOnly:
			fmt.Fprintln(out, o.Type().String())
		case sizeOnly:
			fmt.Fprintln(out, strconv.Itoa(o.Size()))
		case prettyPrint:
			return prettyPrintObject(out, o)
		}
		return nil
	}

	return cmd
}

func prettyPrintObject(out io.Writer, o *object.Object) error {
	switch o.Type() {
	case object.TypeCommit:
		c, err := o.AsCommit()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "tree %s\n", c.TreeID().String())
		for _, id := range c.ParentIDs() {
			fmt.Fprintf(out, "parent %s\n", id.String())
		}
		fmt.Fprintf(out, "author %s\n", c.Author().String())
		fmt.Fprintf(out, "committer %s\n", c.Committer().String())
		fmt.Fprintln(out)
		fmt.Fprint(out, c.Message())
	case object.TypeTree:
		tree, err := o.AsTree()
		if err != nil {
			return err
		}
		for _, e := range tree.Entries() {
			fmt.Fprintf(out, "%06o %s %s\t%s\n", e.Mode, e.Mode.ObjectType().String(), e.ID.String(), e.Path)
		}
	case object.TypeBlob:
		fmt.Fprint(out, string(o.Bytes()))
	default:
		return fmt.Errorf("cat-file: pretty-print not supported for type %s", o.Type().String())
	}
	return nil
}
