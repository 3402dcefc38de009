package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/grit/pkg/objects"
)

func newCatFileCmd(opts *globalOptions) *cobra.Command {
	var showType, showSize, pretty bool

	cmd := &cobra.Command{
		Use:   "cat-file (-t | -s | -p) <object>",
		Short: "Show the type, size or content of an object",
		Long: `Read an object from the store and print its type (-t), payload size (-s) or
contents (-p). <object> is a full id, an unambiguous prefix is not accepted.
HEAD names the current commit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if countTrue(showType, showSize, pretty) != 1 {
				return errors.New("exactly one of -t, -s or -p is required")
			}

			s, err := opts.openSession(cmd.Context())
			if err != nil {
				return err
			}
			hash, err := resolveRevision(s, args[0])
			if err != nil {
				return err
			}

			raw, err := s.repo.ObjectStore().ReadRaw(hash)
			if err != nil {
				return err
			}
			objType, payload, err := raw.Payload()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case showType:
				fmt.Fprintln(out, objType)
			case showSize:
				fmt.Fprintln(out, len(payload))
			default:
				obj, err := objects.Decode(raw)
				if err != nil {
					return err
				}
				return prettyPrint(out, obj, payload)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showType, "type", "t", false, "Show the object type")
	cmd.Flags().BoolVarP(&showSize, "size", "s", false, "Show the payload size")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the object")

	return cmd
}

// prettyPrint writes obj the way git cat-file -p does.
func prettyPrint(out io.Writer, obj objects.Object, payload []byte) error {
	switch o := obj.(type) {
	case *objects.Tree:
		for _, e := range o.Entries() {
			kind := objects.BlobType
			if e.Mode == objects.FileModeDirectory {
				kind = objects.TreeType
			}
			fmt.Fprintf(out, "%06o %s %s\t%s\n", uint32(e.Mode), kind, e.Hash, e.Path)
		}
	default:
		_, err := out.Write(payload)
		return err
	}
	return nil
}

func countTrue(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
