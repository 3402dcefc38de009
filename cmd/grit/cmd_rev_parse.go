package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/grit/pkg/objects"
)

func newRevParseCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rev-parse <revision>",
		Short: "Print the object id a revision names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openSession(cmd.Context())
			if err != nil {
				return err
			}
			hash, err := resolveRevision(s, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	return cmd
}

// errNoHead is returned when HEAD is requested before the first commit.
var errNoHead = errors.New("HEAD does not point at a commit yet")

// resolveRevision accepts HEAD (any case) or a full object id.
func resolveRevision(s *session, rev string) (objects.ObjectHash, error) {
	if strings.EqualFold(rev, "HEAD") {
		hash, ok, err := s.repo.HeadRef().Read()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", errNoHead
		}
		return hash, nil
	}
	return objects.ParseObjectHash(rev)
}
