package msgkit

import (
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/msgkit/internal/version"
)

// ManHeader is shared by the man command and the msgkit-manpage tool.
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "MSGKIT",
		Section: "1",
		Source:  "msgkit " + version.Version,
		Manual:  "msgkit manual",
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir != "" {
				return doc.GenManTree(cmd.Root(), ManHeader(), dir)
			}
			return doc.GenMan(cmd.Root(), ManHeader(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", MsgFlagManDir)
	return cmd
}
