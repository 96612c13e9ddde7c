package msgkit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/msgkit/pkg/topics"
)

func newTopicsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "topics [topic]",
		Short: MsgTopicsShort,
		Long:  MsgTopicsLong,
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			m, err := topics.Builtin(topics.Options{})
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return m.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var r topics.Renderer = &topics.PlainRenderer{}
			if a.out.Colored() {
				r = topics.NewGlamourRenderer()
			}
			m, err := topics.Builtin(topics.Options{Renderer: r})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				rendered, err := m.Render(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(out, rendered)
				return err
			}

			names := m.List()
			if len(names) == 0 {
				_, err = fmt.Fprintln(out, MsgNoTopics)
				return err
			}
			_, _ = fmt.Fprintln(out, MsgTopicsHeader)
			for _, name := range names {
				_, _ = fmt.Fprintf(out, MsgTopicItem, name)
			}
			_, err = fmt.Fprintln(out, MsgTopicsFooter)
			return err
		},
	}
}
