package msgkit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/msgkit/pkg/message"
)

func newRenderCmd(a *app) *cobra.Command {
	var showTokens bool

	cmd := &cobra.Command{
		Use:   "render TERM",
		Short: MsgRenderShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := message.Parse(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !showTokens {
				_, err = fmt.Fprintln(out, a.pipe.MessageToString(m))
				return err
			}

			seq, matched := a.pipe.Renderers().TryResolve(m)
			if !matched {
				seq = a.pipe.Render(m)
				_, _ = fmt.Fprintf(out, "# no renderer for %s, fallback:\n", m.Shape())
			}
			for _, t := range seq {
				if _, err := fmt.Fprintln(out, t.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTokens, "tokens", false, MsgFlagTokens)
	return cmd
}
