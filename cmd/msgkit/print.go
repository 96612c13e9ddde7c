package msgkit

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/msgkit/pkg/errors"
	"github.com/arthur-debert/msgkit/pkg/logging"
	"github.com/arthur-debert/msgkit/pkg/message"
)

func newPrintCmd(a *app) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "print KIND TERM [TERM...]",
		Short: MsgPrintShort,
		Long:  MsgPrintLong,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.print")

			kind, err := message.ParseKind(args[0])
			if err != nil {
				return err
			}

			msgs := make([]message.Message, 0, len(args)-1)
			for _, term := range args[1:] {
				m, err := message.Parse(term)
				if err != nil {
					return err
				}
				if at != "" {
					file, line, err := parseLocation(at)
					if err != nil {
						return err
					}
					m = m.At(file, line)
				}
				msgs = append(msgs, m)
			}

			for _, m := range msgs {
				logger.Debug().Str("kind", kind.String()).Str("term", m.String()).Msg("Processing message")
				if err := a.pipe.Process(cmd.Context(), kind, m); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", MsgFlagAt)
	return cmd
}

func parseLocation(s string) (string, int, error) {
	i := strings.LastIndexByte(s, ':')
	if i <= 0 {
		return "", 0, errors.Newf(errors.ErrInvalidInput, "location %q is not file:line", s)
	}
	line, err := strconv.Atoi(s[i+1:])
	if err != nil || line <= 0 {
		return "", 0, errors.Newf(errors.ErrInvalidInput, "location %q has no valid line number", s)
	}
	return s[:i], line, nil
}
