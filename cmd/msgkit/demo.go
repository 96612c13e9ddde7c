package msgkit

import (
	"context"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/msgkit/pkg/errors"
	"github.com/arthur-debert/msgkit/pkg/hooks"
	"github.com/arthur-debert/msgkit/pkg/logging"
	"github.com/arthur-debert/msgkit/pkg/message"
	"github.com/arthur-debert/msgkit/pkg/messages"
	"github.com/arthur-debert/msgkit/pkg/tokens"
)

func newDemoCmd(a *app) *cobra.Command {
	var (
		workers int
		steps   int
		capture bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: MsgDemoShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.demo")
			if workers < 1 {
				return errors.Newf(errors.ErrInvalidInput, "--workers must be at least 1, got %d", workers).
					WithDetail("workers", workers)
			}
			if steps < 0 {
				return errors.Newf(errors.ErrInvalidInput, "--steps must not be negative, got %d", steps).
					WithDetail("steps", steps)
			}
			captured := make([]atomic.Int64, workers)

			g, ctx := errgroup.WithContext(cmd.Context())
			for w := 0; w < workers; w++ {
				g.Go(func() error {
					wctx := ctx
					if capture {
						wctx = hooks.WithHook(ctx, "capture", hooks.Func(
							func(context.Context, message.Message, message.Kind, tokens.Sequence) (bool, error) {
								captured[w].Add(1)
								return true, nil
							}))
					}
					return runWorker(wctx, a, w, steps)
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if capture {
				for w := range captured {
					msg := message.Format(MsgCapturedFormat, w, captured[w].Load())
					if err := a.pipe.Process(cmd.Context(), message.KindInformational, msg); err != nil {
						return err
					}
				}
			}
			logger.Debug().Int("workers", workers).Int("steps", steps).Bool("capture", capture).Msg("Demo finished")
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 4, MsgFlagWorkers)
	cmd.Flags().IntVar(&steps, "steps", 3, MsgFlagSteps)
	cmd.Flags().BoolVar(&capture, "capture", false, MsgFlagCapture)
	return cmd
}

// runWorker reports progress, one unknown part and a debug trace.
func runWorker(ctx context.Context, a *app, id, steps int) error {
	for s := 1; s <= steps; s++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg := message.Format(MsgWorkerStep, id, s, steps)
		if err := a.pipe.Process(ctx, message.KindInformational, msg); err != nil {
			return err
		}
	}

	part := messages.NoSuchPart(40 + id).At("demo.go", 100+id)
	if err := a.pipe.Process(ctx, message.KindWarning, part); err != nil {
		return err
	}
	return a.pipe.Process(ctx, message.Debug("demo"), message.Format("worker %d done", id))
}
