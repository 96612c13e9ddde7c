// Package msgkit implements the msgkit command line.
package msgkit

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/msgkit/pkg/catalog"
	"github.com/arthur-debert/msgkit/pkg/config"
	"github.com/arthur-debert/msgkit/pkg/emitter"
	"github.com/arthur-debert/msgkit/pkg/kinds"
	"github.com/arthur-debert/msgkit/pkg/logging"
	"github.com/arthur-debert/msgkit/pkg/message"
	"github.com/arthur-debert/msgkit/pkg/messages"
	"github.com/arthur-debert/msgkit/pkg/pipeline"
	"github.com/arthur-debert/msgkit/pkg/renderer"
	"github.com/arthur-debert/msgkit/pkg/utils"
)

// app carries flag values and the pipeline built from them.
type app struct {
	verbosity   int
	configPath  string
	color       string
	catalogPath string

	cfg      *config.Config
	catalog  catalog.Catalog
	pipe     *pipeline.Pipeline
	out, err *emitter.Stream
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	root, _ := newRoot()
	return root
}

// Execute runs the command line with args and returns the exit code.
// A failure is printed as an error message.
func Execute(args []string) int {
	root, a := newRoot()
	root.SetArgs(args)
	return a.execute(root)
}

func (a *app) execute(root *cobra.Command) int {
	err := root.Execute()
	if err == nil {
		return 0
	}
	_ = a.reporter(root).Print(message.KindError, message.FromError(err))
	return 1
}

// reporter is the pipeline built by setup, or a plain one on the root's
// error stream when setup never completed.
func (a *app) reporter(root *cobra.Command) *pipeline.Pipeline {
	if a.pipe != nil {
		return a.pipe
	}
	pipeline.InstallBuiltins(catalog.Empty)
	errStream := emitter.NewStream(root.ErrOrStderr(), emitter.WithName(string(kinds.UserError)))
	return pipeline.New(
		pipeline.WithStream(kinds.UserOutput, errStream),
		pipeline.WithStream(kinds.UserError, errStream),
	)
}

func newRoot() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "msgkit",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(logging.Options{
				Verbosity: a.verbosity,
				Console:   cmd.ErrOrStderr(),
				NoColor:   a.color == "never",
			})
			logging.LogCommand(cmd.CommandPath(), args)
			return a.setup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.color, "color", "", MsgFlagColor)
	rootCmd.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", MsgFlagCatalog)

	rootCmd.AddCommand(
		newPrintCmd(a),
		newRenderCmd(a),
		newKindsCmd(a),
		newDemoCmd(a),
		newTopicsCmd(a),
		newVersionCmd(),
		newManCmd(),
	)

	return rootCmd, a
}

// setup loads configuration and the catalog, then builds the pipeline
// writing to the command's output streams.
func (a *app) setup(cmd *cobra.Command) error {
	logger := logging.GetLogger("cmd")
	defer logging.LogOperationStart(logger, "setup")()

	overrides := map[string]interface{}{}
	if a.color != "" {
		overrides["output.color"] = a.color
	}
	if a.catalogPath != "" {
		overrides["output.catalog"] = a.catalogPath
	}

	cfg, err := config.Load(config.LoadOptions{Path: utils.ExpandPath(a.configPath), Overrides: overrides})
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.catalog = catalog.Empty
	if cfg.Output.Catalog != "" {
		m, err := catalog.Load(utils.ExpandPath(cfg.Output.Catalog))
		if err != nil {
			return err
		}
		a.catalog = m
	}

	reg := renderer.NewRegistry()
	if err := messages.Install(reg, a.catalog); err != nil {
		return err
	}

	a.out = emitter.NewStream(cmd.OutOrStdout(),
		emitter.WithName(string(kinds.UserOutput)), emitter.WithColor(cfg.ColorMode()))
	a.err = emitter.NewStream(cmd.ErrOrStderr(),
		emitter.WithName(string(kinds.UserError)), emitter.WithColor(cfg.ColorMode()))

	a.pipe = pipeline.FromConfig(cfg,
		pipeline.WithRenderers(reg),
		pipeline.WithStream(kinds.UserOutput, a.out),
		pipeline.WithStream(kinds.UserError, a.err),
	)

	logger.Debug().
		Str("color", cfg.Output.Color).
		Str("catalog", cfg.Output.Catalog).
		Strs("shapes", reg.Shapes()).
		Msg("Pipeline ready")
	return nil
}
