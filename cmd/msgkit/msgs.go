package msgkit

// Command descriptions
const (
	MsgRootShort = "Render semantic messages through a hookable output pipeline"

	MsgRootLong = `msgkit turns semantic messages such as no_such_part(42) into formatted
output. Messages are rendered to tokens, offered to hooks, and finally
printed with a prefix chosen by their kind.

Run 'msgkit topics' for the available help topics.`

	MsgPrintShort = "Process messages through the pipeline"

	MsgPrintLong = `Print parses each TERM as a message and processes it with KIND.

Kinds: error, warning, informational, banner, help, query, silent,
debug:<topic> (or debug(<topic>)).

Example:
  msgkit print error 'no_such_part(42)'
  msgkit print banner 'welcome("msgkit", 1, 4)'`

	MsgRenderShort  = "Show how a message renders, without printing it through a kind"
	MsgKindsShort   = "Show the effective kind properties"
	MsgDemoShort    = "Run concurrent workers that report through the pipeline"
	MsgTopicsShort  = "List all topics or show help for a topic"
	MsgTopicsLong   = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort = "Print version information"
	MsgManShort     = "Generate man pages"
)

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "config file (default is $XDG_CONFIG_HOME/msgkit/config.toml)"
	MsgFlagColor   = "color output: auto, always or never"
	MsgFlagCatalog = "parts catalog file (.yaml, .yml or .toml)"
	MsgFlagAt      = "attach a source location, as file:line"
	MsgFlagTokens  = "show the token sequence instead of the text"
	MsgFlagWorkers = "number of concurrent workers"
	MsgFlagSteps   = "messages per worker"
	MsgFlagCapture = "capture each worker's messages with a context hook"
	MsgFlagManDir  = "write one page per command into this directory"
)

// Output
const (
	MsgNoTopics       = "No help topics available."
	MsgTopicsHeader   = "Available help topics:"
	MsgTopicItem      = "  %s\n"
	MsgTopicsFooter   = "\nUse 'msgkit topics <topic>' to read about a specific topic."
	MsgVersionFormat  = "msgkit version %s\n"
	MsgCommitFormat   = "  commit: %s\n"
	MsgBuiltFormat    = "  built:  %s\n"
	MsgCapturedFormat = "worker %d captured %d messages"
	MsgWorkerStep     = "worker %d: step %d of %d"
)
