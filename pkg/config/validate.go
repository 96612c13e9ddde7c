package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/msgkit/pkg/errors"
	"github.com/arthur-debert/msgkit/pkg/kinds"
	"github.com/arthur-debert/msgkit/pkg/message"
	"github.com/arthur-debert/msgkit/pkg/style"
)

// Validate checks a decoded Config. Problems are reported together as
// one CONFIG_INVALID error, with the individual messages in "problems".
func Validate(cfg *Config) error {
	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if _, err := style.ParseColorMode(cfg.Output.Color); err != nil {
		add("output.color: %v", err)
	}

	switch strings.ToLower(cfg.Output.Verbosity) {
	case VerbosityNormal, VerbositySilent, "":
	default:
		add("output.verbosity: unknown level %q", cfg.Output.Verbosity)
	}

	for _, topic := range cfg.Output.DebugTopics {
		if strings.TrimSpace(topic) == "" || strings.ContainsAny(topic, "(): ") {
			add("output.debug_topics: invalid topic %q", topic)
		}
	}

	names := make([]string, 0, len(cfg.Kinds))
	for name := range cfg.Kinds {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := style.Plain()
	for _, name := range names {
		k := cfg.Kinds[name]
		if name != string(kinds.DefaultKind) {
			if _, err := message.ParseKind(name); err != nil {
				add("kinds.%s: %v", name, err)
			}
		}
		if _, err := kinds.ParseStreamID(k.Stream); err != nil {
			add("kinds.%s.stream: %v", name, err)
		}
		if k.Color != "" {
			if _, err := attrs.Parse(k.Color); err != nil {
				add("kinds.%s.color: %v", name, err)
			}
		}
		if k.Wait < 0 {
			add("kinds.%s.wait: must not be negative", name)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.Newf(errors.ErrConfigInvalid, "invalid configuration: %s", strings.Join(problems, "; ")).
		WithDetail("problems", problems)
}
