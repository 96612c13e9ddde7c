package config

import (
	"strings"
	"time"

	"github.com/arthur-debert/msgkit/pkg/kinds"
	"github.com/arthur-debert/msgkit/pkg/message"
	"github.com/arthur-debert/msgkit/pkg/style"
)

// Verbosity levels for user-facing output.
const (
	VerbosityNormal = "normal"
	VerbositySilent = "silent"
)

// Config is the decoded configuration tree.
type Config struct {
	Output Output          `koanf:"output"`
	Kinds  map[string]Kind `koanf:"kinds"`
}

// Output holds stream-wide settings.
type Output struct {
	Color       string   `koanf:"color"`
	Verbosity   string   `koanf:"verbosity"`
	DebugTopics []string `koanf:"debug_topics"`
	Catalog     string   `koanf:"catalog"`
}

// Kind holds the display settings of one kind.
type Kind struct {
	Prefix   string        `koanf:"prefix"`
	Color    string        `koanf:"color"`
	Stream   string        `koanf:"stream"`
	Location bool          `koanf:"location"`
	Wait     time.Duration `koanf:"wait"`
}

// ColorMode returns the parsed output.color. Load has validated it.
func (c *Config) ColorMode() style.ColorMode {
	mode, _ := style.ParseColorMode(c.Output.Color)
	return mode
}

// Silent reports whether informational output is suppressed.
func (c *Config) Silent() bool {
	return strings.EqualFold(c.Output.Verbosity, VerbositySilent)
}

// KindTable converts the kinds section into a lookup table.
func (c *Config) KindTable() kinds.Table {
	entries := make(map[message.Kind]kinds.Properties, len(c.Kinds))
	for name, k := range c.Kinds {
		stream, _ := kinds.ParseStreamID(k.Stream)
		entries[normalizeKind(name)] = kinds.Properties{
			Prefix:   k.Prefix,
			Color:    k.Color,
			Stream:   stream,
			Location: k.Location,
			Wait:     k.Wait,
		}
	}
	return kinds.NewTable(entries)
}

// normalizeKind accepts "debug(net)" as well as "debug:net".
func normalizeKind(name string) message.Kind {
	if name == string(kinds.DefaultKind) {
		return kinds.DefaultKind
	}
	k, err := message.ParseKind(name)
	if err != nil {
		return message.Kind(name)
	}
	return k
}
