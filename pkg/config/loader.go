package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/msgkit/pkg/errors"
	"github.com/arthur-debert/msgkit/pkg/logging"
)

// EnvPrefix marks environment variables read by Load.
const EnvPrefix = "MSGKIT_"

// userFileNames are tried in order under the msgkit config directory.
var userFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// LoadOptions tunes Load.
type LoadOptions struct {
	// Path is an explicit config file. It must exist.
	Path string
	// SkipUserFile ignores the XDG config file when Path is empty.
	SkipUserFile bool
	// SkipEnv ignores MSGKIT_ variables.
	SkipEnv bool
	// Overrides are dotted keys applied last, e.g. "output.color".
	Overrides map[string]interface{}
}

// Defaults returns the embedded configuration alone.
func Defaults() (*Config, error) {
	return Load(LoadOptions{SkipUserFile: true, SkipEnv: true})
}

// Load merges every configuration source and validates the result.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	// 2. User file
	path := opts.Path
	if path == "" && !opts.SkipUserFile {
		path = findUserFile()
	}
	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
		}
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 6. Validate
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	logger.Trace().
		Str("color", cfg.Output.Color).
		Str("verbosity", cfg.Output.Verbosity).
		Strs("debug_topics", cfg.Output.DebugTopics).
		Int("kinds", len(cfg.Kinds)).
		Msg("Configuration loaded")
	return &cfg, nil
}

// envKey maps MSGKIT_OUTPUT__DEBUG_TOPICS to output.debug_topics.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path).
			WithDetail("path", path)
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return errors.Newf(errors.ErrConfigLoad, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
			WithDetail("path", path)
	}
	return nil
}

// ConfigDir returns the msgkit directory under the XDG config home.
// It respects XDG_CONFIG_HOME if set at call time.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "msgkit")
	}
	return filepath.Join(xdg.ConfigHome, "msgkit")
}

func findUserFile() string {
	dir := ConfigDir()
	for _, name := range userFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
