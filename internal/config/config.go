// Package config holds the tool configuration: defaults, command-line
// flags, NLPTOK_* environment variables, and an optional config file, in
// increasing order of precedence handled by viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel  string          `mapstructure:"log_level"`
	Output    OutputConfig    `mapstructure:"output"`
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
	Tagger    TaggerConfig    `mapstructure:"tagger"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type TokenizerConfig struct {
	Kind string `mapstructure:"kind"`
}

// TaggerConfig selects the downstream tagging model. The model string is
// opaque to this tool and passed through to the tagging service unchanged.
type TaggerConfig struct {
	Model string `mapstructure:"model"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Output: OutputConfig{
			Format: FormatTSV,
		},
		Tokenizer: TokenizerConfig{
			Kind: KindEnglish,
		},
		Tagger: TaggerConfig{
			Model: "",
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("output-format", defaults.Output.Format, "Output format (tsv|json)")
	fs.String("tokenizer-kind", defaults.Tokenizer.Kind, "Tokenizer (english|space)")
	fs.String("tagger-model", defaults.Tagger.Model, "Opaque model identifier forwarded to the tagging service")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("NLPTOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("nlptok")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("output.format", c.Output.Format)
	v.SetDefault("tokenizer.kind", c.Tokenizer.Kind)
	v.SetDefault("tagger.model", c.Tagger.Model)
}

// bindFlags binds each flag to its nested config key. Binding on the
// nested keys keeps config-file values and SetDefault values resolvable;
// an alias from the nested key to the flag name would shadow both.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"log_level":      "log-level",
		"output.format":  "output-format",
		"tokenizer.kind": "tokenizer-kind",
		"tagger.model":   "tagger-model",
	}
	for key, name := range bindings {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
