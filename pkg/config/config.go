package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfluent/pkg/consts"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
	"gopkg.in/yaml.v3"
)

type (
	// Format controls how rendered statements are laid out.
	Format struct {
		// Pretty renders one clause per line with nested statements indented
		Pretty bool `yaml:"pretty"`

		// IndentSize is the number of spaces per nesting level in pretty output
		IndentSize int `yaml:"indent_size,omitempty"`
	}

	// Config represents the sqlfluent project configuration.
	Config struct {
		// Dialect is the dialect statements are rendered for
		Dialect dialect.Dialect `yaml:"dialect"`

		// Format contains the output formatting settings
		Format Format `yaml:"format"`

		// Plans is the directory holding the statement plans of the project
		Plans string `yaml:"plans"`
	}
)

// Default returns the configuration used when no configuration file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig parses a project configuration from the provided io.Reader.
//
// Missing settings are filled in with their defaults: the Standard dialect, one-line
// output with an indent size of consts.DefaultIndentSize and the consts.DefaultPlansDir
// plans directory.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader(`
//	dialect: postgres
//	format:
//	  pretty: true
//	plans: db/plans
//	`))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Println(cfg.Dialect) // postgres
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Path returns the configuration file path: the value of consts.ConfigEnv when set,
// consts.ConfigFile otherwise.
func Path() string {
	if path := os.Getenv(consts.ConfigEnv); path != "" {
		return path
	}

	return consts.ConfigFile
}

// Formatter returns the formatter described by the format settings.
func (c *Config) Formatter() format.Formatter {
	return format.New(format.Options{
		Pretty:     c.Format.Pretty,
		IndentSize: c.Format.IndentSize,
	})
}

func (c *Config) applyDefaults() {
	if c.Format.IndentSize <= 0 {
		c.Format.IndentSize = consts.DefaultIndentSize
	}

	if c.Plans == "" {
		c.Plans = consts.DefaultPlansDir
	}
}
