package config

import (
	"os"

	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads the configuration from Path() if it exists, falling back to the defaults so
	// plans can be rendered without a project file.
	func() (*Config, error) {
		path := Path()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return Default(), nil
		}

		return LoadConfigFile(path)
	},
	func(c *Config) format.Formatter {
		return c.Formatter()
	},
	func(c *Config) dialect.Dialect {
		return c.Dialect
	},
))
