package main

import (
	"os"

	"github.com/osuushi/convexify"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config is the on-disk configuration. Every field is optional; flags given on
// the command line override it.
//
//	format = "yaml"
//	policy = "keep"
//	scale = 4.0
//	png = "/tmp/pieces.png"
//	color = false
type Config struct {
	Format string  `toml:"format"`
	Policy string  `toml:"policy"`
	Scale  float64 `toml:"scale"`
	PNG    string  `toml:"png"`
	Color  *bool   `toml:"color"`
}

func DefaultConfig() Config {
	color := true
	return Config{
		Format: "text",
		Policy: "fail",
		Scale:  10,
		Color:  &color,
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if cfg.Color == nil {
		color := true
		cfg.Color = &color
	}
	return cfg, nil
}

func parsePolicy(name string) (convexify.DiagonalPolicy, error) {
	switch name {
	case "fail":
		return convexify.FailOnMissingDiagonal, nil
	case "keep":
		return convexify.KeepUnresolved, nil
	}
	return 0, errors.Errorf("unknown diagonal policy %q (want fail or keep)", name)
}

func validFormat(format string) bool {
	switch format {
	case "text", "yaml", "pretty":
		return true
	}
	return false
}
