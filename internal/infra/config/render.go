package config

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todoboard/internal/domain"
)

// effectiveConfig mirrors domain.Config with the timeout spelled as a
// duration string, the form the loader accepts.
type effectiveConfig struct {
	Server struct {
		BaseURL string `toml:"base_url"`
		Timeout string `toml:"timeout"`
	} `toml:"server"`
	Log   domain.LogConfig   `toml:"log"`
	Board domain.BoardConfig `toml:"board"`
	Serve domain.ServeConfig `toml:"serve"`
}

// Render formats cfg as TOML that Load would read back unchanged.
func Render(cfg *domain.Config) (string, error) {
	var out effectiveConfig
	out.Server.BaseURL = cfg.Server.BaseURL
	out.Server.Timeout = cfg.Server.Timeout.String()
	out.Log = cfg.Log
	out.Board = cfg.Board
	out.Serve = cfg.Serve

	data, err := toml.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
