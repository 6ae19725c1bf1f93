// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todoboard/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files and the environment.
type Loader struct {
	projectDir    string // Directory holding .todoboard.toml (usually the working directory)
	globalConfDir string // Path to global config directory (e.g., ~/.config/todoboard)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalAppDir(configHome)
}

// DefaultStateDir returns the directory for logs and the default JSON store.
func DefaultStateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return domain.StateDir(stateHome)
}

// Load returns the merged configuration.
// Precedence: default <- global <- project <- environment.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = mergeConfigs(base, global)
		}
	}

	project, err := l.loadFile(domain.ProjectConfigPath(l.projectDir))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if project != nil {
		base = mergeConfigs(base, project)
	}

	applyEnv(base)
	return base, nil
}

// fileConfig is one parsed config file.
// timeoutSet distinguishes an explicit "0s" from an absent key.
type fileConfig struct {
	cfg        domain.Config
	timeoutSet bool
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	f, err := convertRawToFileConfig(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// convertRawToFileConfig converts the raw map to a file config and collects warnings.
// Values of the wrong type are reported as warnings; invalid values are errors.
func convertRawToFileConfig(raw map[string]any) (*fileConfig, error) {
	res := &fileConfig{}
	var warnings []string

	str := func(section, key string, v any) (string, bool) {
		s, ok := v.(string)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("invalid value in [%s]: %s must be a string", section, key))
		}
		return s, ok
	}

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "server":
			for k, v := range m {
				switch k {
				case "base_url":
					if s, ok := str(section, k, v); ok {
						res.cfg.Server.BaseURL = s
					}
				case "timeout":
					if s, ok := str(section, k, v); ok {
						d, err := time.ParseDuration(s)
						if err != nil {
							return nil, fmt.Errorf("[server] timeout: %w", err)
						}
						if d < 0 {
							return nil, fmt.Errorf("[server] timeout: must not be negative: %s", s)
						}
						res.cfg.Server.Timeout = d
						res.timeoutSet = true
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [server]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := str(section, k, v); ok {
						res.cfg.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "board":
			for k, v := range m {
				switch k {
				case "delete_target":
					if s, ok := str(section, k, v); ok {
						target, err := domain.ParseDeleteTarget(s)
						if err != nil {
							return nil, fmt.Errorf("[board] delete_target: %w", err)
						}
						res.cfg.Board.DeleteTarget = target
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [board]: %s", k))
				}
			}
		case "serve":
			for k, v := range m {
				switch k {
				case "addr":
					if s, ok := str(section, k, v); ok {
						res.cfg.Serve.Addr = s
					}
				case "store":
					if s, ok := str(section, k, v); ok {
						store, err := domain.ParseStoreBackend(s)
						if err != nil {
							return nil, fmt.Errorf("[serve] store: %w", err)
						}
						res.cfg.Serve.Store = store
					}
				case "path":
					if s, ok := str(section, k, v); ok {
						res.cfg.Serve.Path = s
					}
				case "redis_url":
					if s, ok := str(section, k, v); ok {
						res.cfg.Serve.RedisURL = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [serve]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.cfg.Warnings = warnings
	return res, nil
}

// mergeConfigs merges a file config into base, with the file taking precedence.
func mergeConfigs(base *domain.Config, override *fileConfig) *domain.Config {
	result := *base
	if len(override.cfg.Warnings) > 0 {
		result.Warnings = append(append([]string{}, base.Warnings...), override.cfg.Warnings...)
	}

	o := override.cfg
	if o.Server.BaseURL != "" {
		result.Server.BaseURL = o.Server.BaseURL
	}
	if override.timeoutSet {
		result.Server.Timeout = o.Server.Timeout
	}
	if o.Log.Level != "" {
		result.Log.Level = o.Log.Level
	}
	if o.Board.DeleteTarget != "" {
		result.Board.DeleteTarget = o.Board.DeleteTarget
	}
	if o.Serve.Addr != "" {
		result.Serve.Addr = o.Serve.Addr
	}
	if o.Serve.Store != "" {
		result.Serve.Store = o.Serve.Store
	}
	if o.Serve.Path != "" {
		result.Serve.Path = o.Serve.Path
	}
	if o.Serve.RedisURL != "" {
		result.Serve.RedisURL = o.Serve.RedisURL
	}

	return &result
}

// applyEnv overrides cfg with TODOBOARD_* environment variables.
func applyEnv(cfg *domain.Config) {
	if v := os.Getenv(domain.EnvBaseURL); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := os.Getenv(domain.EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}
