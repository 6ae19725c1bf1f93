package usecase

import (
	"context"

	"github.com/runoshun/todoboard/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Global bool // If true, initialize global config; otherwise project config
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig writes a configuration file template.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		configManager: configManager,
	}
}

// Execute creates a configuration file with the default template.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	var (
		path string
		err  error
	)
	if in.Global {
		path, err = uc.configManager.InitGlobalConfig()
	} else {
		path, err = uc.configManager.InitProjectConfig()
	}
	if err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: path}, nil
}
