package platform

import (
	"fmt"
	"os"
)

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
}

type platformService struct {
	override string
}

// NewService returns a platform-specific implementation. A non-empty override
// replaces the OS configuration directory.
func NewService(override string) Service {
	return &platformService{override: override}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	if service.override != "" {
		return service.override, nil
	}

	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}
