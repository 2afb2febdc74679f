package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// Store is a persistent string key-value store backed by a YAML file.
// Every Set writes the whole file.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// Open reads the store at path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	store := &Store{
		path:   path,
		values: map[string]string{},
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
		return store, fmt.Errorf("read settings file: %w", err)
	}

	var fileData map[string]string
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return store, fmt.Errorf("parse settings yaml: %w", err)
	}
	for key, value := range fileData {
		store.values[key] = value
	}
	return store, nil
}

// OpenInDir opens settings.yaml under configDir/appName.
func OpenInDir(configDir, appName string) (*Store, error) {
	return Open(SettingsPath(configDir, appName))
}

// SettingsPath returns the settings file location for an application.
func SettingsPath(configDir, appName string) string {
	return filepath.Join(configDir, appName, settingsFileName)
}

// Path returns the backing file.
func (store *Store) Path() string {
	return store.path
}

// Get returns the stored value for key.
func (store *Store) Get(key string) (string, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	value, ok := store.values[key]
	return value, ok
}

// Set stores value under key and persists the store immediately.
func (store *Store) Set(key, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	previous, existed := store.values[key]
	store.values[key] = value
	if err := store.saveLocked(); err != nil {
		if existed {
			store.values[key] = previous
		} else {
			delete(store.values, key)
		}
		return err
	}
	return nil
}

func (store *Store) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(store.values)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
