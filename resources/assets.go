package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	soundDir = "sounds/"
	logoDir  = "logo/"

	// AlertSound is the countdown alert played on start, reset and finish.
	AlertSound = "alert.wav"
	// AppIcon is the window and tray icon.
	AppIcon = "icon.png"
)

//go:embed sounds/*.wav
var soundFS embed.FS

//go:embed logo/*.png
var logoFS embed.FS

var logoCache sync.Map

// Sound returns the raw bytes of an embedded sound file.
func Sound(fileName string) ([]byte, error) {
	data, err := soundFS.ReadFile(soundDir + fileName)
	if err != nil {
		return nil, fmt.Errorf("load sound %s: %w", fileName, err)
	}
	return data, nil
}

// MustSound returns sound bytes or panics on error.
func MustSound(fileName string) []byte {
	data, err := Sound(fileName)
	if err != nil {
		panic(err)
	}
	return data
}

// Logo returns a Fyne resource for the given logo file.
func Logo(fileName string) (fyne.Resource, error) {
	return loadResource(logoFS, logoDir+fileName, &logoCache)
}

// MustLogo returns a Fyne resource or panics on error.
func MustLogo(fileName string) fyne.Resource {
	resource, err := Logo(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}
