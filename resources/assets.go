package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	iconDir  = "icon/"
	soundDir = "sound/"
)

// IconName is the application icon file.
const IconName = "wolftimer.svg"

// CompletionSound is played when every block has run out.
const CompletionSound = "complete.wav"

//go:embed icon/*.svg
var iconFS embed.FS

//go:embed sound/*.wav
var soundFS embed.FS

var iconCache sync.Map
var soundCache sync.Map

// Icon returns a Fyne resource for the given icon file.
func Icon(fileName string) (fyne.Resource, error) {
	return loadResource(iconFS, iconDir+fileName, &iconCache)
}

// MustIcon returns a Fyne resource or panics on error.
func MustIcon(fileName string) fyne.Resource {
	resource, err := Icon(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// Sound returns a Fyne resource for the given sound file.
func Sound(fileName string) (fyne.Resource, error) {
	return loadResource(soundFS, soundDir+fileName, &soundCache)
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
