package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"wolftimer/internal/core/geometry"
)

const placementFileName = "cover_square.yaml"

type yamlPlacementFile struct {
	CoverSquare yamlCoverSquare `yaml:"cover_square"`
}

type yamlCoverSquare struct {
	X      *int `yaml:"x,omitempty"`
	Y      *int `yaml:"y,omitempty"`
	Width  *int `yaml:"width,omitempty"`
	Height *int `yaml:"height,omitempty"`
	Size   *int `yaml:"size,omitempty"`
}

// PlacementFile persists the cover square rectangle as YAML.
type PlacementFile struct {
	path string
}

// NewPlacementFile returns a store backed by the file at path.
func NewPlacementFile(path string) *PlacementFile {
	return &PlacementFile{path: path}
}

// PlacementPath returns where the cover placement lives inside appDir.
func PlacementPath(appDir string) string {
	return filepath.Join(appDir, placementFileName)
}

// Path returns the backing file path.
func (file *PlacementFile) Path() string {
	return file.path
}

// LoadPlacement reads the saved placement.
// If the file does not exist, an empty placement is returned.
func (file *PlacementFile) LoadPlacement() (geometry.Placement, error) {
	rawData, err := os.ReadFile(file.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return geometry.Placement{}, nil
		}
		return geometry.Placement{}, fmt.Errorf("read placement file: %w", err)
	}

	var fileData yamlPlacementFile
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return geometry.Placement{}, fmt.Errorf("parse placement yaml: %w", err)
	}

	section := fileData.CoverSquare
	return geometry.Placement{
		X:      section.X,
		Y:      section.Y,
		Width:  section.Width,
		Height: section.Height,
		Size:   section.Size,
	}, nil
}

// SavePlacement writes the placement, keeping a legacy size value only when
// no explicit width or height is given.
func (file *PlacementFile) SavePlacement(placement geometry.Placement) error {
	if err := os.MkdirAll(filepath.Dir(file.path), 0o755); err != nil {
		return fmt.Errorf("create placement directory: %w", err)
	}

	section := yamlCoverSquare{
		X:      placement.X,
		Y:      placement.Y,
		Width:  placement.Width,
		Height: placement.Height,
	}
	if section.Width == nil && section.Height == nil {
		section.Size = placement.Size
	}

	serialized, err := yaml.Marshal(yamlPlacementFile{CoverSquare: section})
	if err != nil {
		return fmt.Errorf("marshal placement yaml: %w", err)
	}

	if err := os.WriteFile(file.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write placement file: %w", err)
	}

	return nil
}
