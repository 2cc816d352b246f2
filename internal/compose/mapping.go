package compose

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spritefold/spritefold/internal/catalog"
	"github.com/spritefold/spritefold/internal/pack"
)

// Frame is one sprite's region on the atlas.
type Frame struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Mapping is the JSON sidecar written next to the atlas. Consumers slice
// the atlas back into sprites by looking up frames by source filename.
type Mapping struct {
	AtlasWidth  int              `json:"atlas_width"`
	AtlasHeight int              `json:"atlas_height"`
	Sprites     map[string]Frame `json:"sprites"`
}

// BuildMapping combines the catalog dimensions with the placement plan
// into a Mapping value.
func BuildMapping(images []catalog.SourceImage, placements []pack.Placement, spec pack.CanvasSpec) (*Mapping, error) {
	byID := make(map[string]catalog.SourceImage, len(images))
	for _, img := range images {
		byID[img.ID] = img
	}

	sprites := make(map[string]Frame, len(placements))
	for _, p := range placements {
		src, ok := byID[p.ID]
		if !ok {
			return nil, fmt.Errorf("placement references unknown image %q", p.ID)
		}
		sprites[p.ID] = Frame{X: p.X, Y: p.Y, Width: src.Width, Height: src.Height}
	}

	return &Mapping{
		AtlasWidth:  spec.MaxWidth,
		AtlasHeight: spec.MaxHeight,
		Sprites:     sprites,
	}, nil
}

// WriteMapping serializes the mapping as indented JSON at path.
func WriteMapping(m *Mapping, path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode mapping: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mapping file: %w", err)
	}
	return nil
}
