package compose

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/spritefold/spritefold/internal/catalog"
	"github.com/spritefold/spritefold/internal/pack"
)

// Transparent is the default canvas background: alpha zero everywhere.
var Transparent = color.NRGBA{}

// Render composites images onto a spec-sized canvas per the placement
// plan.
//
// Every placement's pixels are copied verbatim with draw.Src, so source
// alpha is preserved rather than blended into the background. Placements
// reference images by ID; an ID missing from images is a programming
// error upstream and is reported rather than skipped.
func Render(images []catalog.SourceImage, placements []pack.Placement, spec pack.CanvasSpec, background color.Color) (*image.NRGBA, error) {
	canvas := image.NewNRGBA(image.Rect(0, 0, spec.MaxWidth, spec.MaxHeight))
	if background != nil && background != Transparent {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}

	byID := make(map[string]catalog.SourceImage, len(images))
	for _, img := range images {
		byID[img.ID] = img
	}

	for _, p := range placements {
		src, ok := byID[p.ID]
		if !ok {
			return nil, fmt.Errorf("placement references unknown image %q", p.ID)
		}
		target := image.Rect(p.X, p.Y, p.X+src.Width, p.Y+src.Height)
		draw.Draw(canvas, target, src.Image, src.Image.Bounds().Min, draw.Src)
	}
	return canvas, nil
}

// WriteAtlas encodes the canvas to path. The format is chosen from the
// file extension; callers are expected to have defaulted it to .png.
func WriteAtlas(canvas *image.NRGBA, path string) error {
	if err := imaging.Save(canvas, path); err != nil {
		return fmt.Errorf("failed to save atlas: %w", err)
	}
	return nil
}
