package catalog

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format decoder
	"golang.org/x/sync/errgroup"
)

// supportedExtensions is the allow-list of file extensions considered
// source images. WebM is accepted for parity with the directory layouts
// this tool is pointed at; with no still-frame decoder registered for it,
// a WebM file surfaces as a DecodeError rather than being skipped.
var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".webm": true,
}

// SourceImage is one validated catalog entry.
//
// ID is the source filename (base name, extension included) and is unique
// within a catalog since all entries come from one directory. Width and
// Height are always positive. Image holds the decoded pixels for the
// compositor; the packing engine consumes only the ID and dimensions.
type SourceImage struct {
	ID     string
	Width  int
	Height int
	Image  image.Image
}

// DecodeError reports a source file that matched the extension allow-list
// but could not be decoded into a usable image.
type DecodeError struct {
	Path string // file that failed
	Err  error  // underlying decode failure
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ErrEmptyCatalog is returned by Load when the input directory holds no
// file with a supported extension.
var ErrEmptyCatalog = errors.New("no supported image files found in input directory")

// Load reads every supported image in dir and returns the catalog sorted
// lexicographically by filename.
//
// Decoding runs on a bounded worker pool, one goroutine per CPU. Each
// worker writes to its own pre-assigned slot, so the concurrency never
// influences the returned order. The context cancels in-flight decodes
// when any file fails.
//
// Errors:
//   - *DecodeError if a matching file cannot be decoded or has a zero
//     dimension
//   - ErrEmptyCatalog if no matching files exist
//   - wrapped I/O errors if the directory itself cannot be read
func Load(ctx context.Context, dir string) ([]SourceImage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if supportedExtensions[ext] {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, ErrEmptyCatalog
	}
	sort.Strings(names)

	images := make([]SourceImage, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := decodeFile(filepath.Join(dir, name))
			if err != nil {
				return err
			}
			bounds := img.Bounds()
			if bounds.Dx() == 0 || bounds.Dy() == 0 {
				return &DecodeError{
					Path: filepath.Join(dir, name),
					Err:  fmt.Errorf("image has zero dimension (%dx%d)", bounds.Dx(), bounds.Dy()),
				}
			}
			images[i] = SourceImage{
				ID:     name,
				Width:  bounds.Dx(),
				Height: bounds.Dy(),
				Image:  img,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

// decodeFile opens and decodes a single image file.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}
