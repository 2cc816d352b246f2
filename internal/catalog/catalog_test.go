package catalog

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a solid-color PNG of the given size into dir.
func writeTestPNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{200, 100, 50, 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", name, err)
	}
	return path
}

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "b.png", 20, 30)
	writeTestPNG(t, dir, "a.png", 10, 15)

	images, err := Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(images) != 2 {
		t.Fatalf("loaded %d images, want 2", len(images))
	}
	if images[0].ID != "a.png" || images[1].ID != "b.png" {
		t.Errorf("order = [%s, %s], want [a.png, b.png]", images[0].ID, images[1].ID)
	}
	if images[0].Width != 10 || images[0].Height != 15 {
		t.Errorf("a.png dimensions = %dx%d, want 10x15", images[0].Width, images[0].Height)
	}
	if images[1].Image == nil {
		t.Error("pixel data missing for b.png")
	}
}

func TestLoad_OrderIsLexicographic(t *testing.T) {
	dir := t.TempDir()
	// Written out of order; the catalog must not care.
	names := []string{"zebra.png", "apple.png", "mango.png", "10.png", "2.png"}
	for _, n := range names {
		writeTestPNG(t, dir, n, 4, 4)
	}

	images, err := Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Plain byte order, so "10.png" sorts before "2.png".
	want := []string{"10.png", "2.png", "apple.png", "mango.png", "zebra.png"}
	for i, w := range want {
		if images[i].ID != w {
			t.Errorf("images[%d].ID = %s, want %s", i, images[i].ID, w)
		}
	}
}

func TestLoad_Deterministic(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"c.png", "a.png", "d.png", "b.png", "e.png"} {
		writeTestPNG(t, dir, n, 8, 8)
	}

	first, err := Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for run := 0; run < 5; run++ {
		again, err := Load(context.Background(), dir)
		if err != nil {
			t.Fatalf("Load failed on run %d: %v", run, err)
		}
		for i := range first {
			if again[i].ID != first[i].ID {
				t.Fatalf("run %d: images[%d].ID = %s, want %s", run, i, again[i].ID, first[i].ID)
			}
		}
	}
}

func TestLoad_SkipsUnsupportedExtensions(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "keep.png", 5, 5)
	writeFile(t, dir, "notes.txt", "not an image")
	writeFile(t, dir, "data.bin", "\x00\x01\x02")

	images, err := Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(images) != 1 || images[0].ID != "keep.png" {
		t.Errorf("loaded %v, want just keep.png", images)
	}
}

func TestLoad_SkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "top.png", 5, 5)
	sub := filepath.Join(dir, "nested.png") // directory named like an image
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("failed to create subdirectory: %v", err)
	}
	writeTestPNG(t, sub, "inner.png", 5, 5)

	images, err := Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(images) != 1 || images[0].ID != "top.png" {
		t.Errorf("loaded %d images, want only top.png", len(images))
	}
}

func TestLoad_EmptyDirectory(t *testing.T) {
	_, err := Load(context.Background(), t.TempDir())
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Load error = %v, want ErrEmptyCatalog", err)
	}
}

func TestLoad_NoMatchingExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "readme.md", "# readme")
	writeFile(t, dir, "image.tiff", "tiff-ish")

	_, err := Load(context.Background(), dir)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Load error = %v, want ErrEmptyCatalog", err)
	}
}

func TestLoad_CorruptImage(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "good.png", 5, 5)
	writeFile(t, dir, "bad.png", "definitely not a png")

	_, err := Load(context.Background(), dir)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Load error = %v, want *DecodeError", err)
	}
	if filepath.Base(decodeErr.Path) != "bad.png" {
		t.Errorf("error names %s, want bad.png", decodeErr.Path)
	}
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Error("Load should fail for a missing directory")
	}
}

func TestLoad_ManyFilesConcurrently(t *testing.T) {
	// Enough files to exercise the worker pool; order must still hold.
	dir := t.TempDir()
	for i := 0; i < 50; i++ {
		writeTestPNG(t, dir, string(rune('a'+i%26))+"-"+string(rune('0'+i/26))+".png", 3+i%7, 3+i%5)
	}

	images, err := Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for i := 1; i < len(images); i++ {
		if images[i-1].ID >= images[i].ID {
			t.Errorf("order violated at %d: %s >= %s", i, images[i-1].ID, images[i].ID)
		}
	}
	for _, img := range images {
		if img.Width <= 0 || img.Height <= 0 {
			t.Errorf("image %s has degenerate dimensions %dx%d", img.ID, img.Width, img.Height)
		}
	}
}
