// Package image provides image loading and pixel sampling for colour
// capture.
package image

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/jmylchreest/mixtint/internal/colour"
)

// supportedExtensions lists the file extensions accepted by ValidatePath.
var supportedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// Loader handles loading images from a source.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}

// ValidatePath checks that the path has a supported image extension.
// Existence and decodability are checked by Load.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("image path cannot be empty")
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(supportedExtensions, ext) {
		return fmt.Errorf("unsupported image format %q (supported: %s)",
			ext, strings.Join(supportedExtensions, ", "))
	}
	return nil
}

// SampleAt returns the RGB value of the pixel at (x, y). Coordinates
// are clamped to the image bounds, matching how out-of-range picks are
// snapped to the nearest edge pixel.
func SampleAt(img image.Image, x, y int) colour.RGB {
	bounds := img.Bounds()
	x = clamp(x, bounds.Min.X, bounds.Max.X-1)
	y = clamp(y, bounds.Min.Y, bounds.Max.Y-1)
	return colour.ToRGB(img.At(x, y))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
