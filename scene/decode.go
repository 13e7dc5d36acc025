package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
)

var errEmptyImage = errors.New("decode: empty image")

// ImageExtensions lists the file extensions accepted when adding sprites.
var ImageExtensions = []string{"png", "jpg", "jpeg", "bmp"}

// IsImageFile reports whether path has one of ImageExtensions.
func IsImageFile(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadImage reads and decodes the image at path.
func LoadImage(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	if img.Bounds().Empty() {
		return nil, &LoadError{Path: path, Err: errEmptyImage}
	}
	return img, nil
}
