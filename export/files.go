package export

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/milk9111/spritestage/scene"
)

// fileNames returns the name each object's image is stored under next to a
// script exported into dir, in object order. Objects sharing a source share a
// name. Distinct sources with the same base name get a numbered suffix
// (hero.png, hero_1.png, ...); a source that already lives in dir keeps its
// own name so it is never overwritten by another copy. An empty dir skips
// that check.
func fileNames(objects []scene.SpriteObject, dir string) ([]string, error) {
	names := make([]string, len(objects))
	bySource := make(map[string]string, len(objects))
	// keys are lower case: macOS volumes are case insensitive by default
	taken := make(map[string]bool, len(objects))

	for _, o := range objects {
		base := filepath.Base(o.Path)
		if !utf8.ValidString(base) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFileName, o.Path)
		}
		src := sourceKey(o.Path)
		if _, ok := bySource[src]; ok {
			continue
		}
		if dir != "" && samePath(o.Path, filepath.Join(dir, base)) {
			bySource[src] = base
			taken[strings.ToLower(base)] = true
		}
	}

	for i, o := range objects {
		src := sourceKey(o.Path)
		if name, ok := bySource[src]; ok {
			names[i] = name
			continue
		}
		name := freeName(filepath.Base(o.Path), taken)
		taken[strings.ToLower(name)] = true
		bySource[src] = name
		names[i] = name
	}
	return names, nil
}

// freeName returns base, or the first stem_N variant of it, not in taken.
func freeName(base string, taken map[string]bool) string {
	if !taken[strings.ToLower(base)] {
		return base
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for n := 1; ; n++ {
		name := stem + "_" + strconv.Itoa(n) + ext
		if !taken[strings.ToLower(name)] {
			return name
		}
	}
}

func sourceKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// distinct returns names with repeats removed, keeping first occurrences.
func distinct(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
