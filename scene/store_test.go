package scene

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 0xff, A: 0xff})
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 2, 2))
}

func TestStoreAddDecodesFormats(t *testing.T) {
	dir := t.TempDir()

	bmpPath := filepath.Join(dir, "b.bmp")
	f, err := os.Create(bmpPath)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := bmp.Encode(f, image.NewRGBA(image.Rect(0, 0, 3, 3))); err != nil {
		t.Fatalf("bmp encode: %v", err)
	}
	f.Close()

	cases := []struct {
		name string
		path string
	}{
		{"png", writePNG(t, dir, "a.png")},
		{"bmp", bmpPath},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewStore(DefaultPlacement)
			idx, err := s.Add(c.path)
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			if idx != 0 {
				t.Fatalf("expected index 0, got %d", idx)
			}
			o, _ := s.Get(idx)
			if o.Fields() != DefaultPlacement {
				t.Fatalf("expected default placement, got %+v", o.Fields())
			}
			if o.Name != filepath.Base(c.path) {
				t.Fatalf("expected name %q, got %q", filepath.Base(c.path), o.Name)
			}
			if o.Image == nil {
				t.Fatalf("expected decoded image")
			}
		})
	}
}

func TestStoreAddLoadError(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cases := []struct {
		name string
		path string
	}{
		{"missing_file", filepath.Join(dir, "nope.png")},
		{"undecodable", garbage},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewStore(DefaultPlacement)
			_, err := s.Add(c.path)
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("expected LoadError, got %v", err)
			}
			if le.Path != c.path {
				t.Fatalf("expected path %q, got %q", c.path, le.Path)
			}
			if s.Len() != 0 {
				t.Fatalf("store should be unchanged, len=%d", s.Len())
			}
		})
	}
}

func TestStoreAddRemoveKeepsIndicesContiguous(t *testing.T) {
	ops := []struct {
		name    string
		adds    int
		removes []int
	}{
		{"none", 0, nil},
		{"add_only", 3, nil},
		{"remove_first", 3, []int{0}},
		{"remove_middle_then_last", 5, []int{2, 3}},
		{"remove_all", 3, []int{0, 0, 0}},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			s := NewStore(DefaultPlacement)
			for i := 0; i < op.adds; i++ {
				s.AddImage(string(rune('a'+i))+".png", testImage())
			}
			for _, r := range op.removes {
				if err := s.Remove(r); err != nil {
					t.Fatalf("Remove(%d): %v", r, err)
				}
			}
			want := op.adds - len(op.removes)
			if s.Len() != want || len(s.List()) != want {
				t.Fatalf("expected %d objects, got %d", want, s.Len())
			}
			for i := 0; i < want; i++ {
				if _, err := s.Get(i); err != nil {
					t.Fatalf("index %d should be valid: %v", i, err)
				}
			}
			if _, err := s.Get(want); !errors.Is(err, ErrIndexOutOfRange) {
				t.Fatalf("index %d should be out of range, got %v", want, err)
			}
		})
	}
}

func TestStoreRemovePreservesOrder(t *testing.T) {
	s := NewStore(DefaultPlacement)
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		s.AddImage(name, testImage())
	}
	if err := s.Remove(1); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	got := s.List()
	if got[0].Name != "a.png" || got[1].Name != "c.png" {
		t.Fatalf("unexpected order: %s, %s", got[0].Name, got[1].Name)
	}
	if err := s.Remove(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestStoreUpdate(t *testing.T) {
	cases := []struct {
		name      string
		fields    Fields
		wantErr   bool
		wantField string
	}{
		{"valid", Fields{X: -3, Y: 7, Width: 10, Height: 20}, false, ""},
		{"zero_width", Fields{X: 1, Y: 2, Width: 0, Height: 20}, true, "width"},
		{"negative_height", Fields{X: 1, Y: 2, Width: 10, Height: -5}, true, "height"},
		{"x_overflow", Fields{X: math.MaxInt - 5, Y: 2, Width: 10, Height: 20}, true, "x"},
		{"y_overflow", Fields{X: 1, Y: math.MaxInt, Width: 10, Height: 1}, true, "y"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewStore(DefaultPlacement)
			idx := s.AddImage("a.png", testImage())
			before, _ := s.Get(idx)

			err := s.Update(idx, c.fields)
			after, _ := s.Get(idx)
			if !c.wantErr {
				if err != nil {
					t.Fatalf("Update: %v", err)
				}
				if after.Fields() != c.fields {
					t.Fatalf("expected %+v, got %+v", c.fields, after.Fields())
				}
				if after.Bounds() != image.Rect(-3, 7, 7, 27) {
					t.Fatalf("unexpected bounds %v", after.Bounds())
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != c.wantField {
				t.Fatalf("expected field %q, got %q", c.wantField, ve.Field)
			}
			if after.Fields() != before.Fields() {
				t.Fatalf("fields changed on failed update: %+v -> %+v", before.Fields(), after.Fields())
			}
		})
	}
}

func TestFieldsValidateEdge(t *testing.T) {
	// the far edge may land exactly on MaxInt
	f := Fields{X: math.MaxInt - 10, Y: math.MaxInt - 1, Width: 10, Height: 1}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	o := SpriteObject{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height}
	if o.Contains(0, 0) {
		t.Fatalf("object near MaxInt must not contain the origin")
	}
}

func TestSpriteObjectContains(t *testing.T) {
	o := SpriteObject{X: 10, Y: 20, Width: 5, Height: 5}
	cases := []struct {
		px, py int
		want   bool
	}{
		{10, 20, true},
		{14, 24, true},
		{15, 24, false},
		{14, 25, false},
		{9, 20, false},
	}
	for _, c := range cases {
		if got := o.Contains(c.px, c.py); got != c.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", c.px, c.py, got, c.want)
		}
	}
}

func TestStoreReload(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "a.png")

	s := NewStore(DefaultPlacement)
	if _, err := s.Add(path); err != nil {
		t.Fatalf("Add: %v", err)
	}
	s.AddImage(filepath.Join(dir, "other.png"), testImage())
	if _, err := s.Add(path); err != nil {
		t.Fatalf("Add: %v", err)
	}

	n, err := s.Reload(path)
	if err != nil || n != 2 {
		t.Fatalf("Reload: n=%d err=%v", n, err)
	}

	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	n, err = s.Reload(path)
	if n != 2 || err == nil {
		t.Fatalf("expected failed reload of 2 objects, n=%d err=%v", n, err)
	}
	objs := s.List()
	if objs[0].Image != nil || objs[2].Image != nil {
		t.Fatalf("failed reload should clear the image handle")
	}
	if objs[1].Image == nil {
		t.Fatalf("unrelated object should keep its image")
	}

	if n, _ := s.Reload(filepath.Join(dir, "unknown.png")); n != 0 {
		t.Fatalf("expected no objects touched, got %d", n)
	}
}

func TestNewStoreRejectsInvalidPlacement(t *testing.T) {
	s := NewStore(Fields{Width: 0, Height: 10})
	idx := s.AddImage("a.png", testImage())
	o, _ := s.Get(idx)
	if o.Fields() != DefaultPlacement {
		t.Fatalf("expected default placement, got %+v", o.Fields())
	}
}

func TestIsImageFile(t *testing.T) {
	for path, want := range map[string]bool{
		"a.png":      true,
		"b.JPG":      true,
		"c.jpeg":     true,
		"d.bmp":      true,
		"e.gif":      false,
		"noext":      false,
		"dir/f.Png":  true,
		"setup.yaml": false,
	} {
		if got := IsImageFile(path); got != want {
			t.Errorf("IsImageFile(%q) = %v, want %v", path, got, want)
		}
	}
}
