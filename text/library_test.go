package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

func writeFont(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func testLibrary(t *testing.T) *Library {
	t.Helper()
	dir := t.TempDir()
	lib, err := NewLibrary(
		WithoutSystemFonts(),
		WithFontFiles(
			writeFont(t, dir, "Go-Regular.ttf", goregular.TTF),
			writeFont(t, dir, "Go-Bold.ttf", gobold.TTF),
		),
	)
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	t.Cleanup(func() { _ = lib.Close() })
	return lib
}

func TestLibraryFind(t *testing.T) {
	lib := testLibrary(t)

	tests := []struct {
		name      string
		desc      Descriptor
		wantStyle Style
		wantFile  string
	}{
		{"regular", Descriptor{Family: "Go", Style: StyleRegular}, StyleRegular, "Go-Regular.ttf"},
		{"bold", Descriptor{Family: "Go", Style: StyleBold}, StyleBold, "Go-Bold.ttf"},
		{"normalized name", Descriptor{Family: " go ", Style: StyleBold}, StyleBold, "Go-Bold.ttf"},
		{"missing italic falls back", Descriptor{Family: "Go", Style: StyleItalic}, StyleRegular, "Go-Regular.ttf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fi, err := lib.Find(tt.desc)
			if err != nil {
				t.Fatalf("Find: %v", err)
			}
			if fi.Style != tt.wantStyle {
				t.Errorf("Style = %v, want %v", fi.Style, tt.wantStyle)
			}
			if filepath.Base(fi.Path) != tt.wantFile {
				t.Errorf("Path = %s, want %s", fi.Path, tt.wantFile)
			}
		})
	}
}

func TestLibraryFindUnknown(t *testing.T) {
	lib := testLibrary(t)
	_, err := lib.Find(Descriptor{Family: "No Such Family"})
	if !errors.Is(err, ErrFontNotFound) {
		t.Errorf("error = %v, want ErrFontNotFound", err)
	}
}

func TestLibraryFamilies(t *testing.T) {
	lib := testLibrary(t)
	fams := lib.Families()
	if len(fams) != 1 || fams[0] != "Go" {
		t.Errorf("Families() = %q, want [Go]", fams)
	}
	if n := len(lib.Fonts()); n != 2 {
		t.Errorf("len(Fonts()) = %d, want 2", n)
	}
}

func TestLibraryAddFile(t *testing.T) {
	lib := testLibrary(t)
	if err := lib.AddFile(writeFont(t, t.TempDir(), "Go-Italic.ttf", goitalic.TTF)); err != nil {
		t.Fatalf("AddFile: %v", err)
	}
	fi, err := lib.Find(Descriptor{Family: "Go", Style: StyleItalic})
	if err != nil {
		t.Fatal(err)
	}
	if fi.Style != StyleItalic {
		t.Errorf("Style = %v, want Italic", fi.Style)
	}

	if err := lib.AddFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("AddFile of missing file succeeded")
	}
}

func TestLibraryOpenSharesSource(t *testing.T) {
	lib := testLibrary(t)
	a, err := lib.Open(Descriptor{Family: "Go", Size: 12})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	b, err := lib.Open(Descriptor{Family: "Go", Size: 20})
	if err != nil {
		t.Fatal(err)
	}
	if a.Source() != b.Source() {
		t.Error("faces of the same file do not share a source")
	}
	if a.Size() != 12 || b.Size() != 20 {
		t.Errorf("sizes = %v, %v", a.Size(), b.Size())
	}

	if err := lib.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Shape('A'); !errors.Is(err, ErrClosed) {
		t.Errorf("Shape after library Close: err = %v, want ErrClosed", err)
	}
}
