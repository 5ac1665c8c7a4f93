package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStoreSave(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	rel, err := store.Save("grievance_imgs", "fan.jpg", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if !strings.HasPrefix(rel, "grievance_imgs"+string(os.PathSeparator)) {
		t.Errorf("path = %q, want it rooted at the kind directory", rel)
	}
	if !strings.HasSuffix(rel, "_fan.jpg") {
		t.Errorf("path = %q, want the original name preserved after the prefix", rel)
	}
}

func TestLocalStoreSaveDistinctNames(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root)

	first, err := store.Save("profile_pics", "me.png", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	second, err := store.Save("profile_pics", "me.png", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}

	if first == second {
		t.Fatalf("both uploads stored at %q, want distinct names", first)
	}
	for _, rel := range []string{first, second} {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			t.Errorf("stored file missing: %v", err)
		}
	}
}

func TestLocalStoreSanitizesFilename(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root)

	rel, err := store.Save("profile_pics", "../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if strings.Contains(rel, "..") {
		t.Errorf("path %q escapes the store root", rel)
	}
	if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
		t.Errorf("stored file missing: %v", err)
	}
}
