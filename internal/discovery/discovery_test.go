package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindConfigInStartDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFilename)
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FindConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("FindConfig = %q, want %q", got, path)
	}
}

func TestFindConfigWalksUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "components")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, ConfigFilename)
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FindConfig(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("FindConfig = %q, want %q", got, path)
	}
}

func TestFindConfigNearestWins(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "app")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ConfigFilename), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	nearest := filepath.Join(nested, ConfigFilename)
	if err := os.WriteFile(nearest, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FindConfig(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != nearest {
		t.Errorf("FindConfig = %q, want nearest %q", got, nearest)
	}
}

func TestFindConfigMissingIsNotAnError(t *testing.T) {
	got, err := FindConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("FindConfig = %q, want empty", got)
	}
}
