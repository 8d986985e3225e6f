package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestLoadDefaults(t *testing.T) {
	fsys := afero.NewMemMapFs()
	c, err := Load(fsys, "/home/u/.pfio/config.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := c.LogLevel(); got != "info" {
		t.Errorf("LogLevel() = %q, want %q", got, "info")
	}
	if got := c.DemoPath(); got != "t.txt" {
		t.Errorf("DemoPath() = %q, want %q", got, "t.txt")
	}
	if got := c.DemoBuffer(); got != 255 {
		t.Errorf("DemoBuffer() = %d, want 255", got)
	}
	perm, err := c.FilePerm()
	if err != nil {
		t.Fatal(err)
	}
	if perm != 0666 {
		t.Errorf("FilePerm() = %o, want 666", perm)
	}
}

func TestLoadFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	content := "version: 1.2.0\nlog:\n  level: debug\nfile:\n  perm: \"0600\"\ndemo:\n  text: from file\n"
	if err := afero.WriteFile(fsys, "/cfg/config.yaml", []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(fsys, "/cfg/config.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := c.LogLevel(); got != "debug" {
		t.Errorf("LogLevel() = %q, want %q", got, "debug")
	}
	if got := c.DemoText(); got != "from file" {
		t.Errorf("DemoText() = %q, want %q", got, "from file")
	}
	perm, err := c.FilePerm()
	if err != nil {
		t.Fatal(err)
	}
	if perm != 0600 {
		t.Errorf("FilePerm() = %o, want 600", perm)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PFIO_LOG_LEVEL", "warn")
	c, err := Load(afero.NewMemMapFs(), "/none/config.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.LogLevel(); got != "warn" {
		t.Errorf("LogLevel() = %q, want %q", got, "warn")
	}
}

func TestLoadUnsupportedVersion(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/c.yaml", []byte("version: 2.0.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(fsys, "/c.yaml"); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("Load error = %v, want ErrUnsupportedVersion", err)
	}
}

func TestLoadBadVersion(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/c.yaml", []byte("version: banana\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(fsys, "/c.yaml"); err == nil {
		t.Error("expected error for unparsable version")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/c.yaml", []byte("log: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(fsys, "/c.yaml"); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestSetAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")
	fsys := afero.NewOsFs()

	c, err := Load(fsys, path)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(fsys, KeyDemoText, "written"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "written") {
		t.Errorf("config file missing value:\n%s", data)
	}

	reloaded, err := Load(fsys, path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := reloaded.Get(KeyDemoText); got != "written" {
		t.Errorf("Get(%s) = %q, want %q", KeyDemoText, got, "written")
	}
}

func TestBadFilePerm(t *testing.T) {
	t.Setenv("PFIO_FILE_PERM", "rw-r--r--")
	c, err := Load(afero.NewMemMapFs(), "/x/config.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.FilePerm(); err == nil {
		t.Error("expected error for non-octal perm")
	}
}

func TestFilePathUnderDir(t *testing.T) {
	if filepath.Dir(FilePath()) != Dir() {
		t.Errorf("FilePath() %q not inside Dir() %q", FilePath(), Dir())
	}
}

func TestSetWritesOnlyFileKeys(t *testing.T) {
	fsys := afero.NewMemMapFs()
	path := "/home/u/.pfio/config.yaml"
	if err := afero.WriteFile(fsys, path, []byte("version: 1.0.0\ndemo:\n  path: kept.txt\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PFIO_LOG_LEVEL", "debug")

	c, err := Load(fsys, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := c.Set(fsys, KeyDemoText, "x"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatal(err)
	}
	written := string(data)
	for _, leaked := range []string{"debug", "buffer", "perm", "format"} {
		if strings.Contains(written, leaked) {
			t.Errorf("config file contains %q:\n%s", leaked, written)
		}
	}
	for _, want := range []string{"kept.txt", "text: x", "version"} {
		if !strings.Contains(written, want) {
			t.Errorf("config file missing %q:\n%s", want, written)
		}
	}
	if got := c.DemoText(); got != "x" {
		t.Errorf("DemoText() after Set = %q, want %q", got, "x")
	}
}

func TestDefaults(t *testing.T) {
	t.Setenv("PFIO_DEMO_TEXT", "from env")

	c := Defaults()
	if got := c.DemoPath(); got != "t.txt" {
		t.Errorf("DemoPath() = %q, want %q", got, "t.txt")
	}
	if got := c.DemoText(); got != "from env" {
		t.Errorf("DemoText() = %q, want %q", got, "from env")
	}
	if got := c.Path(); got != FilePath() {
		t.Errorf("Path() = %q, want %q", got, FilePath())
	}
}
