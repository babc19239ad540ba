package stress

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeProfile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exercise.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write profile: %v", err)
	}
	return path
}

func TestLoadProfileFull(t *testing.T) {
	path := writeProfile(t, `
[exercise]
workers = 8
rounds = 50
sites = 12
`)

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	want := Profile{Workers: 8, Rounds: 50, Sites: 12}
	if p != want {
		t.Fatalf("profile = %+v, want %+v", p, want)
	}
}

func TestLoadProfilePartialKeepsDefaults(t *testing.T) {
	path := writeProfile(t, `
[exercise]
workers = 4
`)

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	defaults := DefaultProfile()
	if p.Workers != 4 {
		t.Errorf("workers = %d, want 4", p.Workers)
	}
	if p.Rounds != defaults.Rounds || p.Sites != defaults.Sites {
		t.Errorf("unset fields must keep defaults: %+v vs %+v", p, defaults)
	}
}

func TestLoadProfileMissingTable(t *testing.T) {
	path := writeProfile(t, `# nothing here`)

	_, err := LoadProfile(path)
	if !errors.Is(err, ErrProfileEmpty) {
		t.Fatalf("expected ErrProfileEmpty, got %v", err)
	}
}

func TestLoadProfileRejectsNonPositive(t *testing.T) {
	path := writeProfile(t, `
[exercise]
workers = 0
`)

	if _, err := LoadProfile(path); err == nil {
		t.Fatal("workers = 0 must fail validation")
	}
}

func TestLoadProfileBadTOML(t *testing.T) {
	path := writeProfile(t, `[exercise`)

	if _, err := LoadProfile(path); err == nil {
		t.Fatal("malformed TOML must be rejected")
	}
}

func TestProfileChecks(t *testing.T) {
	p := Profile{Workers: 3, Rounds: 4, Sites: 5}
	if got := p.Checks(); got != 60 {
		t.Fatalf("checks = %d, want 60", got)
	}
}
