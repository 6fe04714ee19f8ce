package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"MEAL_API_BASE", "MEAL_SCHOOL_CODE", "MEAL_OFFICE_CODE", "MEAL_THEME"} {
		t.Setenv(k, "")
	}
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if c != Default() {
		t.Fatalf("got %+v, want defaults", c)
	}
}

func TestSaveLoadAndEnv(t *testing.T) {
	home := isolate(t)
	c := Default()
	if err := c.Set("school", "1234567"); err != nil {
		t.Fatal(err)
	}
	if err := c.Set("timeout", "3s"); err != nil {
		t.Fatal(err)
	}
	if err := Save(c); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(filepath.Join(home, dirName, fileName))
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Fatalf("perm = %v", fi.Mode().Perm())
	}

	t.Setenv("MEAL_OFFICE_CODE", "B10")
	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.SchoolCode != "1234567" || got.OfficeCode != "B10" || got.Timeout != 3*time.Second {
		t.Fatalf("unexpected config: %+v", got)
	}

	got.Override("", "", "C10", "mono", 0)
	if got.OfficeCode != "C10" || got.Theme != "mono" || got.SchoolCode != "1234567" {
		t.Fatalf("override: %+v", got)
	}
}

func TestLoadBadFile(t *testing.T) {
	home := isolate(t)
	if err := os.MkdirAll(filepath.Join(home, dirName), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, dirName, fileName), []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSet(t *testing.T) {
	c := Default()
	bad := map[string]string{
		"theme":   "rainbow",
		"timeout": "-1s",
		"school":  "  ",
		"colour":  "red",
	}
	for k, v := range bad {
		if err := c.Set(k, v); err == nil {
			t.Errorf("Set(%q, %q) succeeded", k, v)
		}
	}
	if err := c.Set("theme", "NEON"); err != nil || c.Get("theme") != "neon" {
		t.Fatalf("theme set: %v %q", err, c.Theme)
	}
	if c.Get("timeout") != "8s" {
		t.Fatalf("timeout = %q", c.Get("timeout"))
	}
}
