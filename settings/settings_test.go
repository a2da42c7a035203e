package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "config.json"))

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataSource != SourceBaoStock {
		t.Errorf("Expected default data source, got %q", cfg.DataSource)
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "config.json"))

	if err := store.Save(Settings{DataSource: SourceQMT}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataSource != SourceQMT {
		t.Errorf("Expected qmt, got %q", cfg.DataSource)
	}
}

func TestStore_SaveUnknownSource(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "config.json"))

	if err := store.Save(Settings{DataSource: "yahoo"}); err == nil {
		t.Fatal("Expected error for unknown data source")
	}
}

func TestStore_LoadMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataSource != SourceBaoStock {
		t.Errorf("Expected default merged in, got %q", cfg.DataSource)
	}
}
