package btree

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLoadConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kvtree")
	defer teardown()

	cfg, err := LoadConfig(strings.NewReader("order: 7\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Order != 7 {
		t.Fatalf("expected order 7, got %d", cfg.Order)
	}
	tree, err := NewWithConfig[string, int](cfg)
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	if tree.Order() != 7 {
		t.Fatalf("tree did not pick up configured order: %d", tree.Order())
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, doc := range []string{"", "   \n", "# nothing here\n"} {
		cfg, err := LoadConfig(strings.NewReader(doc))
		if err != nil {
			t.Fatalf("document %q: unexpected error: %v", doc, err)
		}
		if cfg.Order != DefaultOrder {
			t.Fatalf("document %q: expected default order, got %d", doc, cfg.Order)
		}
	}
}

func TestLoadConfigRejectsInvalidInput(t *testing.T) {
	for _, doc := range []string{
		"order: 2\n",
		"order: -5\n",
		"order: many\n",
		"degree: 12\n",
		"order: [1, 2]\n",
	} {
		if _, err := LoadConfig(strings.NewReader(doc)); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("document %q: expected ErrInvalidConfig, got %v", doc, err)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	cfg, err := LoadConfigFile("")
	if err != nil || cfg != DefaultConfig() {
		t.Fatalf("empty path: expected default config, got %+v, %v", cfg, err)
	}
	dir := t.TempDir()
	cfg, err = LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	if err != nil || cfg != DefaultConfig() {
		t.Fatalf("missing file: expected default config, got %+v, %v", cfg, err)
	}
	path := filepath.Join(dir, "btree.yaml")
	if err := os.WriteFile(path, []byte("order: 5\n"), 0o644); err != nil {
		t.Fatalf("cannot write config file: %v", err)
	}
	cfg, err = LoadConfigFile(path)
	if err != nil || cfg.Order != 5 {
		t.Fatalf("expected order 5, got %+v, %v", cfg, err)
	}
}

func TestConfigBounds(t *testing.T) {
	cases := []struct {
		order, maxKeys, floor, minKeys int
	}{
		{3, 2, 2, 1},
		{4, 3, 2, 1},
		{5, 4, 3, 2},
		{6, 5, 3, 2},
		{32, 31, 16, 15},
	}
	for _, c := range cases {
		cfg := Config{Order: c.order}
		if cfg.maxKeys() != c.maxKeys || cfg.floorOrder() != c.floor || cfg.minKeys() != c.minKeys {
			t.Fatalf("order %d: got max=%d floor=%d min=%d", c.order,
				cfg.maxKeys(), cfg.floorOrder(), cfg.minKeys())
		}
	}
}
