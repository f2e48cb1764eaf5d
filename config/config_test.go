package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hashkv.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromEnvPath(t *testing.T) {
	path := writeConfig(t, `
table:
  initial_buckets: 8
  rehash_ratio: 1.5
server:
  host: 0.0.0.0
  port: 9000
`)
	t.Setenv("HASHKV_CONFIG", path)

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{
		Table:  TableConfig{InitialBuckets: 8, RehashRatio: 1.5},
		Server: ServerConfig{Host: "0.0.0.0", Port: 9000},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HASHKV_CONFIG", filepath.Join(t.TempDir(), "nope.yml"))

	got, err := Load()
	if err != nil {
		t.Fatalf("Load with no config present: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("defaults not applied (-want +got):\n%s", diff)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 7001
`)
	t.Setenv("HASHKV_CONFIG", path)

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Server.Port != 7001 {
		t.Errorf("port = %d, want 7001", got.Server.Port)
	}
	if got.Table.InitialBuckets != DefaultInitialBuckets {
		t.Errorf("initial_buckets = %d, want default %d", got.Table.InitialBuckets, DefaultInitialBuckets)
	}
	if got.Table.RehashRatio != DefaultRehashRatio {
		t.Errorf("rehash_ratio = %v, want default %v", got.Table.RehashRatio, DefaultRehashRatio)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	for name, content := range map[string]string{
		"zero buckets":   "table:\n  initial_buckets: 0\n",
		"negative ratio": "table:\n  rehash_ratio: -2.0\n",
		"bad port":       "server:\n  port: 70000\n",
		"bad yaml":       "table: [not a mapping\n",
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv("HASHKV_CONFIG", writeConfig(t, content))
			if _, err := Load(); err == nil {
				t.Error("Load accepted an invalid config")
			}
		})
	}
}
