package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/store"
)

func TestDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")

	dir, err := dataDir()
	if err != nil {
		t.Fatalf("dataDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".local", "share", appName)
	if dir != expected {
		t.Errorf("dataDir() = %q, want %q", dir, expected)
	}
}

func TestDataDirXDG(t *testing.T) {
	customData := "/tmp/custom-data"
	t.Setenv("XDG_DATA_HOME", customData)

	dir, err := dataDir()
	if err != nil {
		t.Fatalf("dataDir() error: %v", err)
	}

	expected := filepath.Join(customData, appName)
	if dir != expected {
		t.Errorf("dataDir() with XDG_DATA_HOME = %q, want %q", dir, expected)
	}
}

func TestStoreFlagsConfig(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	t.Setenv(envStore, "")
	t.Setenv(envStoreDir, "")
	t.Setenv(envRedisAddr, "")
	t.Setenv(envMongoURI, "")

	tests := []struct {
		name        string
		env         map[string]string
		flags       storeFlags
		wantBackend string
		wantDir     string
		wantCode    errors.Code
	}{
		{
			name:        "defaults to file store in data dir",
			wantBackend: store.BackendFile,
			wantDir:     "/tmp/xdg/lwcharts",
		},
		{
			name:        "environment",
			env:         map[string]string{envStore: "Memory", envStoreDir: "/srv/charts"},
			wantBackend: store.BackendMemory,
			wantDir:     "/srv/charts",
		},
		{
			name:        "flags override environment",
			env:         map[string]string{envStore: "redis", envStoreDir: "/srv/charts"},
			flags:       storeFlags{backend: "file", dir: "/var/charts"},
			wantBackend: store.BackendFile,
			wantDir:     "/var/charts",
		},
		{
			name:     "mongo without uri",
			env:      map[string]string{envStore: "mongo"},
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "unknown backend",
			flags:    storeFlags{backend: "etcd"},
			wantCode: errors.ErrCodeUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := tt.flags.config()
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Errorf("config() error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("config() error: %v", err)
			}
			if cfg.Backend != tt.wantBackend {
				t.Errorf("Backend = %q, want %q", cfg.Backend, tt.wantBackend)
			}
			if cfg.Dir != tt.wantDir {
				t.Errorf("Dir = %q, want %q", cfg.Dir, tt.wantDir)
			}
		})
	}
}

func TestNewKeyer(t *testing.T) {
	t.Setenv(envNamespace, "")
	if got := newKeyer().DocumentKey("a"); got != "document:a" {
		t.Errorf("DocumentKey() = %q, want %q", got, "document:a")
	}

	t.Setenv(envNamespace, "team")
	if got := newKeyer().DocumentKey("a"); got != "team:document:a" {
		t.Errorf("DocumentKey() = %q, want %q", got, "team:document:a")
	}
}

func TestLoadEnv(t *testing.T) {
	const key = "LWCHARTS_TEST_DOTENV"
	t.Cleanup(func() { os.Unsetenv(key) })

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("LoadEnv(missing) error: %v", err)
	}
	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}
	if got := os.Getenv(key); got != "from-file" {
		t.Errorf("%s = %q, want %q", key, got, "from-file")
	}
}
