package cli

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lwcharts/pkg/store"
)

// Environment variables read by the CLI.
const (
	envStore         = "LWCHARTS_STORE"
	envStoreDir      = "LWCHARTS_STORE_DIR"
	envRedisAddr     = "LWCHARTS_REDIS_ADDR"
	envRedisPassword = "LWCHARTS_REDIS_PASSWORD"
	envMongoURI      = "LWCHARTS_MONGO_URI"
	envNamespace     = "LWCHARTS_NAMESPACE"
)

// LoadEnv loads a .env file from the working directory into the process
// environment. Variables that are already set win. A missing file is not
// an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// storeFlags are the store settings shared by commands that touch the store.
// Flags override the environment.
type storeFlags struct {
	backend string
	dir     string
	ttl     time.Duration
}

func (f *storeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.backend, "store", "", "store backend: null, memory, file, redis, mongo (default $"+envStore+" or file)")
	cmd.Flags().StringVar(&f.dir, "store-dir", "", "file store directory (default $"+envStoreDir+" or the user data dir)")
	cmd.Flags().DurationVar(&f.ttl, "ttl", 0, "expiry of published documents (0 keeps them)")
}

// config merges flags, environment and defaults into a store config.
func (f storeFlags) config() (store.Config, error) {
	cfg := store.Config{
		Backend:       firstNonEmpty(f.backend, os.Getenv(envStore), store.BackendFile),
		Dir:           firstNonEmpty(f.dir, os.Getenv(envStoreDir)),
		RedisAddr:     os.Getenv(envRedisAddr),
		RedisPassword: os.Getenv(envRedisPassword),
		MongoURI:      os.Getenv(envMongoURI),
		TTL:           f.ttl,
	}
	if cfg.Dir == "" {
		dir, err := dataDir()
		if err != nil {
			return cfg, err
		}
		cfg.Dir = dir
	}
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
