package store

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/lwcharts/pkg/errors"
)

// Store is a byte-oriented key/value store for published documents.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A ttl of zero means the entry does not expire.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by [Open].
const (
	BackendNull   = "null"
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config selects and configures a store backend.
type Config struct {
	Backend string `toml:"backend" yaml:"backend"`

	// Dir is the root directory of the file backend.
	Dir string `toml:"dir" yaml:"dir"`

	RedisAddr     string `toml:"redis_addr" yaml:"redis_addr"`
	RedisPassword string `toml:"redis_password" yaml:"redis_password"`
	RedisDB       int    `toml:"redis_db" yaml:"redis_db"`

	MongoURI        string `toml:"mongo_uri" yaml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database" yaml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection" yaml:"mongo_collection"`

	// TTL applies to every entry written through a publisher.
	TTL time.Duration `toml:"ttl" yaml:"ttl"`
}

// Defaults for [Config].
const (
	DefaultDir             = ".lwcharts"
	DefaultRedisAddr       = "localhost:6379"
	DefaultMongoDatabase   = "lwcharts"
	DefaultMongoCollection = "documents"
)

// ValidateAndSetDefaults normalizes the backend name and fills in the
// defaults of the selected backend.
func (c *Config) ValidateAndSetDefaults() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = BackendNull
	}
	switch c.Backend {
	case BackendNull, BackendMemory:
	case BackendFile:
		if c.Dir == "" {
			c.Dir = DefaultDir
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			c.RedisAddr = DefaultRedisAddr
		}
	case BackendMongo:
		if c.MongoURI == "" {
			return errors.New(errors.ErrCodeInvalidInput, "mongo backend requires a connection URI")
		}
		if c.MongoDatabase == "" {
			c.MongoDatabase = DefaultMongoDatabase
		}
		if c.MongoCollection == "" {
			c.MongoCollection = DefaultMongoCollection
		}
	default:
		return errors.New(errors.ErrCodeUnsupported, "unknown store backend %q", c.Backend)
	}
	if c.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "store ttl must not be negative")
	}
	return nil
}

// Open validates cfg and connects the selected backend.
func Open(ctx context.Context, cfg Config) (Store, error) {
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		s, err := NewFileStore(cfg.Dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "open file store %s", cfg.Dir)
		}
		return s, nil
	case BackendRedis:
		s, err := NewRedisStore(ctx, RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "open redis store %s", cfg.RedisAddr)
		}
		return s, nil
	case BackendMongo:
		s, err := NewMongoStore(ctx, MongoConfig{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "open mongo store")
		}
		return s, nil
	default:
		return NewNullStore(), nil
	}
}
