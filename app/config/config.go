package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port string `yaml:"port" json:"port"`
	Mode string `yaml:"mode" json:"mode"` // "debug" or "release", passed to gin.SetMode
}

// CacheConfig controls the three-tier result cache.
type CacheConfig struct {
	RedisURL      string `yaml:"redis_url" json:"redis_url"`
	MongoURL      string `yaml:"mongo_url" json:"mongo_url"`
	MongoDatabase string `yaml:"mongo_database" json:"mongo_database"`
	L1Size        int    `yaml:"l1_size" json:"l1_size"`
	TTLHours      int    `yaml:"ttl_hours" json:"ttl_hours"`
}

// StreetIndexConfig points at the offline-built FST blob.
type StreetIndexConfig struct {
	BlobPath string `yaml:"blob_path" json:"blob_path"`
}

// AppConfig is the full static configuration, loaded from YAML and
// overridable by environment variables (see cmd/api/main.go's viper
// wiring for the env-override layer).
type AppConfig struct {
	Server      ServerConfig      `yaml:"server" json:"server"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	StreetIndex StreetIndexConfig `yaml:"street_index" json:"street_index"`
}

// C is the process-wide loaded configuration.
var C AppConfig

// Load reads and parses the YAML config file at path into C, applying
// built-in defaults first so a partial or missing file still yields a
// runnable configuration.
func Load(path string) error {
	C = AppConfig{
		Server: ServerConfig{Port: "8080", Mode: "release"},
		Cache: CacheConfig{
			RedisURL:      "redis://localhost:6379",
			MongoURL:      "mongodb://localhost:27017",
			MongoDatabase: "cardparser",
			L1Size:        10000,
			TTLHours:      24,
		},
		StreetIndex: StreetIndexConfig{BlobPath: "data/streetindex.fst"},
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return yaml.Unmarshal(b, &C)
}
