package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is where the log lives when nothing is configured.
	DefaultPath = "~/.mindmap.db"
	// ConfigPathEnv points at an extra directory holding .mindmap.yaml.
	ConfigPathEnv = "MINDMAP_CONFIG_PATH"
)

// Config locates the store and the zone used for calendar days.
type Config interface {
	BasePath() string
	Location() *time.Location
}

// LoadConfig reads .mindmap.yaml from MINDMAP_CONFIG_PATH or the working
// directory, with MINDMAP_* environment variables taking precedence. A .env
// file in the working directory is loaded into the environment first.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "store: load .env: %v\n", err)
	}

	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("timezone", "")
	v.SetConfigName(".mindmap") // .yaml is implicit
	v.SetEnvPrefix("MINDMAP")
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	return NewConfig(v.GetString("path"), v.GetString("timezone"))
}

// NewConfig builds a Config from a path (with ~ expanded) and an IANA zone
// name; an empty zone means the local zone.
func NewConfig(path, timezone string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	if path != MemoryPath {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("store: expand path %q: %w", path, err)
		}
		path = expanded
	}

	loc := time.Local
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("store: timezone %q: %w", timezone, err)
		}
		loc = l
	}
	return &fileConfig{Path: path, Zone: loc}, nil
}

type fileConfig struct {
	Path string         `json:"path"`
	Zone *time.Location `json:"-"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Location() *time.Location {
	if f.Zone == nil {
		return time.Local
	}
	return f.Zone
}
