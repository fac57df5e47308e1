// Package settings exposes the process-wide Settings singleton consumed by
// the install scheduler and diagnostics: jobs, raw, and status.missing_tools.
// Backed by spf13/viper, bound to FORGE_-prefixed env vars.
package settings

import (
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// MissingTools is the tri-state controlling diagnostic emission for tools
// with missing versions: Never, Always, or IfOtherVersionsInstalled.
type MissingTools string

const (
	MissingToolsNever                    MissingTools = "never"
	MissingToolsAlways                   MissingTools = "always"
	MissingToolsIfOtherVersionsInstalled MissingTools = "if_other_versions_installed"
)

// Settings is the snapshot of process-wide configuration knobs.
type Settings struct {
	Jobs               int
	Raw                bool
	StatusMissingTools MissingTools

	DownloadTimeout time.Duration
	TLSTimeout      time.Duration
	ResponseTimeout time.Duration
	IdleTimeout     time.Duration
	MaxRetries      int
	RetryDelay      time.Duration
	MinFileSize     int64
	MaxFileSize     int64
}

var (
	once sync.Once
	v    *viper.Viper
	cur  Settings
	mu   sync.RWMutex
)

func initViper() {
	v = viper.New()
	v.SetEnvPrefix("FORGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("jobs", 4)
	v.SetDefault("raw", false)
	v.SetDefault("status.missing_tools", string(MissingToolsIfOtherVersionsInstalled))
	v.SetDefault("download_timeout", 10*time.Minute)
	v.SetDefault("tls_timeout", 2*time.Minute)
	v.SetDefault("response_timeout", 2*time.Minute)
	v.SetDefault("idle_timeout", 90*time.Second)
	v.SetDefault("max_retries", 3)
	v.SetDefault("retry_delay", 2*time.Second)
	v.SetDefault("min_file_size", int64(1024))
	v.SetDefault("max_file_size", int64(2*1024*1024*1024))

	reload()
}

func reload() {
	mu.Lock()
	defer mu.Unlock()
	cur = Settings{
		Jobs:               v.GetInt("jobs"),
		Raw:                v.GetBool("raw"),
		StatusMissingTools: MissingTools(v.GetString("status.missing_tools")),
		DownloadTimeout:    v.GetDuration("download_timeout"),
		TLSTimeout:         v.GetDuration("tls_timeout"),
		ResponseTimeout:    v.GetDuration("response_timeout"),
		IdleTimeout:        v.GetDuration("idle_timeout"),
		MaxRetries:         v.GetInt("max_retries"),
		RetryDelay:         v.GetDuration("retry_delay"),
		MinFileSize:        v.GetInt64("min_file_size"),
		MaxFileSize:        v.GetInt64("max_file_size"),
	}
}

// Get returns the current Settings snapshot, initializing on first use.
func Get() Settings {
	once.Do(initViper)
	mu.RLock()
	defer mu.RUnlock()
	return cur
}

// Set overrides a setting for the process lifetime (tests, `--jobs` flags).
// Pass one of: "jobs", "raw", "status.missing_tools", ...
func Set(key string, value interface{}) {
	once.Do(initViper)
	v.Set(key, value)
	reload()
}
