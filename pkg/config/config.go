// Package config loads VulnSentinel configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the top-level process configuration.
type Config struct {
	GitHubToken  string
	CursorSecret string

	Intervals IntervalConfig
	Collector CollectorConfig
	LLM       LLMConfig
	SMTP      SMTPConfig
	Scanner   ScannerConfig
	CallGraph CallGraphConfig
}

// IntervalConfig holds the per-stage poll cadences. Dependency scanning is
// the slowest; everything downstream of collection reacts within minutes.
type IntervalConfig struct {
	Scan         time.Duration
	Collect      time.Duration
	Classify     time.Duration
	Analyze      time.Duration
	Impact       time.Duration
	Reachability time.Duration
	Notify       time.Duration
}

// CollectorConfig bounds GitHub collection cost.
type CollectorConfig struct {
	// MaxPages caps Link-header pagination on steady-state collection.
	MaxPages int
	// FirstCollectMaxPages is the reduced cap for a library's first-ever
	// collection, together with the 30-day window.
	FirstCollectMaxPages int
	// FirstCollectWindow is the since-window when last_scanned_at is null.
	FirstCollectWindow time.Duration
	// Concurrency bounds parallel library collection.
	Concurrency int
}

// LLMConfig configures the OpenAI-compatible chat-completions endpoint.
type LLMConfig struct {
	BaseURL string
	APIKey  string
}

// SMTPConfig configures the notification relay.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	// OverrideTo, when set, redirects every notification to one address.
	OverrideTo string
}

// ScannerConfig configures the dependency scanner stage.
type ScannerConfig struct {
	// Cutoff is how stale a project's scan must be before it is re-scanned.
	Cutoff time.Duration
}

// CallGraphConfig points at the external static-analysis snapshot store.
type CallGraphConfig struct {
	BaseURL string
}

// Load reads configuration from environment variables, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		CursorSecret: os.Getenv("VULNSENTINEL_CURSOR_SECRET"),
		Intervals: IntervalConfig{
			Scan:         envSeconds("VULNSENTINEL_SCAN_INTERVAL", 30*time.Minute),
			Collect:      envSeconds("VULNSENTINEL_COLLECT_INTERVAL", 10*time.Minute),
			Classify:     envSeconds("VULNSENTINEL_CLASSIFY_INTERVAL", 2*time.Minute),
			Analyze:      envSeconds("VULNSENTINEL_ANALYZE_INTERVAL", 2*time.Minute),
			Impact:       envSeconds("VULNSENTINEL_IMPACT_INTERVAL", time.Minute),
			Reachability: envSeconds("VULNSENTINEL_REACHABILITY_INTERVAL", 2*time.Minute),
			Notify:       envSeconds("VULNSENTINEL_NOTIFY_INTERVAL", 2*time.Minute),
		},
		Collector: CollectorConfig{
			MaxPages:             envInt("VULNSENTINEL_COLLECT_MAX_PAGES", 10),
			FirstCollectMaxPages: 3,
			FirstCollectWindow:   30 * 24 * time.Hour,
			Concurrency:          envInt("VULNSENTINEL_COLLECT_CONCURRENCY", 3),
		},
		LLM: LLMConfig{
			BaseURL: getEnvOrDefault("VULNSENTINEL_LLM_BASE_URL", "https://api.openai.com/v1"),
			APIKey:  os.Getenv("VULNSENTINEL_LLM_API_KEY"),
		},
		SMTP: SMTPConfig{
			Host:       os.Getenv("VULNSENTINEL_SMTP_HOST"),
			Port:       envInt("VULNSENTINEL_SMTP_PORT", 587),
			User:       os.Getenv("VULNSENTINEL_SMTP_USER"),
			Password:   os.Getenv("VULNSENTINEL_SMTP_PASSWORD"),
			From:       getEnvOrDefault("VULNSENTINEL_SMTP_FROM", "vulnsentinel@localhost"),
			OverrideTo: os.Getenv("VULNSENTINEL_NOTIFY_TO"),
		},
		Scanner: ScannerConfig{
			Cutoff: time.Duration(envInt("VULNSENTINEL_SCAN_CUTOFF_MINUTES", 24*60)) * time.Minute,
		},
		CallGraph: CallGraphConfig{
			BaseURL: getEnvOrDefault("VULNSENTINEL_CALLGRAPH_URL", "http://localhost:9090"),
		},
	}

	if cfg.CursorSecret == "" {
		return nil, fmt.Errorf("VULNSENTINEL_CURSOR_SECRET is required")
	}
	return cfg, nil
}

// envSeconds reads an integer-seconds env var, falling back to def.
func envSeconds(key string, def time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	secs, err := strconv.Atoi(val)
	if err != nil || secs <= 0 {
		return def
	}
	return time.Duration(secs) * time.Second
}

func envInt(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return n
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
