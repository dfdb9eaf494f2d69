package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	LLM        LLMConfig        `yaml:"llm"`
	Generation GenerationConfig `yaml:"generation"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// An empty DSN disables persistence.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Enabled reports whether a database is configured.
func (c DatabaseConfig) Enabled() bool {
	return c.DSN != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Supported LLM providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderMock      = "mock"
)

// LLMConfig selects and tunes the text-generation provider.
type LLMConfig struct {
	Provider    string        `yaml:"provider"    env:"LLM_PROVIDER"    env-default:"anthropic"`
	APIKey      string        `yaml:"api_key"     env:"LLM_API_KEY"`
	Model       string        `yaml:"model"       env:"LLM_MODEL"       env-default:"claude-sonnet-4-5"`
	BaseURL     string        `yaml:"base_url"    env:"LLM_BASE_URL"`
	Temperature float64       `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.8"`
	MaxTokens   int64         `yaml:"max_tokens"  env:"LLM_MAX_TOKENS"  env-default:"8192"`
	Timeout     time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"2m"`
}

// GenerationConfig controls how a run is split into batches.
type GenerationConfig struct {
	BatchSize    int           `yaml:"batch_size"    env:"GEN_BATCH_SIZE"    env-default:"10"`
	Concurrency  int           `yaml:"concurrency"   env:"GEN_CONCURRENCY"   env-default:"3"`
	StaggerDelay time.Duration `yaml:"stagger_delay" env:"GEN_STAGGER_DELAY" env-default:"500ms"`
	MaxRetries   int           `yaml:"max_retries"   env:"GEN_MAX_RETRIES"   env-default:"3"`
	RunTimeout   time.Duration `yaml:"run_timeout"   env:"GEN_RUN_TIMEOUT"   env-default:"30m"`
	ToneLevel    int           `yaml:"tone_level"    env:"GEN_TONE_LEVEL"    env-default:"5"`
}
