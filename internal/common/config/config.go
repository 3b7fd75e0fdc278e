package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Gemini        GeminiConfig       `mapstructure:"gemini"`
	Assessment    AssessmentConfig   `mapstructure:"assessment"`
	QA            QAConfig           `mapstructure:"qa"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	DemoUser      DemoUserConfig     `mapstructure:"demo_user"`
	Logging       LoggingConfig      `mapstructure:"logging"`
	Observability ObsConfig          `mapstructure:"observability"`
}

// ObsConfig holds tracing settings. An empty endpoint disables tracing.
type ObsConfig struct {
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address        string `mapstructure:"address"`
	MetricsAddress string `mapstructure:"metrics_address"`
	ReadTimeout    int    `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout   int    `mapstructure:"write_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string.
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// TTL for the cached latest career suggestion, in seconds.
	SuggestionTTL int `mapstructure:"suggestion_ttl"`
}

type ElasticsearchConfig struct {
	Enabled   bool     `mapstructure:"enabled"`
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	QAIndex   string   `mapstructure:"qa_index"`
}

// --- Specific Configuration Sections ---

// GeminiConfig holds settings for the upstream LLM collaborator.
type GeminiConfig struct {
	APIKey          string  `mapstructure:"api_key"`
	Model           string  `mapstructure:"model"`
	Timeout         int     `mapstructure:"timeout"` // milliseconds
	Temperature     float32 `mapstructure:"temperature"`
	MaxOutputTokens int32   `mapstructure:"max_output_tokens"`
}

// AssessmentConfig points at the hand-authored scoring configuration.
type AssessmentConfig struct {
	WeightsPath string `mapstructure:"weights_path"`
}

// QAConfig tunes the question/answer lookup.
type QAConfig struct {
	// MinOverlap is the keyword-overlap ratio below which a candidate
	// question is not considered similar.
	MinOverlap float64 `mapstructure:"min_overlap"`
}

// NotificationConfig holds settings for the fallback ops notice.
type NotificationConfig struct {
	SNS struct {
		Enabled  bool   `mapstructure:"enabled"`
		Region   string `mapstructure:"region"`
		TopicARN string `mapstructure:"topic_arn"`
	} `mapstructure:"sns"`
}

// DemoUserConfig describes the user bootstrapped at startup when no
// authentication is in play.
type DemoUserConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	Name           string   `mapstructure:"name"`
	Email          string   `mapstructure:"email"`
	EducationLevel string   `mapstructure:"education_level"`
	Interests      []string `mapstructure:"interests"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
