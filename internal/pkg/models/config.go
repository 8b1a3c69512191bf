package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	SMS      SMSConfig
	Push     PushConfig
	Dispatch DispatchConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ daemon and lookupd addresses
type NSQConfig struct {
	NSQDAddress      string
	LookupdAddresses []string
	Channel          string
}

// SMSConfig configures the SMS provider used for OTP delivery
type SMSConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

// PushConfig configures the push provider used for driver notices
type PushConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

// DispatchConfig contains dispatch engine tuning
type DispatchConfig struct {
	NearbyRadiusKm float64
}

// LoggerConfig contains structured logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
