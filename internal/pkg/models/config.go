package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Services ServicesConfig
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
	Driver    string
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

// JWTConfig contains token signing configuration.
// AccessSecret and RefreshSecret must differ so an access-token
// compromise cannot be used to forge refresh tokens.
type JWTConfig struct {
	AccessSecret      string
	RefreshSecret     string
	AccessExpiration  int // in minutes
	RefreshExpiration int // in days
	Issuer            string
}

// OTPConfig contains one-time passcode configuration
type OTPConfig struct {
	ExpiryMinutes int
	RateLimit     int // max auth requests per client per period
	RatePeriodSec int
}

// ServicesConfig contains URLs for external collaborator services
type ServicesConfig struct {
	NotifierServiceURL string
	StorageServiceURL  string
	GatewayTimeoutSec  int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
