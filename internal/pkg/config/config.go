package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Cookie  CookieConfig
	Cart    CartConfig
	Mail    MailConfig
	Payment PaymentConfig
	Store   StoreConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

// RedisConfig backs the replicated cart cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"12h"`
}

type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type CartConfig struct {
	MirrorTimeout time.Duration `envconfig:"CART_MIRROR_TIMEOUT" default:"3s"`
	MirrorTTL     time.Duration `envconfig:"CART_MIRROR_TTL" default:"0"`
	KeyPrefix     string        `envconfig:"CART_MIRROR_PREFIX" default:"carts"`
}

// MailConfig configures order and feedback email. An empty SMTPHost switches
// the notifier to log-only delivery.
type MailConfig struct {
	SMTPHost      string        `envconfig:"SMTP_HOST"`
	SMTPPort      int           `envconfig:"SMTP_PORT" default:"587"`
	Username      string        `envconfig:"SMTP_USERNAME"`
	Password      string        `envconfig:"SMTP_PASSWORD"`
	From          string        `envconfig:"MAIL_FROM" default:"orders@localhost"`
	OperatorEmail string        `envconfig:"MAIL_OPERATOR" default:"admin@localhost"`
	SendTimeout   time.Duration `envconfig:"MAIL_SEND_TIMEOUT" default:"10s"`
}

func (c MailConfig) Enabled() bool {
	return c.SMTPHost != ""
}

type PaymentConfig struct {
	UPIID    string `envconfig:"PAYMENT_UPI_ID" default:"store@upi"`
	Currency string `envconfig:"PAYMENT_CURRENCY" default:"INR"`
	Note     string `envconfig:"PAYMENT_NOTE" default:"Order Payment"`
	QRSizePx int    `envconfig:"PAYMENT_QR_SIZE" default:"256"`
}

type StoreConfig struct {
	TimeZone string `envconfig:"STORE_TIMEZONE" default:"Asia/Kolkata"`
}

func (c StoreConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key",
			Duration: time.Hour,
		},
		Admin: AdminConfig{
			Username: "admin",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Cart: CartConfig{
			MirrorTimeout: 200 * time.Millisecond,
			KeyPrefix:     "carts",
		},
		Mail: MailConfig{
			From:          "orders@test.local",
			OperatorEmail: "admin@test.local",
			SendTimeout:   time.Second,
		},
		Payment: PaymentConfig{
			UPIID:    "store@upi",
			Currency: "INR",
			Note:     "Order Payment",
			QRSizePx: 128,
		},
		Store: StoreConfig{
			TimeZone: "Asia/Kolkata",
		},
	}
}
