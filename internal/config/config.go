package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Order    OrderConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	BcryptCost     int
	SessionTTL     time.Duration
	OTPTTL         time.Duration
	OTPLength      int
	OTPMaxAttempts int
	ResetTokenTTL  time.Duration
}

type OrderConfig struct {
	CheckoutTxTimeout time.Duration
	MaxRetryAttempts  int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "bambite")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "bambite")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("AUTH_BCRYPT_COST", 12)
	viper.SetDefault("AUTH_SESSION_TTL", "24h")
	viper.SetDefault("AUTH_OTP_TTL", "10m")
	viper.SetDefault("AUTH_OTP_LENGTH", 6)
	viper.SetDefault("AUTH_OTP_MAX_ATTEMPTS", 5)
	viper.SetDefault("AUTH_RESET_TOKEN_TTL", "15m")
	viper.SetDefault("ORDER_CHECKOUT_TX_TIMEOUT", "5s")
	viper.SetDefault("ORDER_MAX_RETRY_ATTEMPTS", 3)
	viper.SetDefault("LOG_LEVEL", "info")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}
	sessionTTL, err := time.ParseDuration(viper.GetString("AUTH_SESSION_TTL"))
	if err != nil {
		return nil, err
	}
	otpTTL, err := time.ParseDuration(viper.GetString("AUTH_OTP_TTL"))
	if err != nil {
		return nil, err
	}
	resetTokenTTL, err := time.ParseDuration(viper.GetString("AUTH_RESET_TOKEN_TTL"))
	if err != nil {
		return nil, err
	}
	checkoutTxTimeout, err := time.ParseDuration(viper.GetString("ORDER_CHECKOUT_TX_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Auth: AuthConfig{
			BcryptCost:     viper.GetInt("AUTH_BCRYPT_COST"),
			SessionTTL:     sessionTTL,
			OTPTTL:         otpTTL,
			OTPLength:      viper.GetInt("AUTH_OTP_LENGTH"),
			OTPMaxAttempts: viper.GetInt("AUTH_OTP_MAX_ATTEMPTS"),
			ResetTokenTTL:  resetTokenTTL,
		},
		Order: OrderConfig{
			CheckoutTxTimeout: checkoutTxTimeout,
			MaxRetryAttempts:  viper.GetInt("ORDER_MAX_RETRY_ATTEMPTS"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
