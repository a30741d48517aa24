package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseDriver    string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	ServerAddr        string `mapstructure:"SERVER_ADDR"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_URL", "gameshelf.db")
	viper.SetDefault("SERVER_ADDR", ":8080")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
