package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/paulcobox/ar-carga-sabana/internal/db"
)

// LoadConfig holds the run parameters of one ingestion.
type LoadConfig struct {
	TargetYear int
	File       string
	Sheet      string
}

// Config is the full application configuration.
type Config struct {
	DB      db.Config
	Load    LoadConfig
	LogFile string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DB: db.DefaultConfig(),
		Load: LoadConfig{
			TargetYear: 2025,
		},
		LogFile: "ar_carga_sabana.log",
	}
}

// Load reads config.yaml from configPath, with SABANA_-prefixed environment
// overrides mapped onto the nested keys. A missing file is not an error; the
// defaults plus environment apply.
func Load(configPath string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()
	v.SetEnvPrefix("SABANA")

	v.BindEnv("database.host")
	v.BindEnv("database.port")
	v.BindEnv("database.user")
	v.BindEnv("database.password")
	v.BindEnv("database.dbname")
	v.BindEnv("database.sslmode")
	v.BindEnv("load.target_year")
	v.BindEnv("load.file")
	v.BindEnv("load.sheet")
	v.BindEnv("log.file")

	if err := v.ReadInConfig(); err != nil {
		fmt.Println("No config.yaml found, using defaults and env vars")
	}

	if v.IsSet("database.host") {
		cfg.DB.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.DB.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.DB.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.DB.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.DB.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.DB.SSLMode = v.GetString("database.sslmode")
	}
	if v.IsSet("load.target_year") {
		cfg.Load.TargetYear = v.GetInt("load.target_year")
	}
	if v.IsSet("load.file") {
		cfg.Load.File = v.GetString("load.file")
	}
	if v.IsSet("load.sheet") {
		cfg.Load.Sheet = v.GetString("load.sheet")
	}
	if v.IsSet("log.file") {
		cfg.LogFile = v.GetString("log.file")
	}

	return cfg, nil
}
