package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	MongoDB  MongoDBConfig
	Lottery  LotteryConfig
	JWT      JWTConfig
	Auth     AuthConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// StoreConfig selects where the draw history lives
type StoreConfig struct {
	Backend string // "csv" or "mongodb"
	Path    string // CSV file, relative to the working directory
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// LotteryConfig holds the draw lookup configuration
type LotteryConfig struct {
	BaseURL string
	// SeedRound is an operator-maintained upper bound for the latest round.
	// Probing walks backwards from here, so keep it close to the real latest round.
	SeedRound int
	MaxProbes int
	Timeout   time.Duration
	FixedSets string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// AuthConfig holds the operator credentials
type AuthConfig struct {
	OperatorPasswordHash string // bcrypt hash
}

// Store backends
const (
	BackendCSV     = "csv"
	BackendMongoDB = "mongodb"
)

// Load loads configuration from environment variables and config files.
// Extra search paths are tried after the working directory.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "4000")
	v.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	v.SetDefault("Store.Backend", BackendCSV)
	v.SetDefault("Store.Path", "lotto_history.csv")
	v.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	v.SetDefault("MongoDB.Database", "lotto-tracker")
	v.SetDefault("Lottery.BaseURL", "https://www.dhlottery.co.kr/common.do")
	v.SetDefault("Lottery.SeedRound", 1163)
	v.SetDefault("Lottery.MaxProbes", 50)
	v.SetDefault("Lottery.Timeout", 10*time.Second)
	v.SetDefault("Lottery.FixedSets", "6, 12, 23, 25, 31, 44\n2, 8, 9, 17, 33, 43\n6, 23, 26, 30, 33, 34")
	v.SetDefault("JWT.Secret", "")
	v.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	v.SetDefault("Auth.OperatorPasswordHash", "")
	v.SetDefault("LogLevel", "info")
}
