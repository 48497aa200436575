package config

import (
	"errors"
	"io/fs"
	"log"
	"sync"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

/*
把init config跟read config分開
init : 需要設置viper watch 與 onConfigChange
read : 一般讀取 需要使用讀寫鎖
*/
var config_singleton *ConfigSingleTon
var muonce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	Environment   string `mapstructure:"ENVIRONMENT"`
	ServerPort    string `mapstructure:"SERVER_PORT"`
	DbName        string `mapstructure:"POSTGRES_DB"`
	DbHost        string `mapstructure:"POSTGRES_HOST"`
	DbPort        string `mapstructure:"POSTGRES_PORT"`
	DbUser        string `mapstructure:"POSTGRES_USER"`
	DbPas         string `mapstructure:"POSTGRES_PASSWORD"`
	DbSSLMode     string `mapstructure:"POSTGRES_SSLMODE"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	TokenKey      string `mapstructure:"AUTH_TOKEN_KEY"`
	TokenDuration string `mapstructure:"AUTH_TOKEN_DURATION"`
	SessionTTL    string `mapstructure:"SESSION_TTL"`
}

func GetConfig() *Config {
	initConfig()
	config_singleton.mu.RLock()
	defer config_singleton.mu.RUnlock()
	return config_singleton.Config
}

func initConfig() {
	if config_singleton == nil {
		muonce.Do(func() {
			config_singleton = &ConfigSingleTon{}
			if cf, err := loadConfig(); err == nil {
				config_singleton.Config = cf
			} else {
				log.Fatal("error read config")
			}
			viper.WatchConfig()
			viper.OnConfigChange(func(e fsnotify.Event) {
				if cf, err := loadConfig(); err == nil {
					config_singleton.mu.Lock()
					config_singleton.Config = cf
					config_singleton.mu.Unlock()
				} else {
					log.Panic("failed to reload config file")
				}
			})
		})
	}
}

/*
單純回傳錯誤 由外部決定要不要Fatal, 畢竟有可能有替代方案
*/
func loadConfig() (cf *Config, err error) {
	cf = &Config{}
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	setDefaults()

	err = viper.ReadInConfig()
	if err != nil {
		// 沒有.env時只吃環境變數與預設值
		// SetConfigFile下缺檔回傳的是*fs.PathError而非ConfigFileNotFoundError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	err = viper.Unmarshal(cf)
	if err != nil {
		return nil, err
	}
	return cf, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("POSTGRES_DB", "ecommerce")
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", "5432")
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "password")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("AUTH_TOKEN_KEY", "change-me-in-production")
	viper.SetDefault("AUTH_TOKEN_DURATION", "24h")
	viper.SetDefault("SESSION_TTL", "24h")
}
