package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}
type AdminHTTP struct {
	Host string
	Port int
}

type App struct {
	Name  string
	Env   string // "dev" / "prod"，影响 cookie Secure 等
	HTTP  HTTP
	Admin AdminHTTP
}

func (a App) IsProd() bool { return a.Env == "prod" }

type Log struct {
	Level string
	JSON  bool
}

type JWT struct {
	Secret             string
	Issuer             string
	AccessTokenTTLHour int // 默认 168（7 天）
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DB struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

// Mail 密码重置邮件投递（SMTP）
type Mail struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// ResetBaseURL 拼接重置链接，如 https://shop.example.com/reset-password
	ResetBaseURL string
}

// Store 店铺侧配置
type Store struct {
	Name string
	// WhatsAppPhone 接单号码，国际格式不带 +
	WhatsAppPhone string
	Currency      string // 展示货币前缀，如 "Rs"
}

type Config struct {
	App   App
	Log   Log
	JWT   JWT
	DB    DB
	Redis Redis `mapstructure:"redis"`
	Mail  Mail
	Store Store
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	if c.JWT.AccessTokenTTLHour <= 0 {
		c.JWT.AccessTokenTTLHour = 24 * 7
	}
	if c.Store.Currency == "" {
		c.Store.Currency = "Rs"
	}
	return &c
}
