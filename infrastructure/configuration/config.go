package configuration

import (
	"fmt"
	"os"
	"strconv"

	"clipstream/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	RedisClient RedisClient `json:"redisClient"`
	Pubsub      Pubsub      `json:"pubsub"`
	OAuth       OAuth       `json:"oauth"`
	Campaign    Campaign    `json:"campaign"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
}

type Database struct {
	MySql Db `json:"mysql"`
	Psql  Db `json:"psql"`
	Mongo Db `json:"mongo"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Pubsub struct {
	ProjectID string `json:"projectID"`
	Topic     string `json:"topic"`
}

// OAuth holds third-party login client credentials.
type OAuth struct {
	Google OAuthClient `json:"google"`
}

type OAuthClient struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	RedirectURI  string `json:"redirectURI"`
}

// Campaign tunes the announcement selector and carousel rotation.
type Campaign struct {
	EndingSoonDays     int `json:"endingSoonDays"`
	RotationIntervalMs int `json:"rotationIntervalMs"`
	RefreshSeconds     int `json:"refreshSeconds"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
	initCampaign(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.MySql.Name == "" {
		C.Database.MySql.Name = os.Getenv("MYSQL_DB_NAME")
	}
	if C.Database.MySql.Host == "" {
		C.Database.MySql.Host = os.Getenv("MYSQL_HOST")
	}
	if C.Database.MySql.Port == "" {
		C.Database.MySql.Port = os.Getenv("MYSQL_PORT")
	}
	if C.Database.MySql.User == "" {
		C.Database.MySql.User = os.Getenv("MYSQL_USER")
	}
	if C.Database.MySql.Password == "" {
		C.Database.MySql.Password = os.Getenv("MYSQL_PASSWORD")
	}

	if C.Database.Psql.Name == "" {
		C.Database.Psql.Name = os.Getenv("DB_NAME")
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = os.Getenv("DB_HOST")
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = os.Getenv("DB_PORT")
	}
	if C.Database.Psql.User == "" {
		C.Database.Psql.User = os.Getenv("DB_USER")
	}
	if C.Database.Psql.Password == "" {
		C.Database.Psql.Password = os.Getenv("DB_PASSWORD")
	}

	// Local defaults so a bare checkout runs against docker-compose.
	if C.Database.MySql.Host == "" {
		C.Database.MySql.Host = "localhost"
	}
	if C.Database.MySql.Port == "" {
		C.Database.MySql.Port = "3306"
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = "localhost"
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = "5432"
	}
}

func initApp(C *Config) {
	// SECRET_KEY from environment overrides the config file when provided.
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// Port resolution order: APP_PORT -> PORT -> config -> default 10001.
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; JWT authentication will fail. Provide SECRET_KEY via environment.")
	}
}

func initCampaign(C *Config) {
	if C.Campaign.EndingSoonDays == 0 {
		C.Campaign.EndingSoonDays = 3
	}
	if C.Campaign.RotationIntervalMs == 0 {
		C.Campaign.RotationIntervalMs = 6000
	}
	if C.Campaign.RefreshSeconds == 0 {
		C.Campaign.RefreshSeconds = 30
	}
}
