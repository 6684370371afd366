// api/config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Neo4j         DatabaseConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	JWT           JWTConfiguration
	Upload        UploadConfiguration
	RateLimit     RateLimitConfiguration
	CORS          CORSConfiguration
	Log           LogConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port    string
	BaseURL string
	Mode    string
}

// DatabaseConfiguration stores data for database connection
type DatabaseConfiguration struct {
	URI      string
	Username string
	Password string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr            string
	Password        string
	DB              int
	DefaultCacheTTL time.Duration
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL   string
	Index string
}

// JWTConfiguration stores the bearer token signing settings
type JWTConfiguration struct {
	Secret    string
	ExpiresIn time.Duration
}

// UploadConfiguration stores media upload limits and the storage root
type UploadConfiguration struct {
	Dir         string
	MaxFileSize int64
	MaxFiles    int
}

type RateLimitConfiguration struct {
	Requests int
	Duration time.Duration
}

type CORSConfiguration struct {
	AllowedOrigins []string
}

type LogConfiguration struct {
	Dir   string
	Level string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	SetDefaults()

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// SetDefaults registers the fallback value of every key
func SetDefaults() {
	viper.SetDefault("server.port", "3001")
	viper.SetDefault("server.baseURL", "http://localhost:3001")
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("neo4j.uri", "bolt://localhost:7687")
	viper.SetDefault("neo4j.username", "neo4j")
	viper.SetDefault("neo4j.password", "")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.defaultCacheTTL", "1m")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("elasticsearch.index", "casa-audit-logs")
	viper.SetDefault("jwt.secret", "")
	viper.SetDefault("jwt.expiresIn", "24h")
	viper.SetDefault("upload.dir", "uploads")
	viper.SetDefault("upload.maxFileSize", 5*1024*1024)
	viper.SetDefault("upload.maxFiles", 10)
	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.duration", "1m")
	viper.SetDefault("cors.allowedOrigins", []string{"*"})
	viper.SetDefault("log.dir", "logging")
	viper.SetDefault("log.level", "info")
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}
