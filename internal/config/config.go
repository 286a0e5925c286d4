package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Mode    string `mapstructure:"mode"` // gin mode: debug, release, test
}

type LogConfig struct {
	Mode string `mapstructure:"mode"` // dev or prod
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// S3Config configures exercise media storage. An empty BucketName disables it.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// Enabled reports whether a bucket is configured.
func (c S3Config) Enabled() bool {
	return c.BucketName != ""
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoadConfig reads configuration from a file and environment variables.
// path is either a directory containing config.yaml or a path to a config
// file. A missing file is not an error; defaults and the environment apply.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(path)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// Every key gets a default so AutomaticEnv can see it during Unmarshal.
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("log.mode", "dev")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "FitGoal")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, err
		}
	}

	err = v.Unmarshal(&config)
	return config, err
}
