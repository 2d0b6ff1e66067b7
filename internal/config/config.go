package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Log        LogConfig        `mapstructure:"log"`
	Generation GenerationConfig `mapstructure:"generation"`
	View       ViewConfig       `mapstructure:"view"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GenerationConfig 控制占位图像生成
type GenerationConfig struct {
	Delay          time.Duration `mapstructure:"delay"`
	ImageURL       string        `mapstructure:"image_url"`
	ImageFile      string        `mapstructure:"image_file"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// ViewConfig 是终端客户端使用的配置
type ViewConfig struct {
	Endpoint    string        `mapstructure:"endpoint"`
	MaxChars    int           `mapstructure:"max_chars"`
	DownloadDir string        `mapstructure:"download_dir"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.max_header_bytes", 1<<20)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.exposed_headers", []string{"Content-Length", "X-Request-ID"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 43200)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("generation.delay", time.Second)
	v.SetDefault("generation.image_url", "/bg_sakura_night.jpg")
	v.SetDefault("generation.image_file", "")
	v.SetDefault("generation.request_timeout", 30*time.Second)

	v.SetDefault("view.endpoint", "http://localhost:8080")
	v.SetDefault("view.max_chars", 500)
	v.SetDefault("view.download_dir", ".")
	v.SetDefault("view.timeout", 30*time.Second)
}

// Load 读取配置文件；configPath 为空时只使用默认值和环境变量
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MEMENTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
