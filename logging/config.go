package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config 日志配置，从环境变量读取
type Config struct {
	Level  string `env:"GOTODO_LOG_LEVEL" envDefault:"info"`
	Format string `env:"GOTODO_LOG_FORMAT" envDefault:"json"`
}

// LoadConfig 从环境变量加载日志配置
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse log config: %w", err)
	}
	return cfg, nil
}

// ParseLevel 解析日志级别名称
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return DebugLevel, nil
	case "", "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// New 按配置创建 Logger
// Format 为 console 时输出人类可读格式，其余情况输出 JSON
func New(cfg Config, w io.Writer) (Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(cfg.Format) {
	case "", "json":
		return NewZerologLogger(w, level), nil
	case "console":
		return NewZerologLogger(zerolog.ConsoleWriter{Out: w, NoColor: true}, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
}

// Setup 按配置创建 Logger 并设置为全局 Logger
func Setup(cfg Config, w io.Writer) error {
	logger, err := New(cfg, w)
	if err != nil {
		return err
	}
	SetLogger(logger)
	return nil
}
