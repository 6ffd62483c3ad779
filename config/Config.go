package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	//日志级别 debug/info/warn/error
	LogLevel string
	//日志格式 text/json
	LogFormat string
	//输出格式 tree/list/json
	Output string
	//启动时预先插入的key
	Keys []int
	//prometheus /metrics 监听地址，为空则不开启
	MetricsListen string
}

func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Output:    "tree",
		Keys:      nil,
	}
}

func (c Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	switch c.Output {
	case "tree", "list", "json":
	default:
		return fmt.Errorf("%w: unknown output %q", ErrInvalidConfig, c.Output)
	}
	return nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}

// 解析逗号或空白分隔的整数key列表
func ParseKeys(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	keys := make([]int, 0, len(fields))
	for _, field := range fields {
		key, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer key", ErrInvalidConfig, field)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
