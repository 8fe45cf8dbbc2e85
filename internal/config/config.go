package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

type Config struct {
	Addr         string
	AllowOrigins string
	LogLevel     log.Level
}

// Load parses args (normally os.Args[1:]); each flag falls back to an
// environment variable and then to a default.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	addr := fs.String("addr", getenv("CHESS_ADDR", ":3000"), "listen address")
	origins := fs.String("allow-origins", getenv("CHESS_ALLOW_ORIGINS", "http://localhost:5173"), "comma-separated CORS origins")
	level := fs.String("log-level", getenv("CHESS_LOG_LEVEL", "info"), "trace, debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	lvl, err := ParseLevel(*level)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Addr:         *addr,
		AllowOrigins: *origins,
		LogLevel:     lvl,
	}, nil
}

func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info", "":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return log.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
