package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Host         string   `validate:"required"`
	Port         int      `validate:"min=1,max=65535"`
	AllowOrigins []string `validate:"min=1,dive,required"`
	LogLevel     string   `validate:"oneof=trace debug info warn error"`
	MaxUploadMB  int      `validate:"min=1,max=1024"`
	LogFile      string   // empty disables the rotating file
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	port, err := strconv.Atoi(getenv("PORT", "8082"))
	if err != nil {
		return Config{}, fmt.Errorf("PORT: %w", err)
	}
	mb, err := strconv.Atoi(getenv("MAX_UPLOAD_MB", "64"))
	if err != nil {
		return Config{}, fmt.Errorf("MAX_UPLOAD_MB: %w", err)
	}
	var origins []string
	for _, o := range strings.Split(getenv("ALLOW_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg := Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     strings.ToLower(getenv("LOG_LEVEL", "info")),
		MaxUploadMB:  mb,
		LogFile:      os.Getenv("LOG_FILE"),
	}
	if _, set := os.LookupEnv("LOG_FILE"); !set {
		cfg.LogFile = "logs/alternates-service.log"
	}
	return cfg, cfg.Validate()
}

var validate = validator.New()

func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var msgs []string
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			msgs = append(msgs, fmt.Sprintf("%s fails %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		}
		return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
	}
	return fmt.Errorf("config: %w", err)
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
