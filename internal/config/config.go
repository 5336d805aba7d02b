package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DatabasePath string
	LogLevel     string
}

func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CLINIBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("database.path", "clinibook.db")
	v.SetDefault("log.level", "info")

	_ = v.BindEnv("database.path", "CLINIBOOK_DATABASE_PATH", "DATABASE_PATH")
	_ = v.BindEnv("log.level", "CLINIBOOK_LOG_LEVEL", "LOG_LEVEL")

	return Config{
		DatabasePath: strings.TrimSpace(v.GetString("database.path")),
		LogLevel:     v.GetString("log.level"),
	}, nil
}
