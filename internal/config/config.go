// Package config reads battlecore.yaml and the BATTLECORE_* environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/JustinWhittecar/battlecore/internal/combat"
)

const fileName = "battlecore"

// Load reads configuration from dir and sets default values. A missing file
// leaves the defaults in place; a malformed one is an error.
func Load(configDir string) error {
	def := combat.DefaultOptions()
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("rules.advancedCritTable", def.AdvancedCritTable)
	viper.SetDefault("rules.engineExplosions", def.EngineExplosions)
	viper.SetDefault("rules.autoEject", def.AutoEject)
	viper.SetDefault("rules.edgeOnConsciousness", def.EdgeOnConsciousness)
	viper.SetDefault("rules.edgeOnFuelTank", def.EdgeOnFuelTank)

	viper.SetDefault("archive.driver", "sqlite")
	viper.SetDefault("archive.sqlitePath", "./battlecore.db")
	viper.SetDefault("archive.postgresURL", "")

	viper.SetDefault("sim.seed", 0)
	viper.SetDefault("sim.turns", 10)

	viper.SetDefault("server.addr", ":8080")

	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix("BATTLECORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Rules returns the optional-rule switches for the combat engine.
func Rules() combat.Options {
	return combat.Options{
		AdvancedCritTable:   viper.GetBool("rules.advancedCritTable"),
		EngineExplosions:    viper.GetBool("rules.engineExplosions"),
		AutoEject:           viper.GetBool("rules.autoEject"),
		EdgeOnConsciousness: viper.GetBool("rules.edgeOnConsciousness"),
		EdgeOnFuelTank:      viper.GetBool("rules.edgeOnFuelTank"),
	}
}

// Archive is where resolution logs are stored.
type Archive struct {
	Driver      string
	SQLitePath  string
	PostgresURL string
}

func ArchiveConfig() (Archive, error) {
	a := Archive{
		Driver:      viper.GetString("archive.driver"),
		SQLitePath:  viper.GetString("archive.sqlitePath"),
		PostgresURL: viper.GetString("archive.postgresURL"),
	}
	switch a.Driver {
	case "sqlite", "postgres":
	default:
		return a, fmt.Errorf("unknown archive driver %q", a.Driver)
	}
	return a, nil
}

// LogLevel maps logLevel onto a zerolog level, info when unrecognised.
func LogLevel() zerolog.Level {
	switch strings.ToUpper(viper.GetString("logLevel")) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger builds a console logger at the configured level.
func NewLogger(out io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
		Level(LogLevel()).
		With().Timestamp().Logger()
}

func GetString(key string) string { return viper.GetString(key) }

func GetInt(key string) int { return viper.GetInt(key) }

func GetInt64(key string) int64 { return viper.GetInt64(key) }
