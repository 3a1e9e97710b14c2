package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ilo80/esiee-plus-bot/internal/timetable"
)

// Config captures environment driven configuration values for the bot.
type Config struct {
	DiscordToken   string
	DiscordGuildID string

	ADEBaseURL  string
	ADEUsername string
	ADEPassword string

	// DayCutoff is the end of the bookable day for status queries.
	DayCutoff timetable.TimeOfDay
	// MinYear and MaxYear bound the dates users may query.
	MinYear int
	MaxYear int
}

// Load parses configuration values from the current process environment.
//
// The loader applies defaults for the optional policy values while validating
// required entries, accumulating every missing or invalid name so operators
// see the full list at once.
func Load() (Config, error) {
	cfg := Config{
		DayCutoff: timetable.TimeOfDay{Hours: 22},
		MinYear:   2024,
		MaxYear:   2026,
	}

	missing := make([]string, 0, 1)
	invalid := make([]string, 0, 2)

	required := []struct {
		name   string
		target *string
	}{
		{"DISCORD_TOKEN", &cfg.DiscordToken},
		{"DISCORD_GUILD_ID", &cfg.DiscordGuildID},
		{"ADE_LINK", &cfg.ADEBaseURL},
		{"ADE_USERNAME", &cfg.ADEUsername},
		{"ADE_PASSWORD", &cfg.ADEPassword},
	}
	for _, entry := range required {
		value := strings.TrimSpace(os.Getenv(entry.name))
		if value == "" {
			missing = append(missing, entry.name)
			continue
		}
		*entry.target = value
	}
	cfg.ADEBaseURL = strings.TrimSuffix(cfg.ADEBaseURL, "/")

	if cutoffValue := strings.TrimSpace(os.Getenv("BOT_DAY_CUTOFF")); cutoffValue != "" {
		cutoff, err := timetable.ParseTimeOfDay(cutoffValue)
		if err != nil {
			invalid = append(invalid, "BOT_DAY_CUTOFF")
		} else {
			cfg.DayCutoff = cutoff
		}
	}

	if minValue := strings.TrimSpace(os.Getenv("BOT_MIN_YEAR")); minValue != "" {
		year, err := strconv.Atoi(minValue)
		if err != nil || year <= 0 {
			invalid = append(invalid, "BOT_MIN_YEAR")
		} else {
			cfg.MinYear = year
		}
	}

	if maxValue := strings.TrimSpace(os.Getenv("BOT_MAX_YEAR")); maxValue != "" {
		year, err := strconv.Atoi(maxValue)
		if err != nil || year <= 0 {
			invalid = append(invalid, "BOT_MAX_YEAR")
		} else {
			cfg.MaxYear = year
		}
	}

	if len(invalid) == 0 && cfg.MaxYear < cfg.MinYear {
		invalid = append(invalid, "BOT_MIN_YEAR", "BOT_MAX_YEAR")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("variables d'environnement manquantes : %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("variables d'environnement invalides : %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
