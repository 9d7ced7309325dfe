package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Host    string
	Port    string
	HAURL   string
	HAToken string

	// Entities maps lowercase person names to Home Assistant calendar
	// entity ids, parsed from CALENDAR_ENTITY_IDS.
	Entities map[string]string

	// ShiftsPath is the shift-definition file (SHIFTS_CONFIG).
	ShiftsPath string
}

// Load reads configuration from the environment. Callers are expected to have
// loaded a .env file first (godotenv in main).
func Load() (*Config, error) {
	cfg := &Config{
		Host:       getenv("HOST", "127.0.0.1"),
		Port:       getenv("PORT", "3000"),
		HAURL:      os.Getenv("HA_URL"),
		HAToken:    os.Getenv("HA_TOKEN"),
		ShiftsPath: getenv("SHIFTS_CONFIG", ""),
	}

	if cfg.HAURL == "" {
		return nil, fmt.Errorf("HA_URL is not set")
	}
	if cfg.HAToken == "" {
		return nil, fmt.Errorf("HA_TOKEN is not set")
	}

	raw := os.Getenv("CALENDAR_ENTITY_IDS")
	if raw == "" {
		return nil, fmt.Errorf("CALENDAR_ENTITY_IDS is not set")
	}
	var entities map[string]string
	if err := json.Unmarshal([]byte(raw), &entities); err != nil {
		return nil, fmt.Errorf("parse CALENDAR_ENTITY_IDS: %w", err)
	}
	cfg.Entities = make(map[string]string, len(entities))
	for name, id := range entities {
		cfg.Entities[strings.ToLower(name)] = id
	}

	if cfg.ShiftsPath == "" {
		// Prefer the YAML file, fall back to the legacy JSON name.
		cfg.ShiftsPath = "shifts_config.yaml"
		if _, err := os.Stat(cfg.ShiftsPath); err != nil {
			if _, err := os.Stat("shifts_config.json"); err == nil {
				cfg.ShiftsPath = "shifts_config.json"
			}
		}
	}

	return cfg, nil
}

// EntityID resolves a person to their calendar entity id, case-insensitive.
func (c *Config) EntityID(name string) (string, bool) {
	id, ok := c.Entities[strings.ToLower(name)]
	return id, ok
}

// Names returns the sorted lowercase person roster.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Entities))
	for name := range c.Entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
