package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type AppConfig struct {
	Port         string `yaml:"port"`
	Timezone     string `yaml:"timezone"`
	DBPath       string `yaml:"db_path"`
	JWTSecret    string `yaml:"-"` // env only, never from file
	CookieName   string `yaml:"cookie_name"`
	CookieSecure bool   `yaml:"cookie_secure"`
	LogMode      string `yaml:"log_mode"` // dev|prod
	CropCatalog  string `yaml:"crop_catalog"`
	EquipCatalog string `yaml:"equip_catalog"`
}

// Load reads configs/app.yaml when present, then lets environment variables
// (optionally from a .env file) override it.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	cfg := AppConfig{
		Port:         "8080",
		Timezone:     "Asia/Kolkata",
		DBPath:       "agrilink.db",
		CookieName:   "agrilink_auth",
		LogMode:      "dev",
		CropCatalog:  "./CropCatalog.csv",
		EquipCatalog: "./EquipmentRates.xlsx",
	}

	if b, err := os.ReadFile(filepath.Join("configs", "app.yaml")); err == nil {
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			log.Printf("[cfg] bad configs/app.yaml: %v", err)
		}
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg.Port = get("PORT", cfg.Port)
	cfg.Timezone = get("TZ", cfg.Timezone)
	cfg.DBPath = get("DB_PATH", cfg.DBPath)
	cfg.JWTSecret = get("JWT_SECRET", "")
	cfg.CookieName = get("COOKIE_NAME", cfg.CookieName)
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		cfg.CookieSecure = v == "true"
	}
	cfg.LogMode = get("LOG_MODE", cfg.LogMode)
	cfg.CropCatalog = get("CROP_CATALOG", cfg.CropCatalog)
	cfg.EquipCatalog = get("EQUIP_CATALOG", cfg.EquipCatalog)

	return cfg
}
