package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Conf is the application configuration, loaded once at startup from
// defaults, an optional .env file and environment variables.
var Conf *Config

type Config struct {
	Debug    bool
	TestMode bool
	Env      string
	AppName  string
	Build    string

	API struct {
		BaseURL string
		Timeout time.Duration
	}

	// CredentialsDir is where the session token and user profile are kept.
	CredentialsDir string

	RollbarToken string
}

func init() {
	Conf = NewConfig()
}

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "SinerGi")
	v.SetDefault("build", "dev")
	v.SetDefault("apiBaseUrl", "http://localhost:5000/api")
	v.SetDefault("apiTimeout", 0*time.Second) // transport default; none unless set
	v.SetDefault("credentialsDir", defaultCredentialsDir())
	v.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:          v.GetBool("debug"),
		TestMode:       v.GetBool("testMode"),
		Env:            env,
		AppName:        v.GetString("appName"),
		Build:          v.GetString("build"),
		CredentialsDir: v.GetString("credentialsDir"),
		RollbarToken:   v.GetString("rollbarToken"),
	}
	conf.API.BaseURL = strings.TrimRight(v.GetString("apiBaseUrl"), "/")
	conf.API.Timeout = v.GetDuration("apiTimeout")
	return conf
}

func defaultCredentialsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sinergi"
	}
	return filepath.Join(home, ".sinergi")
}
