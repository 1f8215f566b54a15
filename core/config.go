package core

import (
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Catalog sources
const (
	CatalogSourceBuiltin  = "builtin"
	CatalogSourceFile     = "file"
	CatalogSourceDatabase = "database"
)

type (
	Config struct {
		AppName      string
		Env          string // DEV (local; default), TEST, QA, PROD
		Build        string
		Debug        bool
		TestMode     bool
		WorkDir      string
		RollbarToken string
		Server       ServerConfig
		Database     DatabaseConfig
		Catalog      CatalogConfig
	}

	ServerConfig struct {
		Host            string
		Port            int
		DebugHost       string
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	DatabaseConfig struct {
		Engine        string
		Host          string
		Port          int
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		DisableTLS    bool
	}

	// CatalogConfig tells where the location catalog is loaded from at start up.
	CatalogConfig struct {
		Source string // builtin | file | database
		Path   string // file source only
	}
)

func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, fmt.Sprint(s.Port))
}

func (db DatabaseConfig) Address() string {
	return net.JoinHostPort(db.Host, fmt.Sprint(db.Port))
}

// NewConfig reads the configuration from the environment, optionally seeded by `config/.env.<env>`.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("appName", "Eneo")
	v.SetDefault("build", "develop")
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("rollbarToken", "")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.debugHost", "0.0.0.0:4000")
	v.SetDefault("server.readTimeout", 5*time.Second)
	v.SetDefault("server.writeTimeout", 5*time.Second)
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.disableReqLogs", false)

	v.SetDefault("database.engine", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "eneo")
	v.SetDefault("database.user", "eneo")
	v.SetDefault("database.password", "")
	v.SetDefault("database.adminUser", "")
	v.SetDefault("database.adminPassword", "")
	v.SetDefault("database.disableTLS", true)

	v.SetDefault("catalog.source", CatalogSourceBuiltin)
	v.SetDefault("catalog.path", "")

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	workDir := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(workDir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Build:        v.GetString("build"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		WorkDir:      workDir,
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			DebugHost:       v.GetString("server.debugHost"),
			ReadTimeout:     v.GetDuration("server.readTimeout"),
			WriteTimeout:    v.GetDuration("server.writeTimeout"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  v.GetBool("server.disableReqLogs"),
		},
		Database: DatabaseConfig{
			Engine:        v.GetString("database.engine"),
			Host:          v.GetString("database.host"),
			Port:          v.GetInt("database.port"),
			Name:          v.GetString("database.name"),
			User:          v.GetString("database.user"),
			Password:      v.GetString("database.password"),
			AdminUser:     v.GetString("database.adminUser"),
			AdminPassword: v.GetString("database.adminPassword"),
			DisableTLS:    v.GetBool("database.disableTLS"),
		},
		Catalog: CatalogConfig{
			Source: strings.ToLower(v.GetString("catalog.source")),
			Path:   v.GetString("catalog.path"),
		},
	}
}
