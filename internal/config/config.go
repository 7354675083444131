// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBName     string
	DBPassword string
	DBPort     string
	DBSSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	Port        string
	AMQPURL     string
	EventsQueue string
	MinifyHTML  bool
}

// Load reads .env (if present) and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBName:     getenv("DB_NAME", "customerdesk"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		MaxOpenConns:    getenvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getenvInt("DB_MAX_IDLE_CONNS", 2),
		ConnMaxLifetime: getenvDuration("DB_CONN_MAX_LIFETIME", time.Hour),

		Port:        getenv("APP_PORT", "3000"),
		AMQPURL:     os.Getenv("AMQP_URL"),
		EventsQueue: getenv("EVENTS_QUEUE", "customer_events"),
		MinifyHTML:  getenvBool("MINIFY_HTML", false),
	}
}

// DSN returns the lib/pq connection URL.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", url.QueryEscape(c.DBSSLMode)),
	}
	return u.String()
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using %d", k, v, def)
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using %t", k, v, def)
		return def
	}
	return b
}

func getenvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using %s", k, v, def)
		return def
	}
	return d
}
