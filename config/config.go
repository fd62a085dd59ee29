package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string // listen address
	LevelPath string // optional level file; empty means the built-in level
}

// Load reads .env when present, then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}
	return Config{
		Addr:      getEnv("ADDR", ":8080"),
		LevelPath: os.Getenv("LEVEL_PATH"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
