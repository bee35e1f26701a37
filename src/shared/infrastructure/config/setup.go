package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config contiene la configuración del register-service (terminal gateway)
type Config struct {
	Port              string
	BackofficeURL     string // URL base del back-office (API autoritativa)
	LocalDBPath       string // SQLite local del terminal
	PrometheusEnabled bool
}

// GetEnv obtiene una variable de entorno o devuelve un valor por defecto
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Load carga la configuración desde variables de entorno (con .env opcional)
func Load() Config {
	// .env es opcional: en producción las variables vienen del entorno
	if err := godotenv.Load(); err == nil {
		log.Println("📄 .env cargado")
	}

	return Config{
		Port:              GetEnv("PORT", "8080"),
		BackofficeURL:     GetEnv("BACKOFFICE_URL", "http://backoffice:8000"),
		LocalDBPath:       GetEnv("LOCAL_DB_PATH", "register.db"),
		PrometheusEnabled: GetEnv("PROMETHEUS_ENABLED", "false") == "true",
	}
}
