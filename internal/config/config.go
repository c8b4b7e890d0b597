package config

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"os"
	"time"
)

// Config contiene la configuración de la aplicación
type Config struct {
	DBHost       string        // Host de la base de datos
	DBPort       string        // Puerto de la base de datos
	DBUser       string        // Usuario de la base de datos
	DBPassword   string        // Contraseña de la base de datos
	DBName       string        // Nombre de la base de datos
	JWTSecret    string        // Secreto para JWT
	TokenExpiry  time.Duration // Tiempo de vida del token
	ReminderCron string        // Expresión cron del barrido de recordatorios
	RedisAddr    string        // Dirección de Redis (opcional, cache del resumen)
	ServerAddr   string        // Dirección de escucha del servidor HTTP
}

// LoadConfig carga la configuración desde el archivo .env
func LoadConfig() (*Config, error) {
	// Cargamos las variables de entorno desde .env
	if err := godotenv.Load(); err != nil {
		logrus.Warn("Archivo .env no encontrado")
	}

	// Parseamos el tiempo de vida del token
	expiry, err := time.ParseDuration(os.Getenv("TOKEN_EXPIRY"))
	if err != nil {
		expiry = 24 * time.Hour // 24 horas por defecto
	}

	config := &Config{
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBName:       getEnv("DB_NAME", "spendshield"),
		JWTSecret:    getEnv("JWT_SECRET", "default-secret-key"),
		TokenExpiry:  expiry,
		ReminderCron: getEnv("REMINDER_CRON", "0 8 * * *"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		ServerAddr:   getEnv("SERVER_ADDR", ":8080"),
	}

	return config, nil
}

// getEnv obtiene el valor de una variable de entorno o devuelve el valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
