package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig concentra toda a configuração do serviço, lida do ambiente.
type AppConfig struct {
	Ambiente      string
	LogLevel      string
	PortaHTTP     string
	RabbitMQURL   string
	RabbitMQOn    bool
	JWTSecret     string
	AuthDisabled  bool
	CronSpecCiclo string
}

// Load carrega o .env (se existir) e monta a configuração.
// godotenv.Load não sobrescreve variáveis já definidas no ambiente.
func Load() *AppConfig {
	_ = godotenv.Load()

	cfg := &AppConfig{
		Ambiente:      getEnv("ENVIRONMENT", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PortaHTTP:     getEnv("HTTP_PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AuthDisabled:  strings.EqualFold(os.Getenv("AUTH_DISABLED"), "true"),
		CronSpecCiclo: getEnv("CRON_SPEC_CICLO", "0 7 * * *"),
	}

	user := getEnv("RABBITMQ_USER", "admin")
	pass := getEnv("RABBITMQ_PASSWORD", "admin")
	host := getEnv("RABBITMQ_HOST", "localhost")
	cfg.RabbitMQURL = getEnv("RABBITMQ_URL", "amqp://"+user+":"+pass+"@"+host+"/")
	cfg.RabbitMQOn = !strings.EqualFold(getEnv("RABBITMQ_ENABLED", "true"), "false")

	return cfg
}

func getEnv(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}
