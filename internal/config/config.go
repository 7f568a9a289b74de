package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config concentra toda a configuração da aplicação.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
}

// ServerConfig guarda as opções do servidor HTTP.
type ServerConfig struct {
	Port string
}

// DBConfig guarda as opções de conexão com o PostgreSQL.
type DBConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLDisable bool
}

// CORSConfig guarda as origens permitidas para o front-end.
type CORSConfig struct {
	Origens []string
}

// Load lê variáveis de ambiente (opcionalmente de um arquivo .env) e monta a
// configuração. Um .env ausente não é erro; a configuração pode vir direto do
// ambiente.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("falha ao carregar arquivo %s: %w", envFile, err)
			}
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		DB: DBConfig{
			Host:       getenvWithDefault("DB_HOST", "localhost"),
			Port:       getenvWithDefault("DB_PORT", "5432"),
			User:       getenvWithDefault("DB_USER", "postgres"),
			Password:   getenvWithDefault("DB_PASSWORD", "postgres"),
			Name:       getenvWithDefault("DB_NAME", "escalas"),
			SSLDisable: os.Getenv("DB_SSL_MODE_DISABLE") == "true",
		},
		CORS: CORSConfig{
			Origens: splitOrigens(getenvWithDefault("CORS_ORIGENS", "*")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate garante que os campos obrigatórios estão preenchidos.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config nula")
	}
	if c.Server.Port == "" {
		return errors.New("APP_PORT deve ser informado")
	}
	if c.DB.Host == "" {
		return errors.New("DB_HOST deve ser informado")
	}
	if c.DB.Name == "" {
		return errors.New("DB_NAME deve ser informado")
	}
	return nil
}

func splitOrigens(valor string) []string {
	partes := strings.Split(valor, ",")
	origens := make([]string, 0, len(partes))
	for _, p := range partes {
		if p = strings.TrimSpace(p); p != "" {
			origens = append(origens, p)
		}
	}
	return origens
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
