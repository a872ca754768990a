package config

import (
	"fmt"
	"os"
	"strconv"
)

// Modos de armazenamento suportados. Os dois são configurações
// alternativas, nunca combinadas em tempo de execução.
const (
	ModoPostgres = "postgres"
	ModoLocal    = "local"
)

type Config struct {
	Porta string

	ModoArmazenamento string

	DBHost            string
	DBPorta           uint
	DBNome            string
	DBUsuario         string
	DBSenha           string
	DBSSLDesabilitado bool

	RedisURL string

	AdminUsuario   string
	AdminSenha     string
	AdminSenhaHash string

	JWTSegredo string
}

// Carregar monta a configuração a partir das variáveis de ambiente.
// Valores ausentes caem nos padrões de desenvolvimento.
func Carregar() (*Config, error) {
	porta, err := strconv.ParseUint(ambienteOuPadrao("DB_PORT", "5432"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("DB_PORT inválida: %w", err)
	}

	cfg := &Config{
		Porta:             ambienteOuPadrao("PORT", "8080"),
		ModoArmazenamento: ambienteOuPadrao("STORAGE_MODE", ModoPostgres),

		DBHost:            ambienteOuPadrao("DB_HOST", "localhost"),
		DBPorta:           uint(porta),
		DBNome:            ambienteOuPadrao("DB_NAME", "sowbrand"),
		DBUsuario:         ambienteOuPadrao("DB_USER", "postgres"),
		DBSenha:           ambienteOuPadrao("DB_PASSWORD", "postgres"),
		DBSSLDesabilitado: os.Getenv("DB_SSL_MODE_DISABLE") == "true",

		RedisURL: ambienteOuPadrao("REDIS_URL", "redis://localhost:6379/0"),

		AdminUsuario:   ambienteOuPadrao("ADMIN_USER", "admin"),
		AdminSenha:     ambienteOuPadrao("ADMIN_PASSWORD", "sowbrand123"),
		AdminSenhaHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		JWTSegredo: ambienteOuPadrao("JWT_SECRET", "sowbrand-dev-secret"),
	}

	if cfg.ModoArmazenamento != ModoPostgres && cfg.ModoArmazenamento != ModoLocal {
		return nil, fmt.Errorf("STORAGE_MODE desconhecido: %q", cfg.ModoArmazenamento)
	}
	return cfg, nil
}

// DSN monta a string de conexão do Postgres.
func (c *Config) DSN() string {
	ssl := ""
	if c.DBSSLDesabilitado {
		ssl = " sslmode=disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		c.DBHost, c.DBUsuario, c.DBSenha, c.DBNome, c.DBPorta, ssl)
}

func ambienteOuPadrao(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}
