package config

import (
	"os"
	"strings"
)

// Server captures process-level configuration for the gate server.
type Server struct {
	Addr string

	// JWT verifier settings for the bundled token verifier.
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	// StaticAllowSet lists subject IDs compiled into the process allow-set.
	StaticAllowSet []string

	// TrustedSubjectHeader names the header the fronting platform sets for callers it
	// authenticated over its own transport. Empty disables the trusted-context path.
	TrustedSubjectHeader string
	TrustedIssuer        string

	// DatabaseURL selects the PostgreSQL allow-list store; RedisURL selects the Redis
	// store. When both are empty the in-memory store is used (dev only).
	DatabaseURL string
	RedisURL    string

	// KafkaBrokers enables the audit publisher when non-empty.
	KafkaBrokers []string
	AuditTopic   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("AUTHGATE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	auditTopic := os.Getenv("AUDIT_TOPIC")
	if auditTopic == "" {
		auditTopic = "authgate.audit"
	}

	return Server{
		Addr:                 addr,
		JWTSigningKey:        jwtSigningKey,
		JWTIssuer:            os.Getenv("JWT_ISSUER"),
		JWTAudience:          os.Getenv("JWT_AUDIENCE"),
		StaticAllowSet:       splitList(os.Getenv("STATIC_ALLOW_SET")),
		TrustedSubjectHeader: os.Getenv("TRUSTED_SUBJECT_HEADER"),
		TrustedIssuer:        os.Getenv("TRUSTED_ISSUER"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		RedisURL:             os.Getenv("REDIS_URL"),
		KafkaBrokers:         splitList(os.Getenv("KAFKA_BROKERS")),
		AuditTopic:           auditTopic,
	}
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
