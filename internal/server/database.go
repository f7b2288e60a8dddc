package server

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	awsclient "github.com/taxdesk/tax-service/internal/client/aws"
	"github.com/taxdesk/tax-service/internal/helpers"
	"github.com/taxdesk/tax-service/internal/logger"
	"go.uber.org/zap"
)

type rdsSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DatabaseURL resolves the connection string for stage. Deployed stages read
// the RDS credentials from Secrets Manager; local runs use DATABASE_URL or
// the secret named by DATABASE_URL_ARN.
func DatabaseURL(ctx context.Context, stage string, secrets *awsclient.SecretsManagerClient) (string, error) {
	if !helpers.IsDeployedStage(stage) {
		dsn, err := secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			return "", fmt.Errorf("failed to get DATABASE_URL: %w", err)
		}
		if dsn == "" {
			return "", fmt.Errorf("DATABASE_URL is required for local development")
		}
		return dsn, nil
	}

	host := os.Getenv("DB_HOST")
	name := os.Getenv("DB_NAME")
	if host == "" || name == "" {
		return "", fmt.Errorf("DB_HOST and DB_NAME are required in stage %s", stage)
	}
	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "require"
		logger.Warn("DB_SSLMODE not set, defaulting to 'require'")
	}

	var secret rdsSecret
	if err := secrets.GetSecretJSON(ctx, "RDS_SECRET_ARN", &secret); err != nil {
		return "", fmt.Errorf("failed to retrieve RDS secret: %w", err)
	}
	if secret.Username == "" || secret.Password == "" {
		return "", fmt.Errorf("username or password missing from RDS secret")
	}
	return buildDSN(secret, host, name, sslMode), nil
}

func buildDSN(secret rdsSecret, host, name, sslMode string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(secret.Username),
		url.QueryEscape(secret.Password),
		host, name, sslMode)
}

// OpenPool parses dsn and opens a connection pool sized by DB_MAX_CONNS and
// DB_MIN_CONNS.
func OpenPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database DSN: %w", err)
	}
	poolConfig.MaxConns = int32(helpers.GetEnvInt("DB_MAX_CONNS", 10))
	poolConfig.MinConns = int32(helpers.GetEnvInt("DB_MIN_CONNS", 2))
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 15 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info("Database pool ready",
		zap.Int32("max_conns", poolConfig.MaxConns),
		zap.Int32("min_conns", poolConfig.MinConns))
	return pool, nil
}
