package main

import (
	"context"
	"database/sql"
	"flag"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	awsclient "github.com/taxdesk/tax-service/internal/client/aws"
	"github.com/taxdesk/tax-service/internal/db/migrations"
	"github.com/taxdesk/tax-service/internal/helpers"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/server"
	"go.uber.org/zap"
)

// Usage: migrate [up|down|status|version|reset]
func main() {
	_ = godotenv.Load()
	stage := helpers.GetEnvWithDefault("STAGE", helpers.StageLocal)
	logger.InitLogger(stage)
	defer logger.Sync() //nolint:errcheck

	flag.Parse()
	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	ctx := context.Background()
	awsCfg, err := awsclient.LoadConfig(ctx)
	if err != nil {
		logger.Fatal("Failed to load AWS config", zap.Error(err))
	}
	dsn, err := server.DatabaseURL(ctx, stage, awsclient.NewSecretsManagerClient(awsCfg))
	if err != nil {
		logger.Fatal("Failed to resolve database URL", zap.Error(err))
	}

	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer conn.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Fatal("Failed to set goose dialect", zap.Error(err))
	}

	logger.Info("Running migrations", zap.String("command", command), zap.String("stage", stage))
	if err := goose.RunContext(ctx, command, conn, "."); err != nil {
		logger.Fatal("Migration failed", zap.String("command", command), zap.Error(err))
	}
	logger.Info("Migrations complete", zap.String("command", command))
}
