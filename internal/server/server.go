// Package server wires the tax service together: configuration, the
// database pool, reference tables, services and the gin routes.
package server

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	awsclient "github.com/taxdesk/tax-service/internal/client/aws"
	"github.com/taxdesk/tax-service/internal/db"
	"github.com/taxdesk/tax-service/internal/handlers"
	"github.com/taxdesk/tax-service/internal/helpers"
	"github.com/taxdesk/tax-service/internal/interfaces"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/middleware"
	"github.com/taxdesk/tax-service/internal/services"
	"github.com/taxdesk/tax-service/internal/taxcalc"
	"go.uber.org/zap"
)

// Dependencies are the long-lived resources shared by the API and the
// background commands.
type Dependencies struct {
	Stage      string
	AWSConfig  aws.Config
	Secrets    *awsclient.SecretsManagerClient
	Pool       *pgxpool.Pool
	Queries    *db.Queries
	Tx         *helpers.TxRunner
	Store      interfaces.ObjectStore
	Calculator *taxcalc.Calculator
}

// Handlers groups the HTTP handlers mounted by RegisterRoutes.
type Handlers struct {
	TaxReturns  *handlers.TaxReturnHandler
	W2s         *handlers.W2Handler
	Deductions  *handlers.DeductionHandler
	Credits     *handlers.CreditHandler
	OtherIncome *handlers.OtherIncomeHandler
	Health      *handlers.HealthHandler
}

var (
	deps        *Dependencies
	apiHandlers Handlers
	rateLimiter *middleware.RateLimiter
	stopPruning chan struct{}
)

// Bootstrap loads configuration and opens every resource the service needs.
// The reference tables are loaded once here, so changed brackets take effect
// on the next restart. The global logger must already be initialized.
func Bootstrap(ctx context.Context) (*Dependencies, error) {
	envErr := godotenv.Load()

	stage := helpers.GetEnvWithDefault("STAGE", helpers.StageLocal)
	if !helpers.IsValidStage(stage) {
		return nil, fmt.Errorf("invalid STAGE %q: must be one of prod, dev, local", stage)
	}
	logger.InitLogger(stage)
	if envErr != nil {
		logger.Debug("No .env file loaded", zap.Error(envErr))
	}

	awsCfg, err := awsclient.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}
	secrets := awsclient.NewSecretsManagerClient(awsCfg)

	dsn, err := DatabaseURL(ctx, stage, secrets)
	if err != nil {
		return nil, err
	}
	pool, err := OpenPool(ctx, dsn)
	if err != nil {
		return nil, err
	}
	queries := db.New(pool)

	ref, err := services.NewReferenceService(queries).LoadReferenceData(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}

	var store interfaces.ObjectStore
	if bucket := os.Getenv("W2_BUCKET"); bucket != "" {
		store = awsclient.NewS3Store(awsCfg, bucket, os.Getenv("S3_ENDPOINT"))
		logger.Info("W2 image storage enabled", zap.String("bucket", bucket))
	} else {
		logger.Warn("W2_BUCKET not set, W2 image upload is disabled")
	}

	return &Dependencies{
		Stage:      stage,
		AWSConfig:  awsCfg,
		Secrets:    secrets,
		Pool:       pool,
		Queries:    queries,
		Tx:         helpers.NewTxRunner(pool, helpers.GetEnvInt("DB_TX_RETRIES", 3)),
		Store:      store,
		Calculator: taxcalc.NewCalculator(ref),
	}, nil
}

// NewHandlers builds the services over d and the handlers over them.
func NewHandlers(d *Dependencies) Handlers {
	reference := services.NewReferenceService(d.Queries)
	var pinger handlers.Pinger
	if d.Pool != nil {
		pinger = d.Pool
	}
	return Handlers{
		TaxReturns:  handlers.NewTaxReturnHandler(services.NewTaxReturnService(d.Queries, d.Tx, d.Store, d.Calculator)),
		W2s:         handlers.NewW2Handler(services.NewW2Service(d.Queries, d.Tx, d.Store, d.Calculator)),
		Deductions:  handlers.NewDeductionHandler(services.NewDeductionService(d.Queries, d.Tx, d.Calculator), reference),
		Credits:     handlers.NewCreditHandler(services.NewCreditService(d.Queries, d.Tx, d.Calculator)),
		OtherIncome: handlers.NewOtherIncomeHandler(services.NewOtherIncomeService(d.Queries, d.Tx, d.Calculator)),
		Health:      handlers.NewHealthHandler(pinger),
	}
}

// InitializeHandlers bootstraps the process and builds the API handlers.
// Startup failures are fatal.
func InitializeHandlers() {
	ctx := context.Background()

	d, err := Bootstrap(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize service", zap.Error(err))
	}
	if err := middleware.RegisterValidators(); err != nil {
		logger.Fatal("Failed to register request validators", zap.Error(err))
	}

	deps = d
	apiHandlers = NewHandlers(d)
	rateLimiter = middleware.NewRateLimiter(
		helpers.GetEnvInt("RATE_LIMIT_RPS", 20),
		helpers.GetEnvInt("RATE_LIMIT_BURST", 40),
	)
	stopPruning = make(chan struct{})
	rateLimiter.StartPruning(helpers.GetEnvDuration("RATE_LIMIT_PRUNE_INTERVAL", 5*time.Minute), stopPruning)

	logger.Info("Handlers initialized", zap.String("stage", d.Stage))
}

// InitializeRoutes mounts the API on router.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	RegisterRoutes(router, apiHandlers, rateLimiter)
}

// RegisterRoutes mounts h under /api/v1. limiter may be nil.
func RegisterRoutes(router *gin.Engine, h Handlers, limiter *middleware.RateLimiter) {
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogging())
	if limiter != nil {
		router.Use(limiter.Middleware())
	}

	router.GET("/health", h.Health.Health)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireUserID())
	{
		v1.GET("/deductions", h.Deductions.ListDeductions)

		taxReturns := v1.Group("/tax-returns")
		{
			taxReturns.POST("", h.TaxReturns.CreateTaxReturn)
			taxReturns.GET("", h.TaxReturns.ListTaxReturns)
			taxReturns.GET("/filing-statuses", h.TaxReturns.ListFilingStatuses)
			taxReturns.PUT("/deductions/:deduction_id", h.Deductions.UpdateClaimedDeduction)
			taxReturns.DELETE("/deductions/:deduction_id", h.Deductions.DeleteClaimedDeduction)

			taxReturns.GET("/:id", h.TaxReturns.GetTaxReturn)
			taxReturns.PUT("/:id", h.TaxReturns.UpdateTaxReturn)
			taxReturns.DELETE("/:id", h.TaxReturns.DeleteTaxReturn)
			taxReturns.GET("/:id/refund", h.TaxReturns.GetRefund)
			taxReturns.POST("/:id/recalculate", h.TaxReturns.Recalculate)

			taxReturns.POST("/:id/deductions", h.Deductions.ClaimDeduction)
			taxReturns.GET("/:id/deductions", h.Deductions.ListClaimedDeductions)

			taxReturns.GET("/:id/credits", h.Credits.GetCredit)
			taxReturns.POST("/:id/credits", h.Credits.CreateCredit)
			taxReturns.PUT("/:id/credits", h.Credits.UpdateCredit)
			taxReturns.DELETE("/:id/credits", h.Credits.DeleteCredit)

			taxReturns.GET("/:id/other-income", h.OtherIncome.GetOtherIncome)
			taxReturns.POST("/:id/other-income", h.OtherIncome.CreateOtherIncome)
			taxReturns.PUT("/:id/other-income", h.OtherIncome.UpdateOtherIncome)
			taxReturns.DELETE("/:id/other-income", h.OtherIncome.DeleteOtherIncome)
		}

		w2s := v1.Group("/w2s")
		{
			w2s.POST("", h.W2s.CreateW2)
			w2s.GET("", h.W2s.ListW2s)
			w2s.GET("/return/:tax_return_id", h.W2s.ListW2sByTaxReturn)
			w2s.PUT("/return/:tax_return_id", h.W2s.ReplaceW2s)
			w2s.GET("/:id", h.W2s.GetW2)
			w2s.PUT("/:id", h.W2s.UpdateW2)
			w2s.DELETE("/:id", h.W2s.DeleteW2)
			w2s.POST("/:id/image", h.W2s.UploadImage)
			w2s.GET("/:id/image", h.W2s.GetImage)
		}
	}
}

// Shutdown stops background work and closes the database pool.
func Shutdown() {
	if stopPruning != nil {
		close(stopPruning)
		stopPruning = nil
	}
	if deps != nil && deps.Pool != nil {
		deps.Pool.Close()
	}
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = envList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	corsConfig.AllowMethods = envList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	corsConfig.AllowHeaders = envList("CORS_ALLOWED_HEADERS", []string{
		"Origin", "Content-Type", "Accept", "Authorization", "User-ID", "X-Correlation-ID",
	})
	corsConfig.ExposeHeaders = envList("CORS_EXPOSED_HEADERS", []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
		"X-Correlation-ID",
		"ETag",
	})
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"
	return cors.New(corsConfig)
}

// envList splits a comma separated variable, trimming each entry.
func envList(key string, defaults []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaults
	}
	var values []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return defaults
	}
	return values
}
