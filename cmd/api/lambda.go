//go:build lambda

package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"github.com/taxdesk/tax-service/internal/helpers"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/server"
	"go.uber.org/zap"
)

var ginLambda *ginadapter.GinLambda

func init() {
	logger.InitLogger(helpers.GetEnvWithDefault("STAGE", helpers.StageProd))
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	server.InitializeHandlers()
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	fields := []zap.Field{zap.String("path", req.Path), zap.String("method", req.HTTPMethod)}
	// Request dumps carry personal data and stay out of production logs.
	if os.Getenv("STAGE") != helpers.StageProd {
		fields = append(fields, zap.String("request", spew.Sdump(req)))
	}
	logger.Debug("Received Lambda request", fields...)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync() //nolint:errcheck
	lambda.Start(Handler)
}
