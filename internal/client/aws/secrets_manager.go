package aws

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
	"github.com/taxdesk/tax-service/internal/logger"
	"go.uber.org/zap"
)

// secretsAPI is the part of the Secrets Manager client used here.
type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient reads secrets named by environment variables.
type SecretsManagerClient struct {
	api secretsAPI
}

// NewSecretsManagerClient creates a Secrets Manager client from cfg.
func NewSecretsManagerClient(cfg aws.Config) *SecretsManagerClient {
	return &SecretsManagerClient{api: secretsmanager.NewFromConfig(cfg)}
}

func (c *SecretsManagerClient) fetch(ctx context.Context, arn string) (string, error) {
	out, err := c.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(arn),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to get secret %s", arn)
	}
	if out.SecretString == nil || *out.SecretString == "" {
		return "", errors.Errorf("secret %s has no string value", arn)
	}
	return *out.SecretString, nil
}

// GetSecretString returns the secret whose ARN is in secretArnEnvVar. If that
// variable is unset or the lookup fails, the value of fallbackEnvVar is used.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar, fallbackEnvVar string) (string, error) {
	if arn := os.Getenv(secretArnEnvVar); arn != "" {
		value, err := c.fetch(ctx, arn)
		if err == nil {
			logger.Log.Info("Fetched secret from Secrets Manager", zap.String("arn_env_var", secretArnEnvVar))
			return value, nil
		}
		logger.Log.Warn("Secrets Manager lookup failed, using fallback",
			zap.String("arn_env_var", secretArnEnvVar),
			zap.String("fallback_env_var", fallbackEnvVar),
			zap.Error(err))
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		logger.Log.Debug("Using secret from environment", zap.String("env_var", fallbackEnvVar))
		return value, nil
	}
	return "", errors.Errorf("secret not found in %s or %s", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON decodes the JSON secret whose ARN is in secretArnEnvVar into
// target. There is no environment fallback: RDS credentials only live in
// Secrets Manager.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, target interface{}) error {
	arn := os.Getenv(secretArnEnvVar)
	if arn == "" {
		return errors.Errorf("%s is not set", secretArnEnvVar)
	}
	value, err := c.fetch(ctx, arn)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(value), target); err != nil {
		return errors.Wrapf(err, "secret in %s is not valid JSON", secretArnEnvVar)
	}
	return nil
}
