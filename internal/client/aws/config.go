// Package aws wraps the AWS services the tax service talks to: Secrets
// Manager for database credentials, S3 for W-2 images and SQS for
// user-deleted events.
package aws

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/pkg/errors"
)

const defaultRegion = "us-east-1"

// LoadConfig loads the default AWS configuration chain. When
// LOCAL_AWS_ACCESS_KEY_ID and LOCAL_AWS_SECRET_ACCESS_KEY are set, static
// credentials are used instead, which is how a local S3 or SQS emulator is
// reached.
func LoadConfig(ctx context.Context) (aws.Config, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = defaultRegion
	}
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}

	accessKey := os.Getenv("LOCAL_AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("LOCAL_AWS_SECRET_ACCESS_KEY")
	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "unable to load AWS SDK config")
	}
	return cfg, nil
}
