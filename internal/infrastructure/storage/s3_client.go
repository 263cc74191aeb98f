package storage

import (
	"context"
	"fmt"

	"github.com/alexferreiraaf/osmaster/internal/config"
	"github.com/alexferreiraaf/osmaster/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectS3 creates the attachment bucket client. It shares credential
// handling with DynamoDB; Endpoint points it at a local S3 such as MinIO.
func ConnectS3(ctx context.Context, cfg config.BlobConfig) (*s3.Client, error) {
	awsCfg, err := database.NewAWSConfig(ctx, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}
