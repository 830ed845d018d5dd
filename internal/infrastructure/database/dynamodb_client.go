package database

import (
	"context"

	"arton_garage/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	log "github.com/sirupsen/logrus"
)

// ConnectDynamoDB creates a DynamoDB client from the service configuration.
//
// With DYNAMODB_ENDPOINT set (DynamoDB Local, LocalStack) requests go to that
// endpoint and static credentials default to "local". Otherwise the default
// AWS credential chain is used.
func ConnectDynamoDB(ctx context.Context, cfg config.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		log.Printf("[dynamodb][database] failed to create config err=%v", err)
		return nil, err
	}

	var opts []func(*dynamodb.Options)
	if cfg.DynamoDBEndpoint != "" {
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		})
	}
	log.Printf("[dynamodb][database] client ready region=%s endpoint=%q", cfg.AWSRegion, cfg.DynamoDBEndpoint)
	return dynamodb.NewFromConfig(awsCfg, opts...), nil
}

func NewDynamoDBConfig(ctx context.Context, cfg config.Config) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}

	if cfg.DynamoDBEndpoint != "" || cfg.AWSAccessKeyID != "" {
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		creds := credentials.NewStaticCredentialsProvider(
			orDefault(cfg.AWSAccessKeyID, "local"),
			orDefault(cfg.AWSSecretAccessKey, "local"),
			"",
		)
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(creds))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
