package repomanager

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	sc "github.com/taskvault/taskvault/internal/server/config"
	"github.com/taskvault/taskvault/internal/server/repositories/accounts"
	"github.com/taskvault/taskvault/internal/server/repositories/tasks"
)

// DynamoRepositoryManager shares one DynamoDB client between the account
// and task repositories. Tables are managed outside the process.
type DynamoRepositoryManager struct {
	accounts *accounts.DynamoRepository
	tasks    *tasks.DynamoRepository
}

func NewDynamoRepositoryManager(ctx context.Context, cfg *sc.Config) (*DynamoRepositoryManager, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWSEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpoint)
		}
	})

	return &DynamoRepositoryManager{
		accounts: accounts.NewDynamoRepository(client, cfg.AccountsTable),
		tasks:    tasks.NewDynamoRepository(client, cfg.TasksTable),
	}, nil
}

func (m *DynamoRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *DynamoRepositoryManager) Tasks() tasks.Repository {
	return m.tasks
}

func (m *DynamoRepositoryManager) Close() error {
	return nil
}
