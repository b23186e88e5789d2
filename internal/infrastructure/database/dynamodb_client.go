package database

import (
	"context"
	"errors"
	"fmt"

	appconfig "gestao_capacidade/internal/config"
	"gestao_capacidade/internal/infrastructure/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates a DynamoDB client from the application config.
//
// DYNAMODB_ENDPOINT points the client at a local DynamoDB (e.g.
// http://dynamodb:8000); static credentials are always set because the SDK
// requires them even when the local server ignores them.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, cfg appconfig.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(creds),
	)
}

// TableAPI is the subset of *dynamodb.Client EnsureDynamoTables needs.
type TableAPI interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// TableSpecs describes the key schema of every table.
func TableSpecs(t appconfig.Tables) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		hashTable(t.Collaborators, "id"),
		hashTable(t.TimeRecords, "id"),
		hashTable(t.Estimates, "id"),
		{
			TableName: aws.String(t.Vigencias),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("membro_id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("dt_vigencia"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("membro_id"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("dt_vigencia"), KeyType: types.KeyTypeRange},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
		hashTable(t.Holidays, "data"),
		{
			TableName: aws.String(t.Catalog),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("tipo"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("tipo"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeRange},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
	}
}

func hashTable(name, key string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:            aws.String(name),
		AttributeDefinitions: []types.AttributeDefinition{{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS}},
		KeySchema:            []types.KeySchemaElement{{AttributeName: aws.String(key), KeyType: types.KeyTypeHash}},
		BillingMode:          types.BillingModePayPerRequest,
	}
}

// EnsureDynamoTables creates the missing tables; existing ones are left as is.
func EnsureDynamoTables(ctx context.Context, api TableAPI, tables appconfig.Tables) error {
	for _, in := range TableSpecs(tables) {
		_, err := api.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			logger.WithContext(ctx).WithField("table", *in.TableName).Info("[database][dynamodb] table created")
		case errors.As(err, &inUse):
			logger.WithContext(ctx).WithField("table", *in.TableName).Debug("[database][dynamodb] table already exists")
		default:
			return fmt.Errorf("create table %s: %w", *in.TableName, err)
		}
	}
	return nil
}
