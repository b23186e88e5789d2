package repository

import (
	"context"

	"gestao_capacidade/internal/domain/entities"
	"gestao_capacidade/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "catalogo"

type catalogItem struct {
	Kind string     `dynamodbav:"tipo"`
	ID   flexString `dynamodbav:"id"`
	Name string     `dynamodbav:"nome"`
}

// CatalogDynamoRepository stores the display names of clients, products,
// task types, tasks and contract types.
//
// Table requirements:
//   - PK: tipo (string)
//   - SK: id (string)
type CatalogDynamoRepository struct {
	ddb       DynamoAPI
	tableName *string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoAPI, table string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb, tableName: tableName(table, defaultCatalogTableName)}
}

// ListNames queries the kind partition and keeps the requested ids.
func (r *CatalogDynamoRepository) ListNames(ctx context.Context, kind string, ids []string) (map[string]string, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                r.tableName,
		KeyConditionExpression:   aws.String("#tipo = :tipo"),
		ExpressionAttributeNames: map[string]string{"#tipo": "tipo"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tipo": &types.AttributeValueMemberS{Value: kind},
		},
	})
	if err != nil {
		return nil, err
	}

	want := newIDSet(ids)
	out := make(map[string]string, len(raw))
	for _, av := range raw {
		var it catalogItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		if !want.matches(string(it.ID)) {
			continue
		}
		out[string(it.ID)] = it.Name
	}
	return out, nil
}

func (r *CatalogDynamoRepository) Save(ctx context.Context, entries []entities.CatalogEntry) error {
	items := make([]map[string]types.AttributeValue, 0, len(entries))
	for _, e := range entries {
		av, err := attributevalue.MarshalMap(catalogItem{Kind: e.Kind, ID: flexString(e.ID), Name: e.Name})
		if err != nil {
			return err
		}
		items = append(items, av)
	}
	return batchPut(ctx, r.ddb, *r.tableName, items)
}
