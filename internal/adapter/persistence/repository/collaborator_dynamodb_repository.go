package repository

import (
	"context"
	"sort"

	"gestao_capacidade/internal/domain/entities"
	"gestao_capacidade/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCollaboratorsTableName = "membro"

type collaboratorItem struct {
	ID     flexString `dynamodbav:"id"`
	UserID flexString `dynamodbav:"usuario_id"`
	Name   string     `dynamodbav:"nome"`
}

// CollaboratorDynamoRepository reads the collaborator directory from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type CollaboratorDynamoRepository struct {
	ddb       DynamoAPI
	tableName *string
}

var _ interfaces.ICollaboratorRepository = (*CollaboratorDynamoRepository)(nil)

func NewCollaboratorDynamoRepository(ddb DynamoAPI, table string) *CollaboratorDynamoRepository {
	return &CollaboratorDynamoRepository{ddb: ddb, tableName: tableName(table, defaultCollaboratorsTableName)}
}

// List scans the directory and keeps the requested ids. The id filter runs
// client-side because stored ids may be S or N.
func (r *CollaboratorDynamoRepository) List(ctx context.Context, ids []string) ([]entities.Collaborator, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: r.tableName})
	if err != nil {
		return nil, err
	}

	want := newIDSet(ids)
	out := make([]entities.Collaborator, 0, len(raw))
	for _, av := range raw {
		var it collaboratorItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		if !want.matches(string(it.ID)) {
			continue
		}
		out = append(out, entities.Collaborator{ID: string(it.ID), UserID: string(it.UserID), Name: it.Name})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CollaboratorDynamoRepository) Save(ctx context.Context, collaborators []entities.Collaborator) error {
	items := make([]map[string]types.AttributeValue, 0, len(collaborators))
	for _, c := range collaborators {
		av, err := attributevalue.MarshalMap(collaboratorItem{ID: flexString(c.ID), UserID: flexString(c.UserID), Name: c.Name})
		if err != nil {
			return err
		}
		items = append(items, av)
	}
	return batchPut(ctx, r.ddb, *r.tableName, items)
}
