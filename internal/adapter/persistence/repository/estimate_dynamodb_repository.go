package repository

import (
	"context"
	"time"

	"gestao_capacidade/internal/domain/entities"
	"gestao_capacidade/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultEstimatesTableName = "tempo_estimado"

type estimateItem struct {
	ID               string     `dynamodbav:"id"`
	ResponsibleID    flexString `dynamodbav:"responsavel_id"`
	ClientID         flexString `dynamodbav:"cliente_id"`
	ProductID        flexString `dynamodbav:"produto_id"`
	TaskTypeID       flexString `dynamodbav:"tipo_tarefa_id"`
	TaskID           flexString `dynamodbav:"tarefa_id"`
	StartDate        string     `dynamodbav:"data_inicio,omitempty"`
	EndDate          string     `dynamodbav:"data_fim,omitempty"`
	TempoEstimadoDia float64    `dynamodbav:"tempo_estimado_dia"`
}

// EstimateDynamoRepository persists estimate rules in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - data_inicio / data_fim stored as YYYY-MM-DD; either may be absent
type EstimateDynamoRepository struct {
	ddb       DynamoAPI
	tableName *string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoAPI, table string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{ddb: ddb, tableName: tableName(table, defaultEstimatesTableName)}
}

func (r *EstimateDynamoRepository) ListByPeriod(ctx context.Context, start, end time.Time, responsibleIDs []string) ([]entities.EstimateRecord, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: r.tableName,
		FilterExpression: aws.String(
			"(attribute_not_exists(#inicio) OR #inicio <= :end) AND (attribute_not_exists(#fim) OR #fim >= :start)",
		),
		ExpressionAttributeNames: map[string]string{
			"#inicio": "data_inicio",
			"#fim":    "data_fim",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":start": &types.AttributeValueMemberS{Value: formatDate(&start)},
			":end":   &types.AttributeValueMemberS{Value: formatDate(&end)},
		},
	})
	if err != nil {
		return nil, err
	}

	want := newIDSet(responsibleIDs)
	out := make([]entities.EstimateRecord, 0, len(raw))
	for _, av := range raw {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		if !want.matches(string(it.ResponsibleID)) {
			continue
		}
		out = append(out, fromEstimateItem(it))
	}
	return out, nil
}

func (r *EstimateDynamoRepository) Save(ctx context.Context, estimates []entities.EstimateRecord) error {
	items := make([]map[string]types.AttributeValue, 0, len(estimates))
	for _, e := range estimates {
		av, err := attributevalue.MarshalMap(toEstimateItem(e))
		if err != nil {
			return err
		}
		items = append(items, av)
	}
	return batchPut(ctx, r.ddb, *r.tableName, items)
}

func toEstimateItem(e entities.EstimateRecord) estimateItem {
	id := e.ID
	if id == "" {
		id = uuid.NewString()
	}
	return estimateItem{
		ID:               id,
		ResponsibleID:    flexString(e.ResponsibleID),
		ClientID:         flexString(e.ClientID),
		ProductID:        flexString(e.ProductID),
		TaskTypeID:       flexString(e.TaskTypeID),
		TaskID:           flexString(e.TaskID),
		StartDate:        formatDate(e.StartDate),
		EndDate:          formatDate(e.EndDate),
		TempoEstimadoDia: e.EstimatedPerDay,
	}
}

func fromEstimateItem(it estimateItem) entities.EstimateRecord {
	return entities.EstimateRecord{
		ID:              it.ID,
		ResponsibleID:   string(it.ResponsibleID),
		ClientID:        string(it.ClientID),
		ProductID:       string(it.ProductID),
		TaskTypeID:      string(it.TaskTypeID),
		TaskID:          string(it.TaskID),
		StartDate:       parseTime(it.StartDate),
		EndDate:         parseTime(it.EndDate),
		EstimatedPerDay: it.TempoEstimadoDia,
	}
}
