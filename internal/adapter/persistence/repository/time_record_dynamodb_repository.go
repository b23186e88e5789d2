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

const defaultTimeRecordsTableName = "registro_tempo"

type timeRecordItem struct {
	ID             string     `dynamodbav:"id"`
	UserID         flexString `dynamodbav:"usuario_id"`
	ClientID       flexString `dynamodbav:"cliente_id"`
	ProductID      flexString `dynamodbav:"produto_id"`
	TaskTypeID     flexString `dynamodbav:"tipo_tarefa_id"`
	TaskID         flexString `dynamodbav:"tarefa_id"`
	StartedAt      string     `dynamodbav:"data_inicio,omitempty"`
	EndedAt        string     `dynamodbav:"data_fim,omitempty"`
	TempoRealizado float64    `dynamodbav:"tempo_realizado,omitempty"`
}

// TimeRecordDynamoRepository persists realized work in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - data_inicio / data_fim stored as UTC "2006-01-02T15:04:05.000Z"
type TimeRecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName *string
}

var _ interfaces.ITimeRecordRepository = (*TimeRecordDynamoRepository)(nil)

func NewTimeRecordDynamoRepository(ddb DynamoAPI, table string) *TimeRecordDynamoRepository {
	return &TimeRecordDynamoRepository{ddb: ddb, tableName: tableName(table, defaultTimeRecordsTableName)}
}

func (r *TimeRecordDynamoRepository) ListByPeriod(ctx context.Context, start, end time.Time, userIDs []string) ([]entities.TimeRecord, error) {
	from := start.UTC().Truncate(24 * time.Hour)
	to := end.UTC().Truncate(24 * time.Hour).Add(24*time.Hour - time.Millisecond)

	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        r.tableName,
		FilterExpression: aws.String("#inicio <= :end AND (attribute_not_exists(#fim) OR #fim >= :start)"),
		ExpressionAttributeNames: map[string]string{
			"#inicio": "data_inicio",
			"#fim":    "data_fim",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":start": &types.AttributeValueMemberS{Value: formatTimestamp(&from)},
			":end":   &types.AttributeValueMemberS{Value: formatTimestamp(&to)},
		},
	})
	if err != nil {
		return nil, err
	}

	want := newIDSet(userIDs)
	out := make([]entities.TimeRecord, 0, len(raw))
	for _, av := range raw {
		var it timeRecordItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		if !want.matches(string(it.UserID)) {
			continue
		}
		out = append(out, fromTimeRecordItem(it))
	}
	return out, nil
}

func (r *TimeRecordDynamoRepository) Save(ctx context.Context, records []entities.TimeRecord) error {
	items := make([]map[string]types.AttributeValue, 0, len(records))
	for _, rec := range records {
		av, err := attributevalue.MarshalMap(toTimeRecordItem(rec))
		if err != nil {
			return err
		}
		items = append(items, av)
	}
	return batchPut(ctx, r.ddb, *r.tableName, items)
}

func toTimeRecordItem(r entities.TimeRecord) timeRecordItem {
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}
	return timeRecordItem{
		ID:             id,
		UserID:         flexString(r.CollaboratorID),
		ClientID:       flexString(r.ClientID),
		ProductID:      flexString(r.ProductID),
		TaskTypeID:     flexString(r.TaskTypeID),
		TaskID:         flexString(r.TaskID),
		StartedAt:      formatTimestamp(r.StartedAt),
		EndedAt:        formatTimestamp(r.EndedAt),
		TempoRealizado: r.RealizedMs,
	}
}

func fromTimeRecordItem(it timeRecordItem) entities.TimeRecord {
	return entities.TimeRecord{
		ID:             it.ID,
		CollaboratorID: string(it.UserID),
		ClientID:       string(it.ClientID),
		ProductID:      string(it.ProductID),
		TaskTypeID:     string(it.TaskTypeID),
		TaskID:         string(it.TaskID),
		StartedAt:      parseTime(it.StartedAt),
		EndedAt:        parseTime(it.EndedAt),
		RealizedMs:     it.TempoRealizado,
	}
}
