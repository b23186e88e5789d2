package repository

import (
	"context"
	"sort"
	"time"

	"gestao_capacidade/internal/domain/entities"
	"gestao_capacidade/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultHolidaysTableName = "feriado"

type holidayItem struct {
	Date string `dynamodbav:"data"`
	Name string `dynamodbav:"nome"`
}

// HolidayDynamoRepository persists the stored holiday calendar.
//
// Table requirements:
//   - PK: data (string, YYYY-MM-DD)
type HolidayDynamoRepository struct {
	ddb       DynamoAPI
	tableName *string
}

var _ interfaces.IHolidayRepository = (*HolidayDynamoRepository)(nil)

func NewHolidayDynamoRepository(ddb DynamoAPI, table string) *HolidayDynamoRepository {
	return &HolidayDynamoRepository{ddb: ddb, tableName: tableName(table, defaultHolidaysTableName)}
}

func (r *HolidayDynamoRepository) ListByRange(ctx context.Context, start, end time.Time) ([]entities.Holiday, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                r.tableName,
		FilterExpression:         aws.String("#data BETWEEN :start AND :end"),
		ExpressionAttributeNames: map[string]string{"#data": "data"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":start": &types.AttributeValueMemberS{Value: formatDate(&start)},
			":end":   &types.AttributeValueMemberS{Value: formatDate(&end)},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Holiday, 0, len(raw))
	for _, av := range raw {
		var it holidayItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		d := parseTime(it.Date)
		if d == nil {
			continue
		}
		out = append(out, entities.Holiday{Date: *d, Name: it.Name})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *HolidayDynamoRepository) Save(ctx context.Context, holidays []entities.Holiday) error {
	items := make([]map[string]types.AttributeValue, 0, len(holidays))
	for _, h := range holidays {
		av, err := attributevalue.MarshalMap(holidayItem{Date: formatDate(&h.Date), Name: h.Name})
		if err != nil {
			return err
		}
		items = append(items, av)
	}
	return batchPut(ctx, r.ddb, *r.tableName, items)
}
