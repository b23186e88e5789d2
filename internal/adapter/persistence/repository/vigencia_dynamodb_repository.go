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
)

const defaultVigenciasTableName = "vigencia"

type vigenciaItem struct {
	CollaboratorID        flexString `dynamodbav:"membro_id"`
	EffectiveFrom         string     `dynamodbav:"dt_vigencia"`
	HourlyCost            flexString `dynamodbav:"custo_hora"`
	ContractedHoursPerDay *float64   `dynamodbav:"horascontratadasdia,omitempty"`
	ContractTypeID        flexString `dynamodbav:"tipocontratoid"`
}

// VigenciaDynamoRepository persists effective-dated employment terms.
//
// Table requirements:
//   - PK: membro_id (string)
//   - SK: dt_vigencia (string, YYYY-MM-DD)
type VigenciaDynamoRepository struct {
	ddb       DynamoAPI
	tableName *string
}

var _ interfaces.IVigenciaRepository = (*VigenciaDynamoRepository)(nil)

func NewVigenciaDynamoRepository(ddb DynamoAPI, table string) *VigenciaDynamoRepository {
	return &VigenciaDynamoRepository{ddb: ddb, tableName: tableName(table, defaultVigenciasTableName)}
}

// ListByCollaborator queries the collaborator's partition up to asOf; items
// come back in sort-key order.
func (r *VigenciaDynamoRepository) ListByCollaborator(ctx context.Context, collaboratorID string, asOf time.Time) ([]entities.Vigencia, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              r.tableName,
		KeyConditionExpression: aws.String("#membro = :membro AND #dt <= :asof"),
		ExpressionAttributeNames: map[string]string{
			"#membro": "membro_id",
			"#dt":     "dt_vigencia",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":membro": &types.AttributeValueMemberS{Value: collaboratorID},
			":asof":   &types.AttributeValueMemberS{Value: formatDate(&asOf)},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Vigencia, 0, len(raw))
	for _, av := range raw {
		var it vigenciaItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		v, ok := fromVigenciaItem(it)
		if !ok {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *VigenciaDynamoRepository) Save(ctx context.Context, vigencias []entities.Vigencia) error {
	items := make([]map[string]types.AttributeValue, 0, len(vigencias))
	for _, v := range vigencias {
		av, err := attributevalue.MarshalMap(toVigenciaItem(v))
		if err != nil {
			return err
		}
		items = append(items, av)
	}
	return batchPut(ctx, r.ddb, *r.tableName, items)
}

func toVigenciaItem(v entities.Vigencia) vigenciaItem {
	return vigenciaItem{
		CollaboratorID:        flexString(v.CollaboratorID),
		EffectiveFrom:         formatDate(&v.EffectiveFrom),
		HourlyCost:            flexString(v.HourlyCost),
		ContractedHoursPerDay: v.ContractedHoursPerDay,
		ContractTypeID:        flexString(v.ContractTypeID),
	}
}

// fromVigenciaItem drops rows whose dt_vigencia cannot be parsed.
func fromVigenciaItem(it vigenciaItem) (entities.Vigencia, bool) {
	from := parseTime(it.EffectiveFrom)
	if from == nil {
		return entities.Vigencia{}, false
	}
	return entities.Vigencia{
		CollaboratorID:        string(it.CollaboratorID),
		EffectiveFrom:         *from,
		HourlyCost:            string(it.HourlyCost),
		ContractedHoursPerDay: it.ContractedHoursPerDay,
		ContractTypeID:        string(it.ContractTypeID),
	}, true
}
