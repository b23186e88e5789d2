package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// batchWriteLimit is the DynamoDB cap on requests per BatchWriteItem call.
const (
	batchWriteLimit   = 25
	batchWriteRetries = 5
)

// timestampLayout keeps stored instants lexicographically ordered so range
// filters can compare them as strings.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// flexString decodes attributes written either as S or N; legacy loads store
// ids and costs both ways.
type flexString string

func (f *flexString) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		*f = flexString(strings.TrimSpace(v.Value))
	case *types.AttributeValueMemberN:
		*f = flexString(v.Value)
	case *types.AttributeValueMemberNULL:
		*f = ""
	default:
		return fmt.Errorf("unsupported attribute type %T for id", av)
	}
	return nil
}

func (f flexString) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	if f == "" {
		return &types.AttributeValueMemberNULL{Value: true}, nil
	}
	return &types.AttributeValueMemberS{Value: string(f)}, nil
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.DateOnly)
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05", time.DateOnly}

// parseTime accepts the layouts found in stored rows; empty or unparseable
// values yield nil.
func parseTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func scanAll(ctx context.Context, api DynamoAPI, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(api, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func queryAll(ctx context.Context, api DynamoAPI, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(api, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// batchPut writes items in chunks, resubmitting unprocessed requests.
func batchPut(ctx context.Context, api DynamoAPI, table string, items []map[string]types.AttributeValue) error {
	for start := 0; start < len(items); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(items))
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, it := range items[start:end] {
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: it}})
		}

		pending := map[string][]types.WriteRequest{table: reqs}
		for attempt := 0; len(pending[table]) > 0; attempt++ {
			if attempt == batchWriteRetries {
				return fmt.Errorf("batch write %s: %d items left unprocessed", table, len(pending[table]))
			}
			out, err := api.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

// idSet is a lookup of normalized ids; a nil set matches everything.
type idSet map[string]struct{}

func newIDSet(ids []string) idSet {
	if len(ids) == 0 {
		return nil
	}
	s := make(idSet, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

func (s idSet) matches(id string) bool {
	if s == nil {
		return true
	}
	_, ok := s[strings.TrimSpace(id)]
	return ok
}

func tableName(name, def string) *string {
	if name == "" {
		name = def
	}
	return aws.String(name)
}
