package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type item = map[string]types.AttributeValue

// fakeDynamo serves canned pages and records every request.
type fakeDynamo struct {
	scanPages  [][]item
	queryPages [][]item
	err        error
	// unprocessed is returned once per BatchWriteItem call until exhausted.
	unprocessed []map[string][]types.WriteRequest

	scans   []*dynamodb.ScanInput
	queries []*dynamodb.QueryInput
	writes  []*dynamodb.BatchWriteItemInput
}

func lastKey(page, total int) item {
	if page+1 >= total {
		return nil
	}
	return item{"page": &types.AttributeValueMemberN{Value: "1"}}
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	n := len(f.scans)
	f.scans = append(f.scans, in)
	if n >= len(f.scanPages) {
		return &dynamodb.ScanOutput{}, nil
	}
	return &dynamodb.ScanOutput{Items: f.scanPages[n], LastEvaluatedKey: lastKey(n, len(f.scanPages))}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	n := len(f.queries)
	f.queries = append(f.queries, in)
	if n >= len(f.queryPages) {
		return &dynamodb.QueryOutput{}, nil
	}
	return &dynamodb.QueryOutput{Items: f.queryPages[n], LastEvaluatedKey: lastKey(n, len(f.queryPages))}, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.writes = append(f.writes, in)
	out := &dynamodb.BatchWriteItemOutput{}
	if len(f.unprocessed) > 0 {
		out.UnprocessedItems = f.unprocessed[0]
		f.unprocessed = f.unprocessed[1:]
	}
	return out, nil
}

func s(v string) types.AttributeValue { return &types.AttributeValueMemberS{Value: v} }
func n(v string) types.AttributeValue { return &types.AttributeValueMemberN{Value: v} }
