package database

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	appconfig "gestao_capacidade/internal/config"
	"gestao_capacidade/internal/infrastructure/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.SetOutput(io.Discard)
}

type fakeTables struct {
	created []string
	exists  map[string]bool
	err     error
}

func (f *fakeTables) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	name := aws.ToString(in.TableName)
	if f.exists[name] {
		return nil, &types.ResourceInUseException{Message: aws.String("exists")}
	}
	f.created = append(f.created, name)
	return &dynamodb.CreateTableOutput{}, nil
}

var tables = appconfig.Tables{
	Collaborators: "membro",
	TimeRecords:   "registro_tempo",
	Estimates:     "tempo_estimado",
	Vigencias:     "vigencia",
	Holidays:      "feriado",
	Catalog:       "catalogo",
}

func TestEnsureDynamoTables(t *testing.T) {
	api := &fakeTables{exists: map[string]bool{"membro": true}}
	require.NoError(t, EnsureDynamoTables(context.Background(), api, tables))
	assert.Equal(t, []string{"registro_tempo", "tempo_estimado", "vigencia", "feriado", "catalogo"}, api.created)
}

func TestEnsureDynamoTables_Error(t *testing.T) {
	boom := errors.New("boom")
	err := EnsureDynamoTables(context.Background(), &fakeTables{err: boom}, tables)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "membro")
}

func TestTableSpecs_VigenciaHasSortKey(t *testing.T) {
	specs := TableSpecs(tables)
	require.Len(t, specs, 6)
	vig := specs[3]
	assert.Equal(t, "vigencia", aws.ToString(vig.TableName))
	require.Len(t, vig.KeySchema, 2)
	assert.Equal(t, types.KeyTypeRange, vig.KeySchema[1].KeyType)
	assert.Equal(t, "dt_vigencia", aws.ToString(vig.KeySchema[1].AttributeName))

	catalog := specs[5]
	assert.Equal(t, "catalogo", aws.ToString(catalog.TableName))
	require.Len(t, catalog.KeySchema, 2)
	assert.Equal(t, "tipo", aws.ToString(catalog.KeySchema[0].AttributeName))
}

func TestConnectDynamoDB_Endpoint(t *testing.T) {
	cfg := appconfig.Config{AWSRegion: "sa-east-1", AWSAccessKeyID: "local", AWSSecretAccessKey: "local", DynamoDBEndpoint: "http://localhost:8000"}
	client, err := ConnectDynamoDB(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", client.Options().Region)
	assert.Equal(t, "http://localhost:8000", aws.ToString(client.Options().BaseEndpoint))
}

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "capacidade.db")
	db, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE scratch (id INTEGER)").Error)
	require.NoError(t, CloseSQLite(db))
	assert.FileExists(t, path)
}
