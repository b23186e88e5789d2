package capacity

import (
	"testing"

	"gestao_capacidade/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestSplitIDs(t *testing.T) {
	assert.Equal(t, []string{"10", "20"}, SplitIDs("10,20"))
	assert.Equal(t, []string{"10", "20"}, SplitIDs(" 10 , 20 ,,10"))
	assert.Equal(t, []string{"7"}, SplitIDs("7"))
	assert.Nil(t, SplitIDs("  "))
	assert.Nil(t, SplitIDs(""))
}

func TestClassifier_ClassifyTimeRecord(t *testing.T) {
	c := NewClassifier([]entities.Collaborator{{ID: "61", UserID: " 1001 ", Name: "Ana"}})

	k := c.ClassifyTimeRecord(entities.TimeRecord{
		CollaboratorID: "1001",
		ClientID:       "10, 20",
		ProductID:      " 5 ",
		TaskID:         "900",
	})

	assert.Equal(t, []string{"61"}, k[DimensionColaborador])
	assert.Equal(t, []string{"10", "20"}, k[DimensionCliente])
	assert.Equal(t, "5", k.First(DimensionProduto))
	assert.False(t, k.Has(DimensionTipoTarefa))
	assert.Equal(t, "900", k.First(DimensionTarefa))
}

func TestClassifier_UnknownUserKeepsRawID(t *testing.T) {
	c := NewClassifier(nil)
	assert.Equal(t, "42", c.CollaboratorForUser(" 42"))
}

func TestClassifier_ClassifyEstimate(t *testing.T) {
	c := NewClassifier([]entities.Collaborator{{ID: "61", UserID: "1001"}})

	k := c.ClassifyEstimate(entities.EstimateRecord{ResponsibleID: "61", ClientID: "10", TaskTypeID: "3"})
	assert.Equal(t, "61", k.First(DimensionColaborador))
	assert.Equal(t, "10", k.First(DimensionCliente))
	assert.Equal(t, "3", k.First(DimensionTipoTarefa))
	assert.Equal(t, "", k.First(DimensionTarefa))
}

func TestFilters_Apply(t *testing.T) {
	key := PartialKey{
		DimensionColaborador: {"1"},
		DimensionCliente:     {"10", "20"},
	}

	t.Run("no filters", func(t *testing.T) {
		got, ok := Filters(nil).apply(key)
		assert.True(t, ok)
		assert.Equal(t, key, got)
	})

	t.Run("narrows fan-out to allowed clients", func(t *testing.T) {
		got, ok := Filters{DimensionCliente: {" 20 "}}.apply(key)
		assert.True(t, ok)
		assert.Equal(t, []string{"20"}, got[DimensionCliente])
		assert.Equal(t, []string{"10", "20"}, key[DimensionCliente], "input key is not mutated")
	})

	t.Run("excludes records outside the allow-list", func(t *testing.T) {
		_, ok := Filters{DimensionColaborador: {"2"}}.apply(key)
		assert.False(t, ok)
	})

	t.Run("excludes records without a value for a filtered dimension", func(t *testing.T) {
		_, ok := Filters{DimensionTarefa: {"900"}}.apply(key)
		assert.False(t, ok)
	})

	t.Run("empty allow-list is ignored", func(t *testing.T) {
		_, ok := Filters{DimensionTarefa: {}}.apply(key)
		assert.True(t, ok)
	})
}
