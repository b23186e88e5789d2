package holidays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEaster(t *testing.T) {
	cases := map[int]time.Time{
		2019: date(2019, time.April, 21),
		2023: date(2023, time.April, 9),
		2024: date(2024, time.March, 31),
		2025: date(2025, time.April, 20),
	}
	for year, want := range cases {
		assert.Equal(t, want, Easter(year), "year %d", year)
	}
}

func TestNational_MovableDates(t *testing.T) {
	got := map[string]string{}
	for _, h := range National(2024) {
		got[h.Date.Format(time.DateOnly)] = h.Name
	}

	assert.Equal(t, "Carnaval", got["2024-02-12"])
	assert.Equal(t, "Carnaval", got["2024-02-13"])
	assert.Equal(t, "Sexta-feira Santa", got["2024-03-29"])
	assert.Equal(t, "Corpus Christi", got["2024-05-30"])
	assert.Equal(t, "Tiradentes", got["2024-04-21"])
	assert.Contains(t, got, "2024-11-20")
	assert.Len(t, got, 13)
}

func TestNational_ConsciênciaNegraOnlyFrom2024(t *testing.T) {
	for _, h := range National(2023) {
		assert.NotEqual(t, date(2023, time.November, 20), h.Date)
	}
}

func TestNational_Ordered(t *testing.T) {
	hs := National(2025)
	for i := 1; i < len(hs); i++ {
		require.False(t, hs[i].Date.Before(hs[i-1].Date), "not ordered at %d", i)
	}
}

func TestNationalBetween(t *testing.T) {
	hs := NationalBetween(date(2023, time.December, 20), date(2024, time.January, 10))
	require.Len(t, hs, 2)
	assert.Equal(t, date(2023, time.December, 25), hs[0].Date)
	assert.Equal(t, date(2024, time.January, 1), hs[1].Date)

	assert.Empty(t, NationalBetween(date(2024, time.January, 2), date(2024, time.January, 1)))
}
