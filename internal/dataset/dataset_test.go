package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHongKong(t *testing.T) {
	ds := HongKong()

	assert.Equal(t, 22, ds.Len())
	first, last := ds.Span()
	assert.Equal(t, 2002, first)
	assert.Equal(t, 2023, last)
	assert.Equal(t, 9, ds.MaxCount())
	assert.Equal(t, 5, ds.MinCount())

	for _, r := range ds.Records() {
		require.NotNil(t, r.Detail, "year %d", r.Year)
		assert.Len(t, r.Detail.Names, 3)
	}
}

func TestNewSortsByYear(t *testing.T) {
	ds, err := New([]YearlyRecord{{Year: 2005, Count: 3}, {Year: 2003, Count: 1}, {Year: 2004, Count: 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{2003, 2004, 2005}, ds.Years())
	assert.Equal(t, []int{1, 2, 3}, ds.Counts())
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		records []YearlyRecord
		want    error
	}{
		{"empty", nil, ErrEmptyDataset},
		{"duplicate", []YearlyRecord{{Year: 2002, Count: 1}, {Year: 2002, Count: 2}}, ErrDuplicateYear},
		{"negative", []YearlyRecord{{Year: 2002, Count: -1}}, ErrNegativeCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.records)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestRecordsAreCopies(t *testing.T) {
	ds := HongKong()
	recs := ds.Records()
	recs[0].Count = 100
	recs[0].Detail.Names[0] = "changed"

	assert.Equal(t, 6, ds.Record(0).Count)
	assert.Equal(t, "Hagupit", ds.Record(0).Detail.Names[0])
}

func TestDetailFor(t *testing.T) {
	ds := HongKong()

	d := ds.DetailFor(2018)
	assert.Equal(t, 230, d.MaxWind)
	assert.Equal(t, DamageCatastrophic, d.Damage)
	assert.Equal(t, "Mangkhut", d.Names[2])

	missing := ds.DetailFor(1990)
	assert.Equal(t, []string{"Unknown"}, missing.Names)
	assert.Equal(t, "Unknown", missing.Damage.String())
}

func TestBetween(t *testing.T) {
	ds := HongKong()
	assert.Len(t, ds.Between(2002, 2010), 9)
	assert.Len(t, ds.Between(2021, 2023), 3)
	assert.Empty(t, ds.Between(1990, 1995))
}

func TestParseDamageLevel(t *testing.T) {
	level, err := ParseDamageLevel("severe")
	require.NoError(t, err)
	assert.Equal(t, DamageSevere, level)

	_, err = ParseDamageLevel("apocalyptic")
	assert.Error(t, err)
}
