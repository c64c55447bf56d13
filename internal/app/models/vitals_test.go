package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVitalsTableInsert(t *testing.T) {
	row := func(ts int64, value string) VitalsRow {
		return VitalsRow{ReadingDateTimestamp: ts, ReadingType: "BP", Value: value}
	}

	t.Run("New row lands in timestamp order", func(t *testing.T) {
		table := &VitalsTable{Rows: []VitalsRow{
			row(98, "a"), row(99, "b"), row(101, "c"),
		}}
		table.Insert(row(100, "new"))

		require.Len(t, table.Rows, 4)
		assert.Equal(t, []int64{98, 99, 100, 101}, timestamps(table))
		assert.Equal(t, "new", table.Rows[2].Value)
	})

	t.Run("Equal timestamps keep the existing row first", func(t *testing.T) {
		table := &VitalsTable{Rows: []VitalsRow{
			row(100, "existing"),
		}}
		table.Insert(row(100, "new"))

		require.Len(t, table.Rows, 2)
		assert.Equal(t, "existing", table.Rows[0].Value)
		assert.Equal(t, "new", table.Rows[1].Value)
	})

	t.Run("Insert into empty table", func(t *testing.T) {
		table := &VitalsTable{}
		table.Insert(row(100, "only"))
		require.Len(t, table.Rows, 1)
	})

	t.Run("Earliest row moves to the front", func(t *testing.T) {
		table := &VitalsTable{Rows: []VitalsRow{row(50, "a"), row(60, "b")}}
		table.Insert(row(10, "first"))
		assert.Equal(t, []int64{10, 50, 60}, timestamps(table))
	})
}

func timestamps(table *VitalsTable) []int64 {
	out := make([]int64, 0, len(table.Rows))
	for _, r := range table.Rows {
		out = append(out, r.ReadingDateTimestamp)
	}
	return out
}
