package models

import "sort"

// VitalsRow is one row of the readings table, as returned by the COACH
// backend after a create.
type VitalsRow struct {
	ReadingDateTimestamp int64  `json:"readingDateTimestamp"`
	ReadingDateString    string `json:"readingDateString"`
	ReadingType          string `json:"readingType"`
	Value                string `json:"value"`
}

// VitalsTable holds the rendered readings sorted ascending by timestamp.
type VitalsTable struct {
	Rows []VitalsRow `json:"rows"`
}

// Insert places a new row so the table stays sorted ascending by timestamp.
// On equal timestamps existing rows keep their position ahead of the new one.
func (t *VitalsTable) Insert(row VitalsRow) {
	t.Rows = append(t.Rows, row)
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i].ReadingDateTimestamp < t.Rows[j].ReadingDateTimestamp
	})
}
