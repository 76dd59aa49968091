package dataset

import (
	"reflect"
	"testing"
)

func TestPresent_FixedColumnOrder(t *testing.T) {
	table := testTable(t)

	columns, rows, count := Present(table)

	want := []string{
		"reg_date", "master_project", "master_project_land", "project",
		"project_land", "building_no", "building_name_en", "size_sqmt",
		"unit_number", "name_en", "mobile", "id_number", "uae_id_number",
		"size_sqft",
	}
	if !reflect.DeepEqual(columns, want) {
		t.Errorf("columns = %v, want %v", columns, want)
	}
	if count != len(table.Rows) || len(rows) != count {
		t.Errorf("count = %d, rows = %d, want %d", count, len(rows), len(table.Rows))
	}
}

func TestPresent_SkipsAbsentColumnsSilently(t *testing.T) {
	// A subset with a drifted schema still presents without error.
	table := &Table{
		Columns: []string{ColNameEn, "unknown_extra"},
		Rows:    []Row{{ColNameEn: "JOHN SMITH", "unknown_extra": "x"}},
	}

	columns, rows, count := Present(table)

	if !reflect.DeepEqual(columns, []string{ColNameEn}) {
		t.Errorf("columns = %v, want [name_en]", columns)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if _, ok := rows[0]["unknown_extra"]; ok {
		t.Error("column outside the display list leaked into the projection")
	}
}

func TestPresent_EmptySubset(t *testing.T) {
	table := testTable(t)
	empty, err := SearchByName(table, "NOBODY")
	if err != nil {
		t.Fatalf("SearchByName() error = %v", err)
	}

	columns, rows, count := Present(empty)

	if count != 0 || len(rows) != 0 {
		t.Errorf("count = %d, rows = %d, want 0", count, len(rows))
	}
	if len(columns) == 0 {
		t.Error("columns should still be reported for an empty subset")
	}
}

func TestPresent_DoesNotReorderRows(t *testing.T) {
	table := testTable(t)

	_, rows, _ := Present(table)

	for i, r := range rows {
		want := table.Rows[i][ColNameEn]
		if r[ColNameEn] != want {
			t.Errorf("row %d name_en = %v, want %v", i, r[ColNameEn], want)
		}
	}
}
