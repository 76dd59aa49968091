package dataset

// DisplayColumns is the fixed column order for rendering search results.
var DisplayColumns = []string{
	ColRegDate,
	ColProcedureValue,
	ColMasterProject,
	ColMasterProjectLand,
	ColProject,
	ColProjectLand,
	ColBuildingNo,
	ColBuildingNameEn,
	ColSizeSqmt,
	ColUnitNumber,
	ColDmSubNo,
	ColPropertyTypeEn,
	ColLandNumber,
	ColProcedureType,
	ColNameEn,
	ColMobile,
	ColProcedureName,
	ColCountry,
	ColIDNumber,
	ColUaeIDNumber,
	ColBirthDate,
	ColSizeSqft,
}

// Present projects a result subset onto the display column list.
//
// Display columns missing from the table (schema drift upstream) are silently
// skipped. Rows keep their order; nothing is filtered or truncated, and the
// returned count is exactly the subset's row count.
func Present(t *Table) (columns []string, rows []Row, count int) {
	present := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		present[c] = true
	}

	columns = make([]string, 0, len(DisplayColumns))
	for _, c := range DisplayColumns {
		if present[c] {
			columns = append(columns, c)
		}
	}

	rows = make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		projected := make(Row, len(columns))
		for _, c := range columns {
			if v, ok := r[c]; ok {
				projected[c] = v
			}
		}
		rows[i] = projected
	}

	return columns, rows, len(t.Rows)
}
