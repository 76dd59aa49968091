package dataset

// schema.go maps the raw export's column headers onto the canonical snake_case
// schema and fixes the column types the search operations depend on.

// Canonical column names used by the search operations.
const (
	ColRegDate           = "reg_date"
	ColProcedureValue    = "procedure_value"
	ColMasterProject     = "master_project"
	ColMasterProjectLand = "master_project_land"
	ColProject           = "project"
	ColProjectLand       = "project_land"
	ColBuildingNo        = "building_no"
	ColBuildingNameEn    = "building_name_en"
	ColSizeSqmt          = "size_sqmt"
	ColSizeSqft          = "size_sqft"
	ColUnitNumber        = "unit_number"
	ColDmSubNo           = "dm_sub_no"
	ColPropertyTypeEn    = "property_type_en"
	ColLandNumber        = "land_number"
	ColProcedureType     = "procedure_type"
	ColNameEn            = "name_en"
	ColMobile            = "mobile"
	ColProcedureName     = "procedure_name"
	ColCountry           = "country"
	ColIDNumber          = "id_number"
	ColUaeIDNumber       = "uae_id_number"
	ColBirthDate         = "birth_date"
)

// SqftPerSqmt converts square metres to square feet for the derived
// size_sqft column.
const SqftPerSqmt = 10.76391

// renameMap translates the raw export's header names to canonical names.
// Headers absent from the map pass through unchanged.
var renameMap = map[string]string{
	"Regis":                    ColRegDate,
	"ProcedureValue":           ColProcedureValue,
	"Master Project":           ColMasterProject,
	"Master Project Land":      ColMasterProjectLand,
	"Project":                  ColProject,
	"Project Lnd":              ColProjectLand,
	"Building No":              ColBuildingNo,
	"BuildingNameEn":           ColBuildingNameEn,
	"Size":                     ColSizeSqmt,
	"UnitNumber":               ColUnitNumber,
	"DmSubNo":                  ColDmSubNo,
	"PropertyTypeEn":           ColPropertyTypeEn,
	"LandNumber":               ColLandNumber,
	"ProcedurePartyTypeNameEn": ColProcedureType,
	"NameEn":                   ColNameEn,
	"Mobile":                   ColMobile,
	"ProcedureNameEn":          ColProcedureName,
	"CountryNameEn":            ColCountry,
	"IdNumber":                 ColIDNumber,
	"UaeIdNumber":              ColUaeIDNumber,
	"BirthDate":                ColBirthDate,
}

// numericColumns are canonical columns coerced to float64 at load time.
// size_sqft is not listed: it is derived, never read from the source.
var numericColumns = map[string]bool{
	ColProcedureValue: true,
	ColSizeSqmt:       true,
}

// CanonicalName returns the canonical column name for a raw header.
// Unrecognized headers map to themselves.
func CanonicalName(raw string) string {
	if name, ok := renameMap[raw]; ok {
		return name
	}
	return raw
}

// Normalize turns a raw table (string cells, export header names) into the
// canonical table the search operations run against:
//
//   - every recognized header is renamed to its canonical snake_case name;
//     unrecognized headers pass through unchanged
//   - reg_date is parsed from text to time.Time
//   - procedure_value and size_sqmt are parsed to float64
//   - size_sqft is recomputed per row from size_sqmt; a size_sqft column in
//     the source is discarded rather than trusted
//
// A non-empty cell that fails its column's type returns a *ParseError and no
// table. The raw input is never mutated.
func Normalize(raw *Table) (*Table, error) {
	columns := make([]string, 0, len(raw.Columns)+1)
	hasSqmt := false
	for _, c := range raw.Columns {
		name := CanonicalName(c)
		if name == ColSizeSqft {
			// Derived column: dropped here, re-appended below.
			continue
		}
		if name == ColSizeSqmt {
			hasSqmt = true
		}
		columns = append(columns, name)
	}
	if hasSqmt {
		columns = append(columns, ColSizeSqft)
	}

	rows := make([]Row, 0, len(raw.Rows))
	for i, rawRow := range raw.Rows {
		row := make(Row, len(columns))
		line := i + 1

		for _, rawCol := range raw.Columns {
			name := CanonicalName(rawCol)
			if name == ColSizeSqft {
				continue
			}

			cell := cleanCell(cellText(rawRow[rawCol]))
			if cell == "" {
				continue
			}

			switch {
			case name == ColRegDate:
				t, ok, err := parseDate(cell)
				if err != nil {
					return nil, &ParseError{Column: name, Line: line, Value: cell}
				}
				if ok {
					row[name] = t
				}

			case numericColumns[name]:
				v, ok, err := parseNumber(cell)
				if err != nil {
					return nil, &ParseError{Column: name, Line: line, Value: cell}
				}
				if ok {
					row[name] = v
				}

			default:
				row[name] = cell
			}
		}

		if v, ok := numericCell(row, ColSizeSqmt); ok {
			row[ColSizeSqft] = round2(v * SqftPerSqmt)
		}

		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}
