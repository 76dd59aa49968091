package dataset

// search.go implements the four search modes over the canonical table.
//
// All four are stateless, pure reads: they build new filtered views and never
// touch the source table. Matching is case-sensitive exact equality on the
// declared key columns, with two deliberate exceptions called out below
// (the ID search ORs two identity columns; unit numbers match by suffix).
// An empty result is a normal outcome, never an error.

import "strings"

// identityColumns are the five alternative property-identity columns checked
// by SearchByProperty. building_no is intentionally not one of them; that
// matches the shipped behavior even though building_name_en is included.
var identityColumns = []string{
	ColMasterProject,
	ColMasterProjectLand,
	ColProject,
	ColProjectLand,
	ColBuildingNameEn,
}

// PropertyFilters carries the optional refinements for SearchByProperty.
// A nil pointer or empty string disables that filter.
type PropertyFilters struct {
	// SizeSqmt filters on exact numeric equality with size_sqmt.
	SizeSqmt *float64

	// SizeSqft filters on exact numeric equality with size_sqft. The column
	// is derived with 2-decimal rounding, so an independently computed value
	// may never match; that is the documented behavior, not a defect.
	SizeSqft *float64

	// TransactionDate is parsed with the same layouts used at load time and
	// compared by exact equality to reg_date.
	TransactionDate string

	// UnitNumber matches rows whose unit_number ends with this text.
	UnitNumber string
}

// SearchByName returns the rows whose name_en equals name exactly.
// No trimming or case folding is applied to either side.
func SearchByName(t *Table, name string) (*Table, error) {
	if name == "" {
		return nil, &InvalidInputError{Field: "name", Reason: "no name entered"}
	}
	return t.filter(func(r Row) bool {
		v, ok := stringCell(r, ColNameEn)
		return ok && v == name
	}), nil
}

// SearchByID returns the rows where either identity column matches id:
// id_number or uae_id_number.
func SearchByID(t *Table, id string) (*Table, error) {
	if id == "" {
		return nil, &InvalidInputError{Field: "id", Reason: "no ID entered"}
	}
	return t.filter(func(r Row) bool {
		if v, ok := stringCell(r, ColIDNumber); ok && v == id {
			return true
		}
		v, ok := stringCell(r, ColUaeIDNumber)
		return ok && v == id
	}), nil
}

// SearchByPhone returns the rows whose mobile equals phone exactly.
// No number-format normalization is applied: "971-50-1112233" and
// "+971501112233" are distinct keys.
func SearchByPhone(t *Table, phone string) (*Table, error) {
	if phone == "" {
		return nil, &InvalidInputError{Field: "phone", Reason: "no phone number entered"}
	}
	return t.filter(func(r Row) bool {
		v, ok := stringCell(r, ColMobile)
		return ok && v == phone
	}), nil
}

// SearchByProperty runs the two-stage property search.
//
// The identity stage keeps rows where name equals any of the five property
// identity columns. Each enabled refinement then narrows the surviving subset
// in fixed order: size_sqmt, size_sqft, transaction date, unit number suffix.
// A malformed date filter aborts the whole search with *InvalidInputError
// rather than being skipped, so the result set is never misleadingly broad.
func SearchByProperty(t *Table, name string, f PropertyFilters) (*Table, error) {
	if name == "" {
		return nil, &InvalidInputError{Field: "property name", Reason: "no property name entered"}
	}

	matches := t.filter(func(r Row) bool {
		for _, col := range identityColumns {
			if v, ok := stringCell(r, col); ok && v == name {
				return true
			}
		}
		return false
	})

	if f.SizeSqmt != nil {
		want := *f.SizeSqmt
		matches = matches.filter(func(r Row) bool {
			v, ok := numericCell(r, ColSizeSqmt)
			return ok && v == want
		})
	}

	if f.SizeSqft != nil {
		want := *f.SizeSqft
		matches = matches.filter(func(r Row) bool {
			v, ok := numericCell(r, ColSizeSqft)
			return ok && v == want
		})
	}

	if f.TransactionDate != "" {
		want, ok, err := parseDate(f.TransactionDate)
		if err != nil || !ok {
			return nil, &InvalidInputError{Field: "transaction date", Reason: "unrecognized date format"}
		}
		matches = matches.filter(func(r Row) bool {
			v, ok := timeCell(r, ColRegDate)
			return ok && v.Equal(want)
		})
	}

	if f.UnitNumber != "" {
		matches = matches.filter(func(r Row) bool {
			v, ok := r[ColUnitNumber]
			if !ok {
				return false
			}
			return strings.HasSuffix(cellText(v), f.UnitNumber)
		})
	}

	return matches, nil
}
