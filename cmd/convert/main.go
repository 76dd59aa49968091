// Command convert rewrites the raw transaction CSV as a Parquet file.
//
// Every cell is carried as an optional string; typing happens at load time in
// the server, not here. The output is the columnar source format the server
// accepts alongside the original CSV.
//
// Usage:
//
//	convert -in data/transactions.csv -out data/transactions.parquet
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/estatequery/estatequery/internal/dataset"
	"github.com/parquet-go/parquet-go"
)

// rawTransaction mirrors the raw export's 22 column headers. Fields are
// pointers so absent cells become Parquet nulls instead of empty strings.
type rawTransaction struct {
	Regis                    *string `parquet:"Regis,optional"`
	ProcedureValue           *string `parquet:"ProcedureValue,optional"`
	MasterProject            *string `parquet:"Master Project,optional"`
	MasterProjectLand        *string `parquet:"Master Project Land,optional"`
	Project                  *string `parquet:"Project,optional"`
	ProjectLnd               *string `parquet:"Project Lnd,optional"`
	BuildingNo               *string `parquet:"Building No,optional"`
	BuildingNameEn           *string `parquet:"BuildingNameEn,optional"`
	Size                     *string `parquet:"Size,optional"`
	UnitNumber               *string `parquet:"UnitNumber,optional"`
	DmSubNo                  *string `parquet:"DmSubNo,optional"`
	PropertyTypeEn           *string `parquet:"PropertyTypeEn,optional"`
	LandNumber               *string `parquet:"LandNumber,optional"`
	ProcedurePartyTypeNameEn *string `parquet:"ProcedurePartyTypeNameEn,optional"`
	NameEn                   *string `parquet:"NameEn,optional"`
	Mobile                   *string `parquet:"Mobile,optional"`
	ProcedureNameEn          *string `parquet:"ProcedureNameEn,optional"`
	CountryNameEn            *string `parquet:"CountryNameEn,optional"`
	IdNumber                 *string `parquet:"IdNumber,optional"`
	UaeIdNumber              *string `parquet:"UaeIdNumber,optional"`
	BirthDate                *string `parquet:"BirthDate,optional"`
}

func main() {
	in := flag.String("in", "", "input CSV file")
	out := flag.String("out", "", "output Parquet file")
	flag.Parse()

	if *in == "" || *out == "" {
		slog.Error("both -in and -out are required")
		flag.Usage()
		os.Exit(2)
	}

	slog.Info("reading csv", "path", *in)
	raw, err := dataset.ReadRawCSV(*in)
	if err != nil {
		slog.Error("read failed", "error", err)
		os.Exit(1)
	}

	records := make([]rawTransaction, len(raw.Rows))
	for i, row := range raw.Rows {
		records[i] = rawTransaction{
			Regis:                    cell(row, "Regis"),
			ProcedureValue:           cell(row, "ProcedureValue"),
			MasterProject:            cell(row, "Master Project"),
			MasterProjectLand:        cell(row, "Master Project Land"),
			Project:                  cell(row, "Project"),
			ProjectLnd:               cell(row, "Project Lnd"),
			BuildingNo:               cell(row, "Building No"),
			BuildingNameEn:           cell(row, "BuildingNameEn"),
			Size:                     cell(row, "Size"),
			UnitNumber:               cell(row, "UnitNumber"),
			DmSubNo:                  cell(row, "DmSubNo"),
			PropertyTypeEn:           cell(row, "PropertyTypeEn"),
			LandNumber:               cell(row, "LandNumber"),
			ProcedurePartyTypeNameEn: cell(row, "ProcedurePartyTypeNameEn"),
			NameEn:                   cell(row, "NameEn"),
			Mobile:                   cell(row, "Mobile"),
			ProcedureNameEn:          cell(row, "ProcedureNameEn"),
			CountryNameEn:            cell(row, "CountryNameEn"),
			IdNumber:                 cell(row, "IdNumber"),
			UaeIdNumber:              cell(row, "UaeIdNumber"),
			BirthDate:                cell(row, "BirthDate"),
		}
	}

	slog.Info("writing parquet", "path", *out, "rows", len(records))
	if err := parquet.WriteFile(*out, records); err != nil {
		slog.Error("write failed", "error", err)
		os.Exit(1)
	}

	slog.Info("done")
}

// cell returns the row's raw string for a header, or nil when absent.
func cell(row dataset.Row, header string) *string {
	v, ok := row[header].(string)
	if !ok {
		return nil
	}
	return &v
}
