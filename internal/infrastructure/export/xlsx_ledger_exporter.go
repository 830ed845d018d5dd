// Package export renders the finance ledger as a spreadsheet.
package export

import (
	"io"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	LedgerSheet     = "Financeiro"
)

var ledgerHeadings = []string{"Data", "Tipo", "Categoria", "Descrição", "Valor"}

var recordTypeLabels = map[entities.FinancialRecordType]string{
	entities.FinancialRecordInflow:  "Entrada",
	entities.FinancialRecordOutflow: "Saída",
}

type XLSXLedgerExporter struct{}

var _ interfaces.ILedgerExporter = XLSXLedgerExporter{}

func (XLSXLedgerExporter) ContentType() string {
	return XLSXContentType
}

// Export writes one row per record followed by inflow, outflow and balance
// totals. Outflows are written as negative values.
func (XLSXLedgerExporter) Export(w io.Writer, records []entities.FinancialRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", LedgerSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(LedgerSheet, "A1", &ledgerHeadings); err != nil {
		return err
	}

	in, out := decimal.Zero, decimal.Zero
	for i, r := range records {
		amount := decimal.NewFromFloat(r.Amount)
		signed := amount
		if r.Type == entities.FinancialRecordOutflow {
			signed = amount.Neg()
			out = out.Add(amount)
		} else {
			in = in.Add(amount)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{r.Date, recordTypeLabels[r.Type], r.Category, r.Description, signed.InexactFloat64()}
		if err := f.SetSheetRow(LedgerSheet, cell, &row); err != nil {
			return err
		}
	}

	totals := [][]any{
		{"Total entradas", in.InexactFloat64()},
		{"Total saídas", out.InexactFloat64()},
		{"Saldo", in.Sub(out).InexactFloat64()},
	}
	first := len(records) + 3
	for i, t := range totals {
		label, err := excelize.CoordinatesToCellName(4, first+i)
		if err != nil {
			return err
		}
		row := t
		if err := f.SetSheetRow(LedgerSheet, label, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(LedgerSheet, "A", "C", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(LedgerSheet, "D", "D", 42); err != nil {
		return err
	}
	return f.Write(w)
}
