package interfaces

import (
	"io"

	"arton_garage/internal/domain/entities"
)

// ILedgerExporter renders the finance ledger into a downloadable document.
type ILedgerExporter interface {
	ContentType() string
	Export(w io.Writer, records []entities.FinancialRecord) error
}
