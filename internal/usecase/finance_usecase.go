package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrFinancialRecordNotFound  = errors.New("financial record not found")
	ErrInvalidFinancialRecordID = errors.New("invalid financial record id")
	ErrLedgerExporterMissing    = errors.New("ledger exporter not configured")
)

// DefaultLedgerCategory is the category preselected for new ledger entries.
const DefaultLedgerCategory = "Serviço"

type FinancialRecordDraft struct {
	Type        entities.FinancialRecordType
	Category    string
	Amount      float64 `validate:"gt=0"`
	Date        string  `validate:"omitempty,datetime=2006-01-02"`
	Description string  `validate:"required"`
}

// LedgerSummary totals the ledger. Balance = inflow - outflow.
type LedgerSummary struct {
	TotalInflow  float64 `json:"total_inflow"`
	TotalOutflow float64 `json:"total_outflow"`
	Balance      float64 `json:"balance"`
}

// SummarizeLedger sums inflow and outflow amounts with decimal arithmetic.
func SummarizeLedger(records []entities.FinancialRecord) LedgerSummary {
	in, out := decimal.Zero, decimal.Zero
	for _, r := range records {
		amount := decimal.NewFromFloat(r.Amount)
		switch r.Type {
		case entities.FinancialRecordInflow:
			in = in.Add(amount)
		case entities.FinancialRecordOutflow:
			out = out.Add(amount)
		}
	}
	return LedgerSummary{
		TotalInflow:  in.InexactFloat64(),
		TotalOutflow: out.InexactFloat64(),
		Balance:      in.Sub(out).InexactFloat64(),
	}
}

type IFinanceUseCase interface {
	List(ctx context.Context) ([]entities.FinancialRecord, error)
	Summary(ctx context.Context) (LedgerSummary, error)
	Create(ctx context.Context, draft FinancialRecordDraft) (entities.FinancialRecord, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, w io.Writer) error
	ExportContentType() string
}

type FinanceUseCase struct {
	repo     interfaces.IFinancialRecordRepository
	exporter interfaces.ILedgerExporter
	now      Clock
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(repo interfaces.IFinancialRecordRepository, exporter interfaces.ILedgerExporter, now Clock) *FinanceUseCase {
	return &FinanceUseCase{repo: repo, exporter: exporter, now: orSystemClock(now)}
}

func (u *FinanceUseCase) List(ctx context.Context) ([]entities.FinancialRecord, error) {
	return u.repo.List(ctx)
}

func (u *FinanceUseCase) Summary(ctx context.Context) (LedgerSummary, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return LedgerSummary{}, err
	}
	return SummarizeLedger(records), nil
}

// Create adds a ledger entry. Type defaults to inflow, category to "Serviço" and
// date to today.
func (u *FinanceUseCase) Create(ctx context.Context, draft FinancialRecordDraft) (entities.FinancialRecord, error) {
	draft.Date = strings.TrimSpace(draft.Date)
	draft.Description = strings.TrimSpace(draft.Description)
	if err := validateDraft(draft); err != nil {
		return entities.FinancialRecord{}, err
	}
	if draft.Type == "" {
		draft.Type = entities.FinancialRecordInflow
	}
	if !draft.Type.IsValid() {
		return entities.FinancialRecord{}, fmt.Errorf("%w: unknown record type %q", ErrInvalidInput, draft.Type)
	}

	r := entities.FinancialRecord{
		ID:          uuid.NewString(),
		Type:        draft.Type,
		Category:    firstNonEmpty(draft.Category, DefaultLedgerCategory),
		Amount:      draft.Amount,
		Date:        firstNonEmpty(draft.Date, u.now().Format(dateLayout)),
		Description: draft.Description,
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[finance][usecase] create failed err=%v", err)
		return entities.FinancialRecord{}, err
	}
	log.Printf("[finance][usecase] record created id=%s type=%s amount=%.2f", created.ID, created.Type, created.Amount)
	return created, nil
}

func (u *FinanceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidFinancialRecordID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrFinancialRecordNotFound
	}
	return nil
}

// Export writes the whole ledger, newest first, with the configured exporter.
func (u *FinanceUseCase) Export(ctx context.Context, w io.Writer) error {
	if u.exporter == nil {
		return ErrLedgerExporterMissing
	}
	records, err := u.repo.List(ctx)
	if err != nil {
		return err
	}
	return u.exporter.Export(w, records)
}

func (u *FinanceUseCase) ExportContentType() string {
	if u.exporter == nil {
		return ""
	}
	return u.exporter.ContentType()
}
