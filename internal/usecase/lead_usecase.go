package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLeadID     = errors.New("invalid lead id")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
)

// DefaultLeadInterest is used when a public form does not say what the visitor wants.
const DefaultLeadInterest = "Test Drive Performance"

// LeadDraft is the public form payload for a new lead.
type LeadDraft struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
	Vehicle  string
	Interest string
}

// ILeadUseCase covers lead capture (public forms) and the CRM.
type ILeadUseCase interface {
	AddLead(ctx context.Context, draft LeadDraft) (entities.Lead, error)
	AddProductInterest(ctx context.Context, productID string, draft LeadDraft) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
	Delete(ctx context.Context, id string) error
}

type LeadUseCase struct {
	repo     interfaces.ILeadRepository
	products interfaces.IProductRepository
	now      Clock
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository, products interfaces.IProductRepository, now Clock) *LeadUseCase {
	return &LeadUseCase{repo: repo, products: products, now: orSystemClock(now)}
}

// AddLead stores a new lead with a fresh id, status Novo and the submission time.
// The lead becomes the first element of the collection.
func (u *LeadUseCase) AddLead(ctx context.Context, draft LeadDraft) (entities.Lead, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Email = strings.TrimSpace(draft.Email)
	draft.Phone = strings.TrimSpace(draft.Phone)
	if err := validateDraft(draft); err != nil {
		return entities.Lead{}, err
	}

	lead := entities.Lead{
		ID:        uuid.NewString(),
		Name:      draft.Name,
		Email:     draft.Email,
		Phone:     draft.Phone,
		Vehicle:   strings.TrimSpace(draft.Vehicle),
		Interest:  firstNonEmpty(draft.Interest, DefaultLeadInterest),
		Status:    entities.LeadStatusNovo,
		CreatedAt: u.now().UTC(),
	}
	created, err := u.repo.Create(ctx, lead)
	if err != nil {
		log.Printf("[lead][usecase] create failed err=%v", err)
		return entities.Lead{}, err
	}
	log.Printf("[lead][usecase] lead captured lead_id=%s interest=%q", created.ID, created.Interest)
	return created, nil
}

// AddProductInterest captures a lead from a product page. Vehicle and interest
// are derived from the product.
func (u *LeadUseCase) AddProductInterest(ctx context.Context, productID string, draft LeadDraft) (entities.Lead, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Lead{}, ErrInvalidProductID
	}
	p, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return entities.Lead{}, err
	}
	if p.ID == "" {
		return entities.Lead{}, ErrProductNotFound
	}

	draft.Vehicle = fmt.Sprintf("%s %s", p.Brand, p.Name)
	draft.Interest = fmt.Sprintf("Interesse em Compra: %s", p.Category)
	return u.AddLead(ctx, draft)
}

func (u *LeadUseCase) List(ctx context.Context) ([]entities.Lead, error) {
	return u.repo.List(ctx)
}

// UpdateStatus moves a lead to any CRM status; there is no pipeline order.
func (u *LeadUseCase) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	if !status.IsValid() {
		return entities.Lead{}, ErrInvalidLeadStatus
	}

	lead, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}

	lead.Status = status
	updated, err := u.repo.Update(ctx, lead)
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return updated, nil
}

// Delete removes the lead only. Appointments that reference it are left in place.
func (u *LeadUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLeadID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrLeadNotFound
	}
	return nil
}
