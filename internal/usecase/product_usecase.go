package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
)

// DefaultProductImage is used when a product is created without a picture.
const DefaultProductImage = "https://images.unsplash.com/photo-1558981403-c5f91cbba527?auto=format&fit=crop&q=80&w=800"

type ProductDraft struct {
	Name        string `validate:"required"`
	Brand       string `validate:"required"`
	Category    entities.ProductCategory
	Price       float64 `validate:"gte=0"`
	Image       string  `validate:"omitempty,url"`
	Description string
	Featured    bool
	Gallery     []string `validate:"omitempty,dive,url"`
	Specs       *entities.ProductSpecs
}

// ProductFilter is the storefront filter. An empty or "Tudo" category matches
// everything; Search matches name or brand, case-insensitively.
type ProductFilter struct {
	Category string
	Search   string
}

func (f ProductFilter) Matches(p entities.Product) bool {
	category := strings.TrimSpace(f.Category)
	if category != "" && category != string(entities.ProductCategoryAll) && string(p.Category) != category {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Brand), q)
}

type IProductUseCase interface {
	List(ctx context.Context, filter ProductFilter) ([]entities.Product, error)
	Featured(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Create(ctx context.Context, draft ProductDraft) (entities.Product, error)
	Replace(ctx context.Context, id string, draft ProductDraft) (entities.Product, error)
	ToggleFeatured(ctx context.Context, id string) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) List(ctx context.Context, filter ProductFilter) ([]entities.Product, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (u *ProductUseCase) Featured(ctx context.Context) ([]entities.Product, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) Create(ctx context.Context, draft ProductDraft) (entities.Product, error) {
	p, err := buildProduct(draft)
	if err != nil {
		return entities.Product{}, err
	}
	p.ID = uuid.NewString()
	return u.repo.Create(ctx, p)
}

func (u *ProductUseCase) Replace(ctx context.Context, id string, draft ProductDraft) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := buildProduct(draft)
	if err != nil {
		return entities.Product{}, err
	}
	p.ID = id
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return updated, nil
}

func (u *ProductUseCase) ToggleFeatured(ctx context.Context, id string) (entities.Product, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	p.Featured = !p.Featured
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return updated, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrProductNotFound
	}
	return nil
}

func buildProduct(draft ProductDraft) (entities.Product, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Brand = strings.TrimSpace(draft.Brand)
	draft.Image = strings.TrimSpace(draft.Image)
	if err := validateDraft(draft); err != nil {
		return entities.Product{}, err
	}
	if draft.Category == "" {
		draft.Category = entities.ProductCategoryMotos
	}
	if !draft.Category.IsValid() {
		return entities.Product{}, fmt.Errorf("%w: unknown product category %q", ErrInvalidInput, draft.Category)
	}
	if draft.Image == "" {
		draft.Image = DefaultProductImage
	}
	return entities.Product{
		Name:        draft.Name,
		Brand:       draft.Brand,
		Category:    draft.Category,
		Price:       draft.Price,
		Image:       draft.Image,
		Description: strings.TrimSpace(draft.Description),
		Featured:    draft.Featured,
		Gallery:     draft.Gallery,
		Specs:       draft.Specs,
	}, nil
}
