package usecase

import (
	"context"
	"errors"
	"strings"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidServiceID = errors.New("invalid service id")
)

type ServiceDraft struct {
	Name        string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Duration    string
	Description string
}

type IServiceUseCase interface {
	List(ctx context.Context) ([]entities.Service, error)
	Create(ctx context.Context, draft ServiceDraft) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

func (u *ServiceUseCase) List(ctx context.Context) ([]entities.Service, error) {
	return u.repo.List(ctx)
}

func (u *ServiceUseCase) Create(ctx context.Context, draft ServiceDraft) (entities.Service, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if err := validateDraft(draft); err != nil {
		return entities.Service{}, err
	}
	return u.repo.Create(ctx, entities.Service{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Price:       draft.Price,
		Duration:    strings.TrimSpace(draft.Duration),
		Description: strings.TrimSpace(draft.Description),
	})
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrServiceNotFound
	}
	return nil
}
