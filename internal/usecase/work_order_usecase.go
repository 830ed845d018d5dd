package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrWorkOrderNotFound        = errors.New("work order not found")
	ErrWorkOrderAlreadyExists   = errors.New("work order already exists")
	ErrInvalidWorkOrderID       = errors.New("invalid work order id")
	ErrInvalidWorkOrderStatus   = errors.New("invalid work order status")
	ErrWorkOrderItemNotFound    = errors.New("work order item not found")
	ErrTrackingCodeNotFound     = errors.New("tracking code not found")
	ErrTrackingCodeAlreadyInUse = errors.New("tracking code already in use")
)

const (
	DefaultTechnician = "Chefe de Oficina"

	trackingCodeLength   = 6
	trackingCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	maxGenerateAttempts  = 20
)

type WorkOrderItemDraft struct {
	ID          string
	Description string
	Quantity    int     `validate:"gte=0"`
	UnitPrice   float64 `validate:"gte=0"`
	Type        entities.WorkOrderItemType
}

// WorkOrderDraft is the workshop intake form (client, vehicle, checklist, items).
// ID and TrackingCode are generated when empty.
type WorkOrderDraft struct {
	ID           string
	TrackingCode string
	ClientName   string `validate:"required"`
	ClientPhone  string
	ClientEmail  string `validate:"omitempty,email"`
	Vehicle      string `validate:"required"`
	Plate        string `validate:"required"`
	Km           int    `validate:"gte=0"`
	Status       entities.WorkOrderStatus
	Items        []WorkOrderItemDraft `validate:"dive"`
	Checklist    *entities.WorkOrderChecklist
	Technician   string
	StartDate    string `validate:"omitempty,datetime=2006-01-02"`
	Notes        string
}

// IWorkOrderUseCase exposes the workshop (OS) operations and public tracking.
//
// Status changes are unrestricted: any status can follow any other.
type IWorkOrderUseCase interface {
	Create(ctx context.Context, draft WorkOrderDraft) (entities.WorkOrder, error)
	Replace(ctx context.Context, id string, draft WorkOrderDraft) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error)
	AddItem(ctx context.Context, id string, draft WorkOrderItemDraft) (entities.WorkOrder, error)
	UpdateItem(ctx context.Context, id, itemID string, draft WorkOrderItemDraft) (entities.WorkOrder, error)
	RemoveItem(ctx context.Context, id, itemID string) (entities.WorkOrder, error)
	Track(ctx context.Context, code string) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo interfaces.IWorkOrderRepository
	now  Clock
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, now Clock) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, now: orSystemClock(now)}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, draft WorkOrderDraft) (entities.WorkOrder, error) {
	o, err := u.build(draft, newItem)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	if o.ID == "" {
		if o.ID, err = u.newWorkOrderID(ctx); err != nil {
			return entities.WorkOrder{}, err
		}
	} else if existing, err := u.repo.GetByID(ctx, o.ID); err != nil {
		return entities.WorkOrder{}, err
	} else if existing.ID != "" {
		return entities.WorkOrder{}, ErrWorkOrderAlreadyExists
	}

	if o.TrackingCode == "" {
		if o.TrackingCode, err = u.newTrackingCode(ctx); err != nil {
			return entities.WorkOrder{}, err
		}
	} else if err := u.ensureTrackingCodeFree(ctx, o.TrackingCode, ""); err != nil {
		return entities.WorkOrder{}, err
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[workshop][usecase] create failed id=%s err=%v", o.ID, err)
		return entities.WorkOrder{}, err
	}
	log.Printf("[workshop][usecase] work order opened id=%s tracking_code=%s status=%s", created.ID, created.TrackingCode, created.Status)
	return created, nil
}

// Replace overwrites a work order with the edited form, keeping its id and,
// unless the form sets one, its tracking code.
func (u *WorkOrderUseCase) Replace(ctx context.Context, id string, draft WorkOrderDraft) (entities.WorkOrder, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	o, err := u.build(draft, buildItem)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	o.ID = current.ID
	if o.TrackingCode == "" {
		o.TrackingCode = current.TrackingCode
	} else if err := u.ensureTrackingCodeFree(ctx, o.TrackingCode, current.ID); err != nil {
		return entities.WorkOrder{}, err
	}
	if strings.TrimSpace(draft.StartDate) == "" {
		o.StartDate = current.StartDate
	}
	return u.save(ctx, o)
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return o, nil
}

func (u *WorkOrderUseCase) List(ctx context.Context) ([]entities.WorkOrder, error) {
	return u.repo.List(ctx)
}

func (u *WorkOrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWorkOrderID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrWorkOrderNotFound
	}
	return nil
}

// SetStatus assigns any known status. Moving backwards (e.g. Entregue ->
// Diagnóstico) is allowed.
func (u *WorkOrderUseCase) SetStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
	if !status.IsValid() {
		return entities.WorkOrder{}, ErrInvalidWorkOrderStatus
	}
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	previous := o.Status
	o.Status = status
	updated, err := u.save(ctx, o)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	log.Printf("[workshop][usecase] status changed id=%s from=%q to=%q", updated.ID, previous, updated.Status)
	return updated, nil
}

func (u *WorkOrderUseCase) AddItem(ctx context.Context, id string, draft WorkOrderItemDraft) (entities.WorkOrder, error) {
	item, err := newItem(draft)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	o.Items = append(slices.Clone(o.Items), item)
	return u.save(ctx, o)
}

func (u *WorkOrderUseCase) UpdateItem(ctx context.Context, id, itemID string, draft WorkOrderItemDraft) (entities.WorkOrder, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	idx := o.FindItem(strings.TrimSpace(itemID))
	if idx < 0 {
		return entities.WorkOrder{}, ErrWorkOrderItemNotFound
	}
	draft.ID = o.Items[idx].ID
	item, err := buildItem(draft)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	o.Items = slices.Clone(o.Items)
	o.Items[idx] = item
	return u.save(ctx, o)
}

func (u *WorkOrderUseCase) RemoveItem(ctx context.Context, id, itemID string) (entities.WorkOrder, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	idx := o.FindItem(strings.TrimSpace(itemID))
	if idx < 0 {
		return entities.WorkOrder{}, ErrWorkOrderItemNotFound
	}
	o.Items = slices.Delete(slices.Clone(o.Items), idx, idx+1)
	return u.save(ctx, o)
}

// Track resolves a public tracking code, ignoring case. An empty code is
// reported as not found.
func (u *WorkOrderUseCase) Track(ctx context.Context, code string) (entities.WorkOrder, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.WorkOrder{}, ErrTrackingCodeNotFound
	}
	o, err := u.repo.GetByTrackingCode(ctx, code)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.ID == "" {
		return entities.WorkOrder{}, ErrTrackingCodeNotFound
	}
	return o, nil
}

func (u *WorkOrderUseCase) save(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return updated, nil
}

// build turns a draft into a work order; item lines go through itemOf.
func (u *WorkOrderUseCase) build(draft WorkOrderDraft, itemOf func(WorkOrderItemDraft) (entities.WorkOrderItem, error)) (entities.WorkOrder, error) {
	draft.ClientName = strings.TrimSpace(draft.ClientName)
	draft.ClientEmail = strings.TrimSpace(draft.ClientEmail)
	draft.Vehicle = strings.TrimSpace(draft.Vehicle)
	draft.Plate = strings.TrimSpace(draft.Plate)
	draft.StartDate = strings.TrimSpace(draft.StartDate)
	if err := validateDraft(draft); err != nil {
		return entities.WorkOrder{}, err
	}

	status := draft.Status
	if status == "" {
		status = entities.WorkOrderStatusDiagnostico
	}
	if !status.IsValid() {
		return entities.WorkOrder{}, ErrInvalidWorkOrderStatus
	}

	checklist := entities.DefaultChecklist()
	if draft.Checklist != nil {
		checklist = *draft.Checklist
	}

	items := make([]entities.WorkOrderItem, 0, len(draft.Items))
	for _, d := range draft.Items {
		it, err := itemOf(d)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		items = append(items, it)
	}

	return entities.WorkOrder{
		ID:           strings.TrimSpace(draft.ID),
		TrackingCode: strings.TrimSpace(draft.TrackingCode),
		ClientName:   draft.ClientName,
		ClientPhone:  strings.TrimSpace(draft.ClientPhone),
		ClientEmail:  draft.ClientEmail,
		Vehicle:      draft.Vehicle,
		Plate:        draft.Plate,
		Km:           draft.Km,
		Status:       status,
		Items:        items,
		Checklist:    checklist,
		Technician:   firstNonEmpty(draft.Technician, DefaultTechnician),
		StartDate:    firstNonEmpty(draft.StartDate, u.now().Format(dateLayout)),
		Notes:        strings.TrimSpace(draft.Notes),
	}, nil
}

// newItem is a freshly added line: a zero quantity means one unit.
func newItem(d WorkOrderItemDraft) (entities.WorkOrderItem, error) {
	if d.Quantity == 0 {
		d.Quantity = 1
	}
	return buildItem(d)
}

// buildItem keeps the quantity as given (0 drops the line out of the total)
// and defaults the type to Serviço.
func buildItem(d WorkOrderItemDraft) (entities.WorkOrderItem, error) {
	if err := validateDraft(d); err != nil {
		return entities.WorkOrderItem{}, err
	}
	if d.Type == "" {
		d.Type = entities.WorkOrderItemServico
	}
	if !d.Type.IsValid() {
		return entities.WorkOrderItem{}, fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, d.Type)
	}
	return entities.WorkOrderItem{
		ID:          firstNonEmpty(d.ID, uuid.NewString()),
		Description: strings.TrimSpace(d.Description),
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		Type:        d.Type,
	}, nil
}

// newWorkOrderID draws OS-1000..OS-9999 and retries on collision. When the
// space is crowded it falls back to a uuid suffix.
func (u *WorkOrderUseCase) newWorkOrderID(ctx context.Context) (string, error) {
	for i := 0; i < maxGenerateAttempts; i++ {
		id := "OS-" + strconv.Itoa(1000+rand.IntN(9000))
		existing, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		if existing.ID == "" {
			return id, nil
		}
	}
	return "OS-" + strings.ToUpper(uuid.NewString()[:8]), nil
}

// newTrackingCode draws a 6 character upper-case base-36 code not used by any
// other work order.
func (u *WorkOrderUseCase) newTrackingCode(ctx context.Context) (string, error) {
	for i := 0; i < maxGenerateAttempts; i++ {
		code := randomTrackingCode()
		if err := u.ensureTrackingCodeFree(ctx, code, ""); err == nil {
			return code, nil
		} else if !errors.Is(err, ErrTrackingCodeAlreadyInUse) {
			return "", err
		}
	}
	return "", ErrTrackingCodeAlreadyInUse
}

func (u *WorkOrderUseCase) ensureTrackingCodeFree(ctx context.Context, code, ownerID string) error {
	existing, err := u.repo.GetByTrackingCode(ctx, code)
	if err != nil {
		return err
	}
	if existing.ID != "" && existing.ID != ownerID {
		return ErrTrackingCodeAlreadyInUse
	}
	return nil
}

func randomTrackingCode() string {
	b := make([]byte, trackingCodeLength)
	for i := range b {
		b[i] = trackingCodeAlphabet[rand.IntN(len(trackingCodeAlphabet))]
	}
	return string(b)
}
