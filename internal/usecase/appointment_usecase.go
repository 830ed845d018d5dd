package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/domain/schedule"
	"arton_garage/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrInvalidAppointmentID = errors.New("invalid appointment id")
	ErrInvalidSlot          = errors.New("invalid calendar slot")
)

// AppointmentDraft is the booking form. Any lead, service, date and time is
// accepted: double-booking and past dates are not checked.
type AppointmentDraft struct {
	LeadID    string `validate:"required"`
	ServiceID string `validate:"required"`
	Date      string `validate:"required,datetime=2006-01-02"`
	Time      string `validate:"required,datetime=15:04"`
	Notes     string
}

type IAppointmentUseCase interface {
	List(ctx context.Context) ([]entities.Appointment, error)
	Week(ctx context.Context, reference string) (schedule.Grid, error)
	Create(ctx context.Context, draft AppointmentDraft) (entities.Appointment, error)
	QuickAddDraft(day, slot string) (AppointmentDraft, error)
	Delete(ctx context.Context, id string) error
}

type AppointmentUseCase struct {
	repo     interfaces.IAppointmentRepository
	leads    interfaces.ILeadRepository
	services interfaces.IServiceRepository
	now      Clock
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(repo interfaces.IAppointmentRepository, leads interfaces.ILeadRepository, services interfaces.IServiceRepository, now Clock) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, leads: leads, services: services, now: orSystemClock(now)}
}

func (u *AppointmentUseCase) List(ctx context.Context) ([]entities.Appointment, error) {
	return u.repo.List(ctx)
}

// Week builds the calendar grid of the week containing reference (YYYY-MM-DD),
// or of the current week when reference is empty. "Now" is read once.
func (u *AppointmentUseCase) Week(ctx context.Context, reference string) (schedule.Grid, error) {
	ref := u.now()
	if reference = strings.TrimSpace(reference); reference != "" {
		parsed, err := time.Parse(dateLayout, reference)
		if err != nil {
			return schedule.Grid{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
		ref = parsed
	}

	appts, err := u.repo.List(ctx)
	if err != nil {
		return schedule.Grid{}, err
	}
	leads, err := u.leads.List(ctx)
	if err != nil {
		return schedule.Grid{}, err
	}
	services, err := u.services.List(ctx)
	if err != nil {
		return schedule.Grid{}, err
	}

	return schedule.NewWeek(ref).Grid(bookingOrder(appts), leads, services), nil
}

func (u *AppointmentUseCase) Create(ctx context.Context, draft AppointmentDraft) (entities.Appointment, error) {
	draft.LeadID = strings.TrimSpace(draft.LeadID)
	draft.ServiceID = strings.TrimSpace(draft.ServiceID)
	draft.Date = strings.TrimSpace(draft.Date)
	draft.Time = strings.TrimSpace(draft.Time)
	if err := validateDraft(draft); err != nil {
		return entities.Appointment{}, err
	}
	return u.repo.Create(ctx, entities.Appointment{
		ID:        uuid.NewString(),
		LeadID:    draft.LeadID,
		ServiceID: draft.ServiceID,
		Date:      draft.Date,
		Time:      draft.Time,
		Notes:     strings.TrimSpace(draft.Notes),
	})
}

// QuickAddDraft prefills a booking from a clicked grid cell of the current week.
func (u *AppointmentUseCase) QuickAddDraft(day, slot string) (AppointmentDraft, error) {
	if !schedule.IsDay(day) || !schedule.IsTime(slot) {
		return AppointmentDraft{}, ErrInvalidSlot
	}
	return AppointmentDraft{
		Date: schedule.NewWeek(u.now()).DayDate(day),
		Time: slot,
	}, nil
}

func (u *AppointmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAppointmentID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted.ID == "" {
		return ErrAppointmentNotFound
	}
	return nil
}

// bookingOrder reverses the newest-first repository order so that, when a slot
// is double-booked, the earliest booking is the one shown.
func bookingOrder(appts []entities.Appointment) []entities.Appointment {
	out := make([]entities.Appointment, len(appts))
	for i, a := range appts {
		out[len(appts)-1-i] = a
	}
	return out
}
