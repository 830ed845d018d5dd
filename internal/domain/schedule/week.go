package schedule

import (
	"time"

	"arton_garage/internal/domain/entities"
)

// DateLayout is the calendar date format stored in Appointment.Date.
const DateLayout = "2006-01-02"

// Days are the bookable weekdays, Monday first. Sunday is closed.
var Days = []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"}

// Times are the bookable slots. There is no 13:00 slot (lunch break).
var Times = []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}

func IsDay(day string) bool {
	return dayIndex(day) >= 0
}

func IsTime(slot string) bool {
	for _, t := range Times {
		if t == slot {
			return true
		}
	}
	return false
}

func dayIndex(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return -1
}

// MondayOf returns midnight of the most recent Monday on or before t.
// Sunday belongs to the week that started six days earlier.
func MondayOf(t time.Time) time.Time {
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// Week is a calendar week anchored on its Monday. Build it once per request so
// every cell is resolved against the same "now".
type Week struct {
	Monday time.Time
}

func NewWeek(now time.Time) Week {
	return Week{Monday: MondayOf(now)}
}

// DayDate returns the YYYY-MM-DD date of a weekday label, or "" for an unknown label.
func (w Week) DayDate(day string) string {
	i := dayIndex(day)
	if i < 0 {
		return ""
	}
	return w.Monday.AddDate(0, 0, i).Format(DateLayout)
}

type DayHeader struct {
	Day  string `json:"day"`
	Date string `json:"date"`
}

// Cell is one (day, time) slot of the grid. Appointment is nil for a free slot.
type Cell struct {
	Day         string                `json:"day"`
	Date        string                `json:"date"`
	Time        string                `json:"time"`
	Appointment *entities.Appointment `json:"appointment,omitempty"`
	LeadName    string                `json:"lead_name,omitempty"`
	ServiceName string                `json:"service_name,omitempty"`
	CanAdd      bool                  `json:"can_add"`
}

type Row struct {
	Time  string `json:"time"`
	Cells []Cell `json:"cells"`
}

type Grid struct {
	Monday string      `json:"monday"`
	Days   []DayHeader `json:"days"`
	Rows   []Row       `json:"rows"`
}

// Grid lays appointments out by time (rows) and day (columns). Each cell shows
// the first appointment matching its date and time; lead and service names are
// resolved when present.
func (w Week) Grid(appointments []entities.Appointment, leads []entities.Lead, services []entities.Service) Grid {
	leadNames := make(map[string]string, len(leads))
	for _, l := range leads {
		leadNames[l.ID] = l.Name
	}
	serviceNames := make(map[string]string, len(services))
	for _, s := range services {
		serviceNames[s.ID] = s.Name
	}

	g := Grid{
		Monday: w.Monday.Format(DateLayout),
		Days:   make([]DayHeader, 0, len(Days)),
		Rows:   make([]Row, 0, len(Times)),
	}
	dates := make([]string, len(Days))
	for i, day := range Days {
		dates[i] = w.DayDate(day)
		g.Days = append(g.Days, DayHeader{Day: day, Date: dates[i]})
	}

	for _, slot := range Times {
		row := Row{Time: slot, Cells: make([]Cell, 0, len(Days))}
		for i, day := range Days {
			cell := Cell{Day: day, Date: dates[i], Time: slot}
			if appt := findAppointment(appointments, dates[i], slot); appt != nil {
				cell.Appointment = appt
				cell.LeadName = leadNames[appt.LeadID]
				cell.ServiceName = serviceNames[appt.ServiceID]
			} else {
				cell.CanAdd = true
			}
			row.Cells = append(row.Cells, cell)
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}

func findAppointment(appointments []entities.Appointment, date, slot string) *entities.Appointment {
	for i := range appointments {
		if appointments[i].Date == date && appointments[i].Time == slot {
			a := appointments[i]
			return &a
		}
	}
	return nil
}
