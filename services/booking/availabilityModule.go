package booking

import "crownbeauty/models"

// AvailabilityProvider decides which days and times the wizard may offer.
// StaticAvailability is the reference implementation; a scheduling backend
// can replace it without touching the wizard.
type AvailabilityProvider interface {
	CalendarGrid() []models.CalendarCell
	TimeSlots() []string
	IsDayBookable(day int) bool
	IsTimeSlot(slot string) bool
}

const calendarCells = 35

// DefaultUnavailableDays mocks holidays and closed days.
var DefaultUnavailableDays = []int{1, 7, 8, 14, 21, 28}

// DefaultTimeSlots are the half-hour starts across business hours.
var DefaultTimeSlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
	"1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM",
	"3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM",
	"5:00 PM", "5:30 PM",
}

// BuildCalendarGrid lays a month of monthLength days into a fixed 35-cell
// grid where cell i shows day i-leadingPadding; cells whose day falls outside
// 1..monthLength are padding. Days in unavailable, and every padding cell, are
// not bookable. No real calendar arithmetic is involved.
func BuildCalendarGrid(monthLength, leadingPadding int, unavailable []int) []models.CalendarCell {
	closed := make(map[int]bool, len(unavailable))
	for _, d := range unavailable {
		closed[d] = true
	}

	cells := make([]models.CalendarCell, calendarCells)
	for i := range cells {
		day := i - leadingPadding
		if day < 1 || day > monthLength {
			continue
		}
		d := day
		cells[i] = models.CalendarCell{Day: &d, Available: !closed[day]}
	}
	return cells
}

// StaticAvailability serves a fixed grid and slot list.
type StaticAvailability struct {
	grid  []models.CalendarCell
	slots []string
	open  map[int]bool
}

// NewStaticAvailability builds the reference mock: 28 days, two padding cells,
// DefaultUnavailableDays closed and DefaultTimeSlots every open day.
func NewStaticAvailability() *StaticAvailability {
	return NewStaticAvailabilityFrom(BuildCalendarGrid(28, 2, DefaultUnavailableDays), DefaultTimeSlots)
}

func NewStaticAvailabilityFrom(grid []models.CalendarCell, slots []string) *StaticAvailability {
	open := make(map[int]bool)
	for _, c := range grid {
		if c.Day != nil && c.Available {
			open[*c.Day] = true
		}
	}
	return &StaticAvailability{grid: grid, slots: slots, open: open}
}

func (a *StaticAvailability) CalendarGrid() []models.CalendarCell {
	out := make([]models.CalendarCell, len(a.grid))
	copy(out, a.grid)
	return out
}

func (a *StaticAvailability) TimeSlots() []string {
	out := make([]string, len(a.slots))
	copy(out, a.slots)
	return out
}

func (a *StaticAvailability) IsDayBookable(day int) bool {
	return a.open[day]
}

func (a *StaticAvailability) IsTimeSlot(slot string) bool {
	for _, s := range a.slots {
		if s == slot {
			return true
		}
	}
	return false
}
