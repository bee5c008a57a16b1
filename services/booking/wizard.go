package booking

import (
	"strings"

	"crownbeauty/models"
)

// Wizard steps.
const (
	StepService    = 1
	StepDateTime   = 2
	StepTechnician = 3
	StepContact    = 4
)

// Phase names the wizard state exposed to clients.
type Phase string

const (
	PhaseService    Phase = "service"
	PhaseDateTime   Phase = "datetime"
	PhaseTechnician Phase = "technician"
	PhaseContact    Phase = "contact"
	PhaseSubmitted  Phase = "submitted"
)

// Event types accepted by Dispatch.
const (
	EventSelectCategory   = "selectCategory"
	EventSelectService    = "selectService"
	EventSelectDay        = "selectDay"
	EventSelectTime       = "selectTime"
	EventSelectTechnician = "selectTechnician"
	EventToggleAddOn      = "toggleAddOn"
	EventSetContactField  = "setContactField"
	EventAdvance          = "advance"
	EventRetreat          = "retreat"
	EventJumpTo           = "jumpTo"
	EventSubmit           = "submit"
	EventReset            = "reset"
)

// Contact fields accepted by SetContactField.
const (
	ContactName  = "name"
	ContactPhone = "phone"
	ContactEmail = "email"
	ContactNotes = "notes"
)

// WizardConfig is the static input shared by every wizard.
type WizardConfig struct {
	Availability   AvailabilityProvider
	AddOns         []models.AddOn
	Technicians    []models.Technician
	CurrencySymbol string
}

// DefaultWizardConfig wires the salon's static menus and mock calendar.
func DefaultWizardConfig() WizardConfig {
	return WizardConfig{
		Availability:   NewStaticAvailability(),
		AddOns:         DefaultAddOns,
		Technicians:    DefaultTechnicians,
		CurrencySymbol: "$",
	}
}

// Wizard drives the four-step booking flow over a BookingSelection.
//
// Every transition reports whether it changed anything. Invalid input (an id
// outside the catalog, an unavailable day, a skip-ahead) leaves the selection
// untouched; there is no error path. Once submitted, only Reset applies.
type Wizard struct {
	cfg     WizardConfig
	catalog []models.ServiceCategory
	sel     *models.BookingSelection
	summary *models.BookingSummary
}

// NewWizard wraps sel, which the wizard mutates in place. A nil sel starts a
// fresh selection.
func NewWizard(cfg WizardConfig, catalog []models.ServiceCategory, sel *models.BookingSelection) *Wizard {
	if sel == nil {
		fresh := models.NewBookingSelection()
		sel = &fresh
	}
	if sel.Step < StepService {
		sel.Step = StepService
	}
	if sel.Step > StepContact {
		sel.Step = StepContact
	}
	if sel.AddOnIDs == nil {
		sel.AddOnIDs = []string{}
	}
	if cfg.Availability == nil {
		cfg.Availability = NewStaticAvailability()
	}
	return &Wizard{cfg: cfg, catalog: catalog, sel: sel}
}

// Selection returns the wizard's current state.
func (w *Wizard) Selection() *models.BookingSelection { return w.sel }

// Summary is the snapshot built by the last effective Submit, if any.
func (w *Wizard) Summary() *models.BookingSummary { return w.summary }

// Phase maps the selection onto the wizard's states.
func (w *Wizard) Phase() Phase {
	if w.sel.Submitted {
		return PhaseSubmitted
	}
	switch w.sel.Step {
	case StepDateTime:
		return PhaseDateTime
	case StepTechnician:
		return PhaseTechnician
	case StepContact:
		return PhaseContact
	default:
		return PhaseService
	}
}

// StepComplete evaluates the completion predicate of step n.
func (w *Wizard) StepComplete(n int) bool {
	s := w.sel
	switch n {
	case StepService:
		return s.CategoryID != nil && s.ServiceKey != nil
	case StepDateTime:
		return s.Day != nil && s.Time != nil
	case StepTechnician:
		return s.Technician != nil
	case StepContact:
		return strings.TrimSpace(s.Contact.Name) != "" && strings.TrimSpace(s.Contact.Phone) != ""
	default:
		return false
	}
}

// CanAdvance reports whether Advance would move forward.
func (w *Wizard) CanAdvance() bool {
	return !w.sel.Submitted && w.sel.Step < StepContact && w.StepComplete(w.sel.Step)
}

// CanSubmit reports whether Submit would finalize the booking.
func (w *Wizard) CanSubmit() bool {
	if w.sel.Submitted || w.sel.Step != StepContact {
		return false
	}
	for n := StepService; n <= StepContact; n++ {
		if !w.StepComplete(n) {
			return false
		}
	}
	_, ok := w.SelectedService()
	return ok
}

// SelectedCategory resolves CategoryID against the session catalog.
func (w *Wizard) SelectedCategory() (*models.ServiceCategory, bool) {
	if w.sel.CategoryID == nil {
		return nil, false
	}
	return findCategory(w.catalog, *w.sel.CategoryID)
}

// SelectedService resolves ServiceKey within the selected category.
func (w *Wizard) SelectedService() (*models.Service, bool) {
	cat, ok := w.SelectedCategory()
	if !ok || w.sel.ServiceKey == nil {
		return nil, false
	}
	return cat.FindService(*w.sel.ServiceKey)
}

// ServicePrice is the first numeral of the selected service's price label.
func (w *Wizard) ServicePrice() int {
	svc, ok := w.SelectedService()
	if !ok {
		return 0
	}
	return FirstNumeralIn(svc.Price)
}

func (w *Wizard) AddOnTotal() int {
	return AddOnTotal(w.cfg.AddOns, w.sel.AddOnIDs)
}

func (w *Wizard) Total() int {
	return w.ServicePrice() + w.AddOnTotal()
}

// SelectCategory picks a category and clears the service choice.
func (w *Wizard) SelectCategory(id string) bool {
	if w.sel.Submitted {
		return false
	}
	cat, ok := findCategory(w.catalog, id)
	if !ok || len(cat.Services) == 0 {
		return false
	}
	id = cat.ID
	w.sel.CategoryID = &id
	w.sel.ServiceKey = nil
	return true
}

// SelectService picks a service of the selected category.
func (w *Wizard) SelectService(key string) bool {
	if w.sel.Submitted {
		return false
	}
	cat, ok := w.SelectedCategory()
	if !ok {
		return false
	}
	svc, ok := cat.FindService(key)
	if !ok {
		return false
	}
	key = svc.Key
	w.sel.ServiceKey = &key
	return true
}

func (w *Wizard) SelectDay(day int) bool {
	if w.sel.Submitted || !w.cfg.Availability.IsDayBookable(day) {
		return false
	}
	w.sel.Day = &day
	return true
}

func (w *Wizard) SelectTime(slot string) bool {
	if w.sel.Submitted || !w.cfg.Availability.IsTimeSlot(slot) {
		return false
	}
	w.sel.Time = &slot
	return true
}

func (w *Wizard) SelectTechnician(name string) bool {
	if w.sel.Submitted || !findTechnician(w.cfg.Technicians, name) {
		return false
	}
	w.sel.Technician = &name
	return true
}

// ToggleAddOn adds id when absent and removes it when present.
func (w *Wizard) ToggleAddOn(id string) bool {
	if w.sel.Submitted {
		return false
	}
	if _, ok := FindAddOn(w.cfg.AddOns, id); !ok {
		return false
	}
	for i, existing := range w.sel.AddOnIDs {
		if existing == id {
			w.sel.AddOnIDs = append(w.sel.AddOnIDs[:i:i], w.sel.AddOnIDs[i+1:]...)
			return true
		}
	}
	w.sel.AddOnIDs = append(w.sel.AddOnIDs, id)
	return true
}

// SetContactField assigns one contact field. Values are validated only by the
// step 4 predicate.
func (w *Wizard) SetContactField(field, value string) bool {
	if w.sel.Submitted {
		return false
	}
	switch field {
	case ContactName:
		w.sel.Contact.Name = value
	case ContactPhone:
		w.sel.Contact.Phone = value
	case ContactEmail:
		w.sel.Contact.Email = value
	case ContactNotes:
		w.sel.Contact.Notes = value
	default:
		return false
	}
	return true
}

func (w *Wizard) Advance() bool {
	if !w.CanAdvance() {
		return false
	}
	w.sel.Step++
	return true
}

func (w *Wizard) Retreat() bool {
	if w.sel.Submitted || w.sel.Step <= StepService {
		return false
	}
	w.sel.Step--
	return true
}

// JumpTo revisits an earlier step. Steps at or after the current one are
// refused so incomplete steps cannot be skipped.
func (w *Wizard) JumpTo(n int) bool {
	if w.sel.Submitted || n < StepService || n >= w.sel.Step {
		return false
	}
	w.sel.Step = n
	return true
}

// Submit finalizes the booking and snapshots the summary.
func (w *Wizard) Submit() bool {
	if !w.CanSubmit() {
		return false
	}
	cat, _ := w.SelectedCategory()
	svc, _ := w.SelectedService()

	addOns := make([]models.AddOn, 0, len(w.sel.AddOnIDs))
	for _, id := range w.sel.AddOnIDs {
		if a, ok := FindAddOn(w.cfg.AddOns, id); ok {
			addOns = append(addOns, a)
		}
	}

	total := w.Total()
	w.summary = &models.BookingSummary{
		CategoryID:    cat.ID,
		CategoryTitle: cat.Title,
		ServiceKey:    svc.Key,
		ServiceName:   svc.Name,
		ServicePrice:  w.ServicePrice(),
		Day:           *w.sel.Day,
		Time:          *w.sel.Time,
		Technician:    *w.sel.Technician,
		AddOns:        addOns,
		AddOnTotal:    w.AddOnTotal(),
		Total:         total,
		TotalLabel:    FormatPrice(w.cfg.CurrencySymbol, total),
		Contact: models.Contact{
			Name:  strings.TrimSpace(w.sel.Contact.Name),
			Phone: strings.TrimSpace(w.sel.Contact.Phone),
			Email: strings.TrimSpace(w.sel.Contact.Email),
			Notes: strings.TrimSpace(w.sel.Contact.Notes),
		},
	}
	w.sel.Submitted = true
	return true
}

// Reset clears every field, including the submitted flag.
func (w *Wizard) Reset() bool {
	*w.sel = models.NewBookingSelection()
	w.summary = nil
	return true
}

// Dispatch routes an event to its transition. Unknown types and events
// missing their argument are rejected.
func (w *Wizard) Dispatch(ev models.BookingEvent) bool {
	switch ev.Type {
	case EventSelectCategory:
		return w.SelectCategory(ev.Value)
	case EventSelectService:
		return w.SelectService(ev.Value)
	case EventSelectDay:
		if ev.Day == nil {
			return false
		}
		return w.SelectDay(*ev.Day)
	case EventSelectTime:
		return w.SelectTime(ev.Value)
	case EventSelectTechnician:
		return w.SelectTechnician(ev.Value)
	case EventToggleAddOn:
		return w.ToggleAddOn(ev.Value)
	case EventSetContactField:
		return w.SetContactField(ev.Field, ev.Value)
	case EventAdvance:
		return w.Advance()
	case EventRetreat:
		return w.Retreat()
	case EventJumpTo:
		if ev.Step == nil {
			return false
		}
		return w.JumpTo(*ev.Step)
	case EventSubmit:
		return w.Submit()
	case EventReset:
		return w.Reset()
	default:
		return false
	}
}

// WizardView is the wizard state plus everything derived from it.
type WizardView struct {
	Phase        Phase                   `json:"phase"`
	Selection    models.BookingSelection `json:"selection"`
	Category     *models.ServiceCategory `json:"category,omitempty"`
	Service      *models.Service         `json:"service,omitempty"`
	ServicePrice int                     `json:"servicePrice"`
	AddOnTotal   int                     `json:"addOnTotal"`
	Total        int                     `json:"total"`
	TotalLabel   string                  `json:"totalLabel"`
	CanAdvance   bool                    `json:"canAdvance"`
	CanSubmit    bool                    `json:"canSubmit"`
}

func (w *Wizard) View() WizardView {
	v := WizardView{
		Phase:        w.Phase(),
		Selection:    *w.sel,
		ServicePrice: w.ServicePrice(),
		AddOnTotal:   w.AddOnTotal(),
		Total:        w.Total(),
		TotalLabel:   FormatPrice(w.cfg.CurrencySymbol, w.Total()),
		CanAdvance:   w.CanAdvance(),
		CanSubmit:    w.CanSubmit(),
	}
	v.Selection.AddOnIDs = append([]string{}, w.sel.AddOnIDs...)
	if cat, ok := w.SelectedCategory(); ok {
		v.Category = cat
	}
	if svc, ok := w.SelectedService(); ok {
		v.Service = svc
	}
	return v
}
