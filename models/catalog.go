package models

// AddOn is an optional supplementary charge. Price is whole currency units.
type AddOn struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int    `json:"price"`
}

type Technician struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// CalendarCell is one cell of the fixed 35-cell month grid. Day is nil for
// padding cells.
type CalendarCell struct {
	Day       *int `json:"day"`
	Available bool `json:"available"`
}

// BookingOptions is everything the wizard UI needs besides the category list.
type BookingOptions struct {
	AddOns      []AddOn        `json:"addOns"`
	Technicians []Technician   `json:"technicians"`
	Calendar    []CalendarCell `json:"calendar"`
	TimeSlots   []string       `json:"timeSlots"`
}
