package booking

import "crownbeauty/models"

// DefaultAddOns is the salon's fixed add-on menu.
var DefaultAddOns = []models.AddOn{
	{ID: "gel-removal", Label: "Gel Removal", Price: 10},
	{ID: "nail-repair", Label: "Nail Repair (per nail)", Price: 5},
	{ID: "cuticle-treatment", Label: "Cuticle Oil Treatment", Price: 8},
	{ID: "hand-massage", Label: "Hand & Arm Massage", Price: 15},
	{ID: "foot-massage", Label: "Foot & Leg Massage", Price: 20},
	{ID: "nail-art", Label: "Custom Nail Art (per nail)", Price: 8},
	{ID: "paraffin-wax", Label: "Paraffin Wax Treatment", Price: 15},
}

// NoPreference lets the salon assign any free technician.
const NoPreference = "No Preference"

var DefaultTechnicians = []models.Technician{
	{Name: "Sarah", Specialty: "Nail Artistry & Gel Extensions"},
	{Name: "Amy", Specialty: "Lash Extensions & Tinting"},
	{Name: "Jade", Specialty: "Facial Treatments & Waxing"},
	{Name: NoPreference, Specialty: "Any available technician"},
}

// FindAddOn looks an add-on up by id.
func FindAddOn(catalog []models.AddOn, id string) (models.AddOn, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return models.AddOn{}, false
}

func findTechnician(roster []models.Technician, name string) bool {
	for _, t := range roster {
		if t.Name == name {
			return true
		}
	}
	return false
}

func findCategory(catalog []models.ServiceCategory, id string) (*models.ServiceCategory, bool) {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], true
		}
	}
	return nil, false
}
