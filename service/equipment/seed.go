package equipmentsvc

import "github.com/seniormugambe/lend/model"

// DemoCatalog is the starter catalog shown before any owner lists
// equipment of their own.
func DemoCatalog() []model.Equipment {
	return []model.Equipment{
		{
			ID:           "EQ-demo-1",
			Name:         "Professional Power Drill Set",
			Category:     "Construction Tools",
			Description:  "Cordless drill set with bits for concrete, steel and wood",
			Price:        45,
			Location:     "Lagos, Nigeria",
			Rating:       4.9,
			Availability: true,
			Features:     []string{"Cordless", "Spare batteries", "Carry case"},
		},
		{
			ID:           "EQ-demo-2",
			Name:         "Heavy Duty Excavator",
			Category:     "Heavy Equipment",
			Description:  "Tracked excavator for site preparation and trenching",
			Price:        850,
			Location:     "Nairobi, Kenya",
			Rating:       5.0,
			Availability: true,
			Features:     []string{"Operator included", "GPS tracking"},
		},
		{
			ID:           "EQ-demo-3",
			Name:         "Agricultural Tractor Package",
			Category:     "Agricultural Equipment",
			Description:  "Utility tractor with plough and trailer attachments",
			Price:        320,
			Location:     "Accra, Ghana",
			Rating:       4.8,
			Availability: true,
			Features:     []string{"Plough", "Trailer", "Delivery available"},
		},
	}
}
