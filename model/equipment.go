// model/equipment.go
package model

type Equipment struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Location     string   `json:"location"`
	Rating       float64  `json:"rating"`
	Availability bool     `json:"availability"`
	Features     []string `json:"features"`
	OwnerAccount string   `json:"owner_account,omitempty"`
}

// DemandRecord is one aggregated row of rental history used for
// demand prediction.
type DemandRecord struct {
	Category string `json:"category"`
	Location string `json:"location"`
	Rentals  int    `json:"rentals"`
}
