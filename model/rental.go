// model/rental.go
package model

type RentalStatus string

const (
	RentalActive   RentalStatus = "ACTIVE"
	RentalReturned RentalStatus = "RETURNED"
)

type Rental struct {
	RentalID      string       `json:"rental_id"`
	AccountID     string       `json:"account_id"`
	EquipmentID   string       `json:"equipment_id"`
	EquipmentName string       `json:"equipment_name"`
	Category      string       `json:"category"`
	Location      string       `json:"location"`
	Days          int          `json:"days"`
	Price         float64      `json:"price"`
	Status        RentalStatus `json:"status"`
	RentedAt      int64        `json:"rented_at"`
	ReturnedAt    *int64       `json:"returned_at,omitempty"`
	TransactionID string       `json:"transaction_id"`
}
