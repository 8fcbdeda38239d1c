package rental

type RentReq struct {
	EquipmentID string `json:"equipment_id" validate:"required"`
	Days        int    `json:"days" validate:"required,gt=0"`
}
