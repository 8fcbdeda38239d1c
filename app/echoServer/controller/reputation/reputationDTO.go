package reputation

type SubmitRatingReq struct {
	ToAccount string `json:"to_account" validate:"required"`
	// range is the ledger's invariant, not the transport's; the service
	// rejects out-of-range values before any write
	Rating   int    `json:"rating"`
	RentalID string `json:"rental_id" validate:"required"`
	Review    string `json:"review"`
}
