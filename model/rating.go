// model/rating.go
package model

// RatingRecord is one append-only entry in an account's reputation
// ledger. Once written it is never mutated or deleted.
type RatingRecord struct {
	FromAccount   string `json:"from_account"`
	ToAccount     string `json:"to_account"`
	Rating        int    `json:"rating"`
	RentalID      string `json:"rental_id"`
	Review        string `json:"review,omitempty"`
	Timestamp     int64  `json:"timestamp"`
	TransactionID string `json:"transaction_id"`
}

// ReputationSummary is derived on every read from the full rating set
// for an account. It is never stored.
type ReputationSummary struct {
	AccountID       string         `json:"account_id"`
	AverageRating   float64        `json:"average_rating"`
	TotalRatings    int            `json:"total_ratings"`
	TotalRentals    int            `json:"total_rentals"`
	ReputationScore int            `json:"reputation_score"`
	Badges          []string       `json:"badges"`
	Reviews         []RatingRecord `json:"reviews"`
}
