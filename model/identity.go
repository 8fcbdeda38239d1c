// model/identity.go
package model

type UserType string

const (
	UserRenter UserType = "renter"
	UserOwner  UserType = "owner"
	UserBoth   UserType = "both"
)

// Identity is the per-account profile record. Created once by
// registration; the only later mutation is verification.
type Identity struct {
	AccountID    string   `json:"account_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	UserType     UserType `json:"user_type"`
	Location     string   `json:"location"`
	IsVerified   bool     `json:"is_verified"`
	RegisteredAt int64    `json:"registered_at"`
	IdentityHash string   `json:"identity_hash"`
	VerifiedAt   *int64   `json:"verified_at,omitempty"`
}

// RegisterIdentityReq represents identity registration payload
// swagger:model RegisterIdentityReq
type RegisterIdentityReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	UserType string `json:"user_type" validate:"required,oneof=renter owner both"`
	Location string `json:"location" validate:"required"`
}
