package models

import "time"

// PlatformSettings is the read-only platform configuration served by
// GET /settings. Only the currency matters to the storefront; the fee fields
// are applied backend-side.
type PlatformSettings struct {
	ID                      string    `json:"id"`
	PlatformFeePercentage   float64   `json:"platform_fee_percentage"`
	WithdrawalFeePercentage float64   `json:"withdrawal_fee_percentage"`
	MinWithdrawalAmount     int       `json:"min_withdrawal_amount"`
	Currency                string    `json:"currency"`
	UpdatedAt               time.Time `json:"updated_at"`
}
