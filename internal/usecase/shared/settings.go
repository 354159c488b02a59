package shared

import "context"

// Operational settings live in the database and may change at runtime. The
// reader is read-through with no caching: each operation observes the value
// current at its own start, never a stale process-wide copy.
const (
	KeyServiceTaxRate      = "service_tax_rate"
	KeyOverstayRatePerHour = "overstay_rate_per_hour"
	KeyOverstayPenaltyCap  = "overstay_penalty_cap"
	KeyCheckInHour         = "checkin_hour"
	KeyCheckOutHour        = "checkout_hour"
	KeyMinCheckInDeposit   = "min_checkin_deposit"
)

type SettingsReader interface {
	Float(ctx context.Context, key string) (float64, error)
	Int(ctx context.Context, key string) (int, error)
	Int64(ctx context.Context, key string) (int64, error)
}
