package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access for shift records. Month listings cover
// [monthStart, monthStart+1month) and come back sorted by date.
type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string, organizationID string) (Shift, error)
	ListMonth(ctx context.Context, organizationID string, monthStart time.Time) ([]Shift, error)
	ListByEmployee(ctx context.Context, organizationID, employeeID string, monthStart time.Time) ([]Shift, error)
	Update(ctx context.Context, s Shift) error
	Delete(ctx context.Context, id string, organizationID string) error
}
