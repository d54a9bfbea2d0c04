package organization

import (
	"time"

	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/payroll"
)

// Organization - a workplace tenant. Pay policy values live on the
// organization document; fields the manager never configured fall back to the
// documented defaults when the policy is read.
type Organization struct {
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time

	Settings payroll.PaySettings
}

// Member - one employee's membership in an organization, carrying the
// per-employee pay overrides.
type Member struct {
	EmployeeID  string
	DisplayName string
	Override    payroll.EmployeeOverride
	JoinedAt    time.Time
	UpdatedAt   time.Time
}
