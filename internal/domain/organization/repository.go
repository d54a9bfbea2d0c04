package organization

import (
	"context"

	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/payroll"
)

// OrganizationRepository defines data access for organizations and their pay
// policy. GetSettings returns a fully resolved policy: fields the document
// never stored come back as the documented defaults, so the payroll engine
// never sees a partial configuration.
type OrganizationRepository interface {
	Create(ctx context.Context, o Organization) (Organization, error)
	GetByID(ctx context.Context, id string) (Organization, error)
	GetSettings(ctx context.Context, organizationID string) (payroll.PaySettings, error)
	UpdateSettings(ctx context.Context, organizationID string, settings payroll.PaySettings) error
}

// MemberRepository defines data access for organization membership and the
// per-member pay overrides.
type MemberRepository interface {
	List(ctx context.Context, organizationID string) ([]Member, error)
	Get(ctx context.Context, organizationID, employeeID string) (Member, error)
	Upsert(ctx context.Context, organizationID string, m Member) (Member, error)

	// Overrides returns the per-employee override map for one organization,
	// keyed by employee ID. Members without any override are omitted.
	Overrides(ctx context.Context, organizationID string) (map[string]payroll.EmployeeOverride, error)
}
