package organization

import (
	"context"
)

// OrganizationService defines business logic for organization management
type OrganizationService interface {
	Create(ctx context.Context, req CreateOrganizationRequest) (OrganizationResponse, error)
	Get(ctx context.Context, id string) (OrganizationResponse, error)

	// GetSettings returns the organization's resolved pay policy
	GetSettings(ctx context.Context, organizationID string) (PaySettingsResponse, error)

	// UpdateSettings applies a partial policy update after range validation
	UpdateSettings(ctx context.Context, req UpdatePaySettingsRequest) (PaySettingsResponse, error)

	ListMembers(ctx context.Context, organizationID string) ([]MemberResponse, error)
	GetMember(ctx context.Context, organizationID, employeeID string) (MemberResponse, error)

	// PutOverride replaces a member's pay overrides
	PutOverride(ctx context.Context, req PutOverrideRequest) (MemberResponse, error)
}
