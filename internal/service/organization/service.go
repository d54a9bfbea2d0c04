package organization

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/organization"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/payroll"
)

type organizationServiceImpl struct {
	orgRepo    organization.OrganizationRepository
	memberRepo organization.MemberRepository
}

func NewOrganizationService(
	orgRepo organization.OrganizationRepository,
	memberRepo organization.MemberRepository,
) organization.OrganizationService {
	return &organizationServiceImpl{
		orgRepo:    orgRepo,
		memberRepo: memberRepo,
	}
}

// Create implements organization.OrganizationService.
func (s *organizationServiceImpl) Create(ctx context.Context, req organization.CreateOrganizationRequest) (organization.OrganizationResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.OrganizationResponse{}, err
	}

	o := organization.Organization{
		ID:        uuid.NewString(),
		Name:      req.Name,
		CreatedBy: req.CreatedBy,
		Settings:  payroll.DefaultPaySettings(),
	}
	created, err := s.orgRepo.Create(ctx, o)
	if err != nil {
		return organization.OrganizationResponse{}, fmt.Errorf("failed to create organization: %w", err)
	}

	// The creator joins as the first member.
	if req.CreatedBy != "" {
		member := organization.Member{
			EmployeeID:  req.CreatedBy,
			DisplayName: req.CreatedBy,
		}
		if _, err := s.memberRepo.Upsert(ctx, created.ID, member); err != nil {
			return organization.OrganizationResponse{}, fmt.Errorf("failed to add creator as member: %w", err)
		}
	}

	return organization.NewOrganizationResponse(created), nil
}

// Get implements organization.OrganizationService.
func (s *organizationServiceImpl) Get(ctx context.Context, id string) (organization.OrganizationResponse, error) {
	o, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}
	return organization.NewOrganizationResponse(o), nil
}

// GetSettings implements organization.OrganizationService.
func (s *organizationServiceImpl) GetSettings(ctx context.Context, organizationID string) (organization.PaySettingsResponse, error) {
	settings, err := s.orgRepo.GetSettings(ctx, organizationID)
	if err != nil {
		return organization.PaySettingsResponse{}, err
	}
	return organization.NewPaySettingsResponse(settings), nil
}

// UpdateSettings implements organization.OrganizationService. The request is
// a partial update: nil fields keep their current value.
func (s *organizationServiceImpl) UpdateSettings(ctx context.Context, req organization.UpdatePaySettingsRequest) (organization.PaySettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.PaySettingsResponse{}, err
	}

	settings, err := s.orgRepo.GetSettings(ctx, req.OrganizationID)
	if err != nil {
		return organization.PaySettingsResponse{}, err
	}

	applyUpdate(&settings, req)

	if err := s.orgRepo.UpdateSettings(ctx, req.OrganizationID, settings); err != nil {
		return organization.PaySettingsResponse{}, err
	}
	return organization.NewPaySettingsResponse(settings), nil
}

// ListMembers implements organization.OrganizationService.
func (s *organizationServiceImpl) ListMembers(ctx context.Context, organizationID string) ([]organization.MemberResponse, error) {
	if _, err := s.orgRepo.GetByID(ctx, organizationID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.List(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]organization.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, organization.NewMemberResponse(m))
	}
	return responses, nil
}

// GetMember implements organization.OrganizationService.
func (s *organizationServiceImpl) GetMember(ctx context.Context, organizationID, employeeID string) (organization.MemberResponse, error) {
	m, err := s.memberRepo.Get(ctx, organizationID, employeeID)
	if err != nil {
		return organization.MemberResponse{}, err
	}
	return organization.NewMemberResponse(m), nil
}

// PutOverride implements organization.OrganizationService. Nil wage and
// transport fields clear the override so the organization default applies.
func (s *organizationServiceImpl) PutOverride(ctx context.Context, req organization.PutOverrideRequest) (organization.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.MemberResponse{}, err
	}

	if _, err := s.orgRepo.GetByID(ctx, req.OrganizationID); err != nil {
		return organization.MemberResponse{}, err
	}

	m := organization.Member{
		EmployeeID:  req.EmployeeID,
		DisplayName: req.EmployeeID,
		Override: payroll.EmployeeOverride{
			HourlyWage:                 req.HourlyWage,
			TransportAllowancePerShift: req.TransportAllowancePerShift,
		},
	}
	if existing, err := s.memberRepo.Get(ctx, req.OrganizationID, req.EmployeeID); err == nil {
		m.DisplayName = existing.DisplayName
	}
	if req.DisplayName != nil {
		m.DisplayName = *req.DisplayName
	}

	saved, err := s.memberRepo.Upsert(ctx, req.OrganizationID, m)
	if err != nil {
		return organization.MemberResponse{}, fmt.Errorf("failed to save member override: %w", err)
	}
	return organization.NewMemberResponse(saved), nil
}

func applyUpdate(s *payroll.PaySettings, req organization.UpdatePaySettingsRequest) {
	if req.DefaultHourlyWage != nil {
		s.DefaultHourlyWage = *req.DefaultHourlyWage
	}
	if req.NightPremiumEnabled != nil {
		s.NightPremiumEnabled = *req.NightPremiumEnabled
	}
	if req.NightPremiumRate != nil {
		s.NightPremiumRate = *req.NightPremiumRate
	}
	if req.NightStart != nil {
		s.NightStart = *req.NightStart
	}
	if req.NightEnd != nil {
		s.NightEnd = *req.NightEnd
	}
	if req.OvertimePremiumEnabled != nil {
		s.OvertimePremiumEnabled = *req.OvertimePremiumEnabled
	}
	if req.OvertimePremiumRate != nil {
		s.OvertimePremiumRate = *req.OvertimePremiumRate
	}
	if req.OvertimeDailyThresholdMinutes != nil {
		s.OvertimeDailyThresholdMinutes = *req.OvertimeDailyThresholdMinutes
	}
	if req.HolidayPremiumEnabled != nil {
		s.HolidayPremiumEnabled = *req.HolidayPremiumEnabled
	}
	if req.HolidayPremiumRate != nil {
		s.HolidayPremiumRate = *req.HolidayPremiumRate
	}
	if req.HolidayIncludesWeekend != nil {
		s.HolidayIncludesWeekend = *req.HolidayIncludesWeekend
	}
	if req.TransportAllowanceEnabled != nil {
		s.TransportAllowanceEnabled = *req.TransportAllowanceEnabled
	}
	if req.TransportAllowancePerShift != nil {
		s.TransportAllowancePerShift = *req.TransportAllowancePerShift
	}
}
