package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/organization"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/shift"
)

type shiftServiceImpl struct {
	shiftRepo  shift.ShiftRepository
	orgRepo    organization.OrganizationRepository
	memberRepo organization.MemberRepository
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	orgRepo organization.OrganizationRepository,
	memberRepo organization.MemberRepository,
) shift.ShiftService {
	return &shiftServiceImpl{
		shiftRepo:  shiftRepo,
		orgRepo:    orgRepo,
		memberRepo: memberRepo,
	}
}

// Submit implements shift.ShiftService. New shifts always start pending and
// the submitter is enrolled as a member if not already known.
func (s *shiftServiceImpl) Submit(ctx context.Context, req shift.SubmitShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}
	if _, err := s.orgRepo.GetByID(ctx, req.OrganizationID); err != nil {
		return shift.ShiftResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return shift.ShiftResponse{}, shift.ErrInvalidRequestData
	}

	if _, err := s.memberRepo.Get(ctx, req.OrganizationID, req.EmployeeID); err != nil {
		member := organization.Member{
			EmployeeID:  req.EmployeeID,
			DisplayName: req.EmployeeName,
		}
		if _, err := s.memberRepo.Upsert(ctx, req.OrganizationID, member); err != nil {
			return shift.ShiftResponse{}, fmt.Errorf("failed to enroll member: %w", err)
		}
	}

	now := time.Now()
	record := shift.Shift{
		ID:             uuid.NewString(),
		OrganizationID: req.OrganizationID,
		EmployeeID:     req.EmployeeID,
		EmployeeName:   req.EmployeeName,
		Date:           date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Status:         shift.StatusPending,
		HourlyWage:     req.HourlyWage,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.shiftRepo.Create(ctx, record)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return shift.NewShiftResponse(created), nil
}

// GetShift implements shift.ShiftService.
func (s *shiftServiceImpl) GetShift(ctx context.Context, organizationID, shiftID string) (shift.ShiftResponse, error) {
	record, err := s.shiftRepo.GetByID(ctx, shiftID, organizationID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.NewShiftResponse(record), nil
}

// ListMonth implements shift.ShiftService.
func (s *shiftServiceImpl) ListMonth(ctx context.Context, filter shift.ListShiftsFilter) ([]shift.ShiftResponse, error) {
	if _, err := s.orgRepo.GetByID(ctx, filter.OrganizationID); err != nil {
		return nil, err
	}

	var (
		records []shift.Shift
		err     error
	)
	if filter.EmployeeID != nil {
		records, err = s.shiftRepo.ListByEmployee(ctx, filter.OrganizationID, *filter.EmployeeID, filter.Month)
	} else {
		records, err = s.shiftRepo.ListMonth(ctx, filter.OrganizationID, filter.Month)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(records))
	for _, record := range records {
		if filter.Status != nil && record.Status != *filter.Status {
			continue
		}
		responses = append(responses, shift.NewShiftResponse(record))
	}
	return responses, nil
}

// UpdateShift implements shift.ShiftService. Only the owner may edit, and
// only while the shift is still pending.
func (s *shiftServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	record, err := s.shiftRepo.GetByID(ctx, req.ShiftID, req.OrganizationID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if record.EmployeeID != req.EmployeeID {
		return shift.ShiftResponse{}, shift.ErrNotShiftOwner
	}
	if !record.Editable() {
		return shift.ShiftResponse{}, shift.ErrShiftLocked
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return shift.ShiftResponse{}, shift.ErrInvalidRequestData
	}

	record.Date = date
	record.StartTime = req.StartTime
	record.EndTime = req.EndTime
	record.HourlyWage = req.HourlyWage
	record.UpdatedAt = time.Now()

	if err := s.shiftRepo.Update(ctx, record); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}
	return shift.NewShiftResponse(record), nil
}

// DeleteShift implements shift.ShiftService.
func (s *shiftServiceImpl) DeleteShift(ctx context.Context, organizationID, shiftID, employeeID string) error {
	record, err := s.shiftRepo.GetByID(ctx, shiftID, organizationID)
	if err != nil {
		return err
	}
	if record.EmployeeID != employeeID {
		return shift.ErrNotShiftOwner
	}
	if !record.Editable() {
		return shift.ErrShiftLocked
	}
	return s.shiftRepo.Delete(ctx, shiftID, organizationID)
}

// Approve implements shift.ShiftService. The decision overwrites whatever
// state the shift is in, including an earlier rejection.
func (s *shiftServiceImpl) Approve(ctx context.Context, req shift.ApproveShiftRequest) (shift.ShiftResponse, error) {
	record, err := s.shiftRepo.GetByID(ctx, req.ShiftID, req.OrganizationID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	record.Approve(req.ApproverID, time.Now())

	if err := s.shiftRepo.Update(ctx, record); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to approve shift: %w", err)
	}
	return shift.NewShiftResponse(record), nil
}

// Reject implements shift.ShiftService. Like Approve, it overwrites from any
// state; an approved shift can still be rejected afterwards.
func (s *shiftServiceImpl) Reject(ctx context.Context, req shift.RejectShiftRequest) (shift.ShiftResponse, error) {
	record, err := s.shiftRepo.GetByID(ctx, req.ShiftID, req.OrganizationID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	record.Reject(req.Reason, time.Now())

	if err := s.shiftRepo.Update(ctx, record); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to reject shift: %w", err)
	}
	return shift.NewShiftResponse(record), nil
}
