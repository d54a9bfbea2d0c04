package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/shift"
)

type ShiftStore struct {
	mu     sync.RWMutex
	shifts map[string]shift.Shift
}

func NewShiftStore() *ShiftStore {
	return &ShiftStore{shifts: make(map[string]shift.Shift)}
}

func (s *ShiftStore) Create(_ context.Context, sh shift.Shift) (shift.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shifts[sh.ID] = sh
	return sh, nil
}

func (s *ShiftStore) GetByID(_ context.Context, id string, organizationID string) (shift.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sh, ok := s.shifts[id]
	if !ok || sh.OrganizationID != organizationID {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return sh, nil
}

func (s *ShiftStore) ListMonth(_ context.Context, organizationID string, monthStart time.Time) ([]shift.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listLocked(organizationID, "", monthStart), nil
}

func (s *ShiftStore) ListByEmployee(_ context.Context, organizationID, employeeID string, monthStart time.Time) ([]shift.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listLocked(organizationID, employeeID, monthStart), nil
}

func (s *ShiftStore) listLocked(organizationID, employeeID string, monthStart time.Time) []shift.Shift {
	monthEnd := monthStart.AddDate(0, 1, 0)

	var result []shift.Shift
	for _, sh := range s.shifts {
		if sh.OrganizationID != organizationID {
			continue
		}
		if employeeID != "" && sh.EmployeeID != employeeID {
			continue
		}
		if sh.Date.Before(monthStart) || !sh.Date.Before(monthEnd) {
			continue
		}
		result = append(result, sh)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date.Equal(result[j].Date) {
			return result[i].ID < result[j].ID
		}
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

func (s *ShiftStore) Update(_ context.Context, sh shift.Shift) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.shifts[sh.ID]
	if !ok || existing.OrganizationID != sh.OrganizationID {
		return shift.ErrShiftNotFound
	}
	s.shifts[sh.ID] = sh
	return nil
}

func (s *ShiftStore) Delete(_ context.Context, id string, organizationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.shifts[id]
	if !ok || existing.OrganizationID != organizationID {
		return shift.ErrShiftNotFound
	}
	delete(s.shifts, id)
	return nil
}
