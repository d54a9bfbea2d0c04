package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/organization"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/payroll"
)

type MemberStore struct {
	mu      sync.RWMutex
	members map[string]map[string]organization.Member // orgID -> employeeID -> member
}

func NewMemberStore() *MemberStore {
	return &MemberStore{members: make(map[string]map[string]organization.Member)}
}

func (s *MemberStore) List(_ context.Context, organizationID string) ([]organization.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []organization.Member
	for _, m := range s.members[organizationID] {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].EmployeeID < result[j].EmployeeID
	})
	return result, nil
}

func (s *MemberStore) Get(_ context.Context, organizationID, employeeID string) (organization.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.members[organizationID][employeeID]
	if !ok {
		return organization.Member{}, organization.ErrMemberNotFound
	}
	return m, nil
}

func (s *MemberStore) Upsert(_ context.Context, organizationID string, m organization.Member) (organization.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byEmployee, ok := s.members[organizationID]
	if !ok {
		byEmployee = make(map[string]organization.Member)
		s.members[organizationID] = byEmployee
	}

	now := time.Now()
	if existing, ok := byEmployee[m.EmployeeID]; ok {
		m.JoinedAt = existing.JoinedAt
	} else {
		m.JoinedAt = now
	}
	m.UpdatedAt = now
	byEmployee[m.EmployeeID] = m
	return m, nil
}

func (s *MemberStore) Overrides(_ context.Context, organizationID string) (map[string]payroll.EmployeeOverride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]payroll.EmployeeOverride)
	for id, m := range s.members[organizationID] {
		if m.Override.HourlyWage == nil && m.Override.TransportAllowancePerShift == nil {
			continue
		}
		result[id] = m.Override
	}
	return result, nil
}
