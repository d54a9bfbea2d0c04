// Package memory provides in-memory repository implementations, used by tests
// and local development (STORE_DRIVER=memory).
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/organization"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/payroll"
)

type OrganizationStore struct {
	mu   sync.RWMutex
	orgs map[string]organization.Organization
}

func NewOrganizationStore() *OrganizationStore {
	return &OrganizationStore{orgs: make(map[string]organization.Organization)}
}

func (s *OrganizationStore) Create(_ context.Context, o organization.Organization) (organization.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	s.orgs[o.ID] = o
	return o, nil
}

func (s *OrganizationStore) GetByID(_ context.Context, id string) (organization.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orgs[id]
	if !ok {
		return organization.Organization{}, organization.ErrOrganizationNotFound
	}
	return o, nil
}

func (s *OrganizationStore) GetSettings(_ context.Context, organizationID string) (payroll.PaySettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orgs[organizationID]
	if !ok {
		return payroll.PaySettings{}, organization.ErrOrganizationNotFound
	}
	return o.Settings, nil
}

func (s *OrganizationStore) UpdateSettings(_ context.Context, organizationID string, settings payroll.PaySettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orgs[organizationID]
	if !ok {
		return organization.ErrOrganizationNotFound
	}
	o.Settings = settings
	o.UpdatedAt = time.Now()
	s.orgs[organizationID] = o
	return nil
}
