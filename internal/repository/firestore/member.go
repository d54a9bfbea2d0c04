package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/organization"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// memberDoc lives in the members subcollection under an organization. The
// document ID is the employee ID. Wage overrides are optional and absent for
// members paid at the organization default.
type memberDoc struct {
	DisplayName                string    `firestore:"displayName"`
	HourlyWage                 *float64  `firestore:"hourlyWage,omitempty"`
	TransportAllowancePerShift *float64  `firestore:"transportAllowancePerShift,omitempty"`
	JoinedAt                   time.Time `firestore:"joinedAt"`
	UpdatedAt                  time.Time `firestore:"updatedAt"`
}

type memberRepository struct {
	client *firestore.Client
}

func NewMemberRepository(client *firestore.Client) organization.MemberRepository {
	return &memberRepository{client: client}
}

func (r *memberRepository) collection(organizationID string) *firestore.CollectionRef {
	return r.client.Collection(collectionOrganizations).Doc(organizationID).Collection(collectionMembers)
}

func (r *memberRepository) List(ctx context.Context, organizationID string) ([]organization.Member, error) {
	iter := r.collection(organizationID).OrderBy(firestore.DocumentID, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var members []organization.Member
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}

		m, err := memberFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

func (r *memberRepository) Get(ctx context.Context, organizationID, employeeID string) (organization.Member, error) {
	snap, err := r.collection(organizationID).Doc(employeeID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return organization.Member{}, organization.ErrMemberNotFound
		}
		return organization.Member{}, fmt.Errorf("failed to get member: %w", err)
	}
	return memberFromSnapshot(snap)
}

func (r *memberRepository) Upsert(ctx context.Context, organizationID string, m organization.Member) (organization.Member, error) {
	ref := r.collection(organizationID).Doc(m.EmployeeID)
	now := time.Now()

	m.JoinedAt = now
	if snap, err := ref.Get(ctx); err == nil {
		var existing memberDoc
		if err := snap.DataTo(&existing); err != nil {
			return organization.Member{}, fmt.Errorf("failed to decode member: %w", err)
		}
		m.JoinedAt = existing.JoinedAt
	} else if status.Code(err) != codes.NotFound {
		return organization.Member{}, fmt.Errorf("failed to get member: %w", err)
	}
	m.UpdatedAt = now

	doc := memberDoc{
		DisplayName: m.DisplayName,
		JoinedAt:    m.JoinedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Override.HourlyWage != nil {
		wage, _ := m.Override.HourlyWage.Float64()
		doc.HourlyWage = &wage
	}
	if m.Override.TransportAllowancePerShift != nil {
		transport, _ := m.Override.TransportAllowancePerShift.Float64()
		doc.TransportAllowancePerShift = &transport
	}

	if _, err := ref.Set(ctx, doc); err != nil {
		return organization.Member{}, fmt.Errorf("failed to upsert member: %w", err)
	}
	return m, nil
}

func (r *memberRepository) Overrides(ctx context.Context, organizationID string) (map[string]payroll.EmployeeOverride, error) {
	members, err := r.List(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]payroll.EmployeeOverride)
	for _, m := range members {
		if m.Override.HourlyWage == nil && m.Override.TransportAllowancePerShift == nil {
			continue
		}
		overrides[m.EmployeeID] = m.Override
	}
	return overrides, nil
}

func memberFromSnapshot(snap *firestore.DocumentSnapshot) (organization.Member, error) {
	var doc memberDoc
	if err := snap.DataTo(&doc); err != nil {
		return organization.Member{}, fmt.Errorf("failed to decode member: %w", err)
	}

	m := organization.Member{
		EmployeeID:  snap.Ref.ID,
		DisplayName: doc.DisplayName,
		JoinedAt:    doc.JoinedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
	if doc.HourlyWage != nil {
		wage := decimal.NewFromFloat(*doc.HourlyWage)
		m.Override.HourlyWage = &wage
	}
	if doc.TransportAllowancePerShift != nil {
		transport := decimal.NewFromFloat(*doc.TransportAllowancePerShift)
		m.Override.TransportAllowancePerShift = &transport
	}
	return m, nil
}
