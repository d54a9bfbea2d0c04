package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/organization"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// organizationDoc mirrors the organization document. Pay policy fields are
// optional: a manager configures them piecemeal, and absent fields resolve to
// the documented defaults on read. Money is stored as plain numbers, the
// form the web client has always written.
type organizationDoc struct {
	Name      string    `firestore:"name"`
	CreatedBy string    `firestore:"createdBy"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`

	DefaultHourlyWage *float64 `firestore:"defaultHourlyWage,omitempty"`

	NightPremiumEnabled *bool    `firestore:"nightPremiumEnabled,omitempty"`
	NightPremiumRate    *float64 `firestore:"nightPremiumRate,omitempty"`
	NightStart          *string  `firestore:"nightStart,omitempty"`
	NightEnd            *string  `firestore:"nightEnd,omitempty"`

	OvertimePremiumEnabled        *bool    `firestore:"overtimePremiumEnabled,omitempty"`
	OvertimePremiumRate           *float64 `firestore:"overtimePremiumRate,omitempty"`
	OvertimeDailyThresholdMinutes *int     `firestore:"overtimeDailyThresholdMinutes,omitempty"`

	HolidayPremiumEnabled  *bool    `firestore:"holidayPremiumEnabled,omitempty"`
	HolidayPremiumRate     *float64 `firestore:"holidayPremiumRate,omitempty"`
	HolidayIncludesWeekend *bool    `firestore:"holidayIncludesWeekend,omitempty"`

	TransportAllowanceEnabled  *bool    `firestore:"transportAllowanceEnabled,omitempty"`
	TransportAllowancePerShift *float64 `firestore:"transportAllowancePerShift,omitempty"`
}

type organizationRepository struct {
	client *firestore.Client
}

func NewOrganizationRepository(client *firestore.Client) organization.OrganizationRepository {
	return &organizationRepository{client: client}
}

func (r *organizationRepository) Create(ctx context.Context, o organization.Organization) (organization.Organization, error) {
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now

	doc := organizationDoc{
		Name:      o.Name,
		CreatedBy: o.CreatedBy,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	applySettings(&doc, o.Settings)

	if _, err := r.client.Collection(collectionOrganizations).Doc(o.ID).Set(ctx, doc); err != nil {
		return organization.Organization{}, fmt.Errorf("failed to create organization: %w", err)
	}
	return o, nil
}

func (r *organizationRepository) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	snap, err := r.client.Collection(collectionOrganizations).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization: %w", err)
	}

	var doc organizationDoc
	if err := snap.DataTo(&doc); err != nil {
		return organization.Organization{}, fmt.Errorf("failed to decode organization: %w", err)
	}

	return organization.Organization{
		ID:        snap.Ref.ID,
		Name:      doc.Name,
		CreatedBy: doc.CreatedBy,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
		Settings:  resolveSettings(doc),
	}, nil
}

func (r *organizationRepository) GetSettings(ctx context.Context, organizationID string) (payroll.PaySettings, error) {
	o, err := r.GetByID(ctx, organizationID)
	if err != nil {
		return payroll.PaySettings{}, err
	}
	return o.Settings, nil
}

func (r *organizationRepository) UpdateSettings(ctx context.Context, organizationID string, settings payroll.PaySettings) error {
	ref := r.client.Collection(collectionOrganizations).Doc(organizationID)

	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return organization.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}

	var doc organizationDoc
	if err := snap.DataTo(&doc); err != nil {
		return fmt.Errorf("failed to decode organization: %w", err)
	}

	applySettings(&doc, settings)
	doc.UpdatedAt = time.Now()

	if _, err := ref.Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to update organization settings: %w", err)
	}
	return nil
}

// resolveSettings turns a possibly partial document into a fully resolved
// policy, filling absent fields from the defaults.
func resolveSettings(doc organizationDoc) payroll.PaySettings {
	s := payroll.DefaultPaySettings()

	if doc.DefaultHourlyWage != nil {
		s.DefaultHourlyWage = decimal.NewFromFloat(*doc.DefaultHourlyWage)
	}
	if doc.NightPremiumEnabled != nil {
		s.NightPremiumEnabled = *doc.NightPremiumEnabled
	}
	if doc.NightPremiumRate != nil {
		s.NightPremiumRate = decimal.NewFromFloat(*doc.NightPremiumRate)
	}
	if doc.NightStart != nil {
		s.NightStart = *doc.NightStart
	}
	if doc.NightEnd != nil {
		s.NightEnd = *doc.NightEnd
	}
	if doc.OvertimePremiumEnabled != nil {
		s.OvertimePremiumEnabled = *doc.OvertimePremiumEnabled
	}
	if doc.OvertimePremiumRate != nil {
		s.OvertimePremiumRate = decimal.NewFromFloat(*doc.OvertimePremiumRate)
	}
	if doc.OvertimeDailyThresholdMinutes != nil {
		s.OvertimeDailyThresholdMinutes = *doc.OvertimeDailyThresholdMinutes
	}
	if doc.HolidayPremiumEnabled != nil {
		s.HolidayPremiumEnabled = *doc.HolidayPremiumEnabled
	}
	if doc.HolidayPremiumRate != nil {
		s.HolidayPremiumRate = decimal.NewFromFloat(*doc.HolidayPremiumRate)
	}
	if doc.HolidayIncludesWeekend != nil {
		s.HolidayIncludesWeekend = *doc.HolidayIncludesWeekend
	}
	if doc.TransportAllowanceEnabled != nil {
		s.TransportAllowanceEnabled = *doc.TransportAllowanceEnabled
	}
	if doc.TransportAllowancePerShift != nil {
		s.TransportAllowancePerShift = decimal.NewFromFloat(*doc.TransportAllowancePerShift)
	}
	return s
}

// applySettings writes a resolved policy back onto the document. Every field
// is materialized; once a manager saves settings the document stops being
// partial.
func applySettings(doc *organizationDoc, s payroll.PaySettings) {
	wage, _ := s.DefaultHourlyWage.Float64()
	nightRate, _ := s.NightPremiumRate.Float64()
	overtimeRate, _ := s.OvertimePremiumRate.Float64()
	holidayRate, _ := s.HolidayPremiumRate.Float64()
	transport, _ := s.TransportAllowancePerShift.Float64()

	doc.DefaultHourlyWage = &wage
	doc.NightPremiumEnabled = &s.NightPremiumEnabled
	doc.NightPremiumRate = &nightRate
	doc.NightStart = &s.NightStart
	doc.NightEnd = &s.NightEnd
	doc.OvertimePremiumEnabled = &s.OvertimePremiumEnabled
	doc.OvertimePremiumRate = &overtimeRate
	doc.OvertimeDailyThresholdMinutes = &s.OvertimeDailyThresholdMinutes
	doc.HolidayPremiumEnabled = &s.HolidayPremiumEnabled
	doc.HolidayPremiumRate = &holidayRate
	doc.HolidayIncludesWeekend = &s.HolidayIncludesWeekend
	doc.TransportAllowanceEnabled = &s.TransportAllowanceEnabled
	doc.TransportAllowancePerShift = &transport
}
