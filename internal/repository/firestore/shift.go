package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/domain/shift"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// shiftDoc lives in the top-level shifts collection, scoped to its
// organization by field so month listings stay a single indexed query. The
// date is stored as a "YYYY-MM-DD" string, which sorts and range-filters
// correctly and matches what the web client has always written.
type shiftDoc struct {
	OrganizationID string `firestore:"organizationId"`
	EmployeeID     string `firestore:"userId"`
	EmployeeName   string `firestore:"userName"`

	Date      string `firestore:"date"`
	StartTime string `firestore:"startTime"`
	EndTime   string `firestore:"endTime"`

	Status     string   `firestore:"status"`
	HourlyWage *float64 `firestore:"hourlyWage,omitempty"`

	ApprovedBy      *string    `firestore:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `firestore:"approvedAt,omitempty"`
	RejectionReason *string    `firestore:"rejectionReason,omitempty"`

	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

type shiftRepository struct {
	client *firestore.Client
}

func NewShiftRepository(client *firestore.Client) shift.ShiftRepository {
	return &shiftRepository{client: client}
}

func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	if _, err := r.client.Collection(collectionShifts).Doc(s.ID).Set(ctx, shiftToDoc(s)); err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return s, nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string, organizationID string) (shift.Shift, error) {
	snap, err := r.client.Collection(collectionShifts).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	s, err := shiftFromSnapshot(snap)
	if err != nil {
		return shift.Shift{}, err
	}
	if s.OrganizationID != organizationID {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (r *shiftRepository) ListMonth(ctx context.Context, organizationID string, monthStart time.Time) ([]shift.Shift, error) {
	return r.list(ctx, organizationID, "", monthStart)
}

func (r *shiftRepository) ListByEmployee(ctx context.Context, organizationID, employeeID string, monthStart time.Time) ([]shift.Shift, error) {
	return r.list(ctx, organizationID, employeeID, monthStart)
}

func (r *shiftRepository) list(ctx context.Context, organizationID, employeeID string, monthStart time.Time) ([]shift.Shift, error) {
	monthEnd := monthStart.AddDate(0, 1, 0)

	q := r.client.Collection(collectionShifts).
		Where("organizationId", "==", organizationID).
		Where("date", ">=", monthStart.Format("2006-01-02")).
		Where("date", "<", monthEnd.Format("2006-01-02"))
	if employeeID != "" {
		q = q.Where("userId", "==", employeeID)
	}

	iter := q.OrderBy("date", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var shifts []shift.Shift
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list shifts: %w", err)
		}

		s, err := shiftFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, nil
}

func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	if _, err := r.GetByID(ctx, s.ID, s.OrganizationID); err != nil {
		return err
	}
	if _, err := r.client.Collection(collectionShifts).Doc(s.ID).Set(ctx, shiftToDoc(s)); err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, id string, organizationID string) error {
	if _, err := r.GetByID(ctx, id, organizationID); err != nil {
		return err
	}
	if _, err := r.client.Collection(collectionShifts).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

func shiftToDoc(s shift.Shift) shiftDoc {
	doc := shiftDoc{
		OrganizationID:  s.OrganizationID,
		EmployeeID:      s.EmployeeID,
		EmployeeName:    s.EmployeeName,
		Date:            s.Date.Format("2006-01-02"),
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		Status:          string(s.Status),
		ApprovedBy:      s.ApprovedBy,
		ApprovedAt:      s.ApprovedAt,
		RejectionReason: s.RejectionReason,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	if s.HourlyWage != nil {
		wage, _ := s.HourlyWage.Float64()
		doc.HourlyWage = &wage
	}
	return doc
}

func shiftFromSnapshot(snap *firestore.DocumentSnapshot) (shift.Shift, error) {
	var doc shiftDoc
	if err := snap.DataTo(&doc); err != nil {
		return shift.Shift{}, fmt.Errorf("failed to decode shift: %w", err)
	}

	date, err := time.Parse("2006-01-02", doc.Date)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to parse shift date %q: %w", doc.Date, err)
	}

	s := shift.Shift{
		ID:              snap.Ref.ID,
		OrganizationID:  doc.OrganizationID,
		EmployeeID:      doc.EmployeeID,
		EmployeeName:    doc.EmployeeName,
		Date:            date,
		StartTime:       doc.StartTime,
		EndTime:         doc.EndTime,
		Status:          shift.Status(doc.Status),
		ApprovedBy:      doc.ApprovedBy,
		ApprovedAt:      doc.ApprovedAt,
		RejectionReason: doc.RejectionReason,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
	if doc.HourlyWage != nil {
		wage := decimal.NewFromFloat(*doc.HourlyWage)
		s.HourlyWage = &wage
	}
	return s, nil
}
