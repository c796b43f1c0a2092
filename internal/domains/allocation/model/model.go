package model

import (
	"classbooking/shared/model"
	"classbooking/shared/timezone"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DateTableName  = "slot_date_allocations"
	DateEntityName = "date_allocation"

	TimeTableName  = "slot_time_allocations"
	TimeEntityName = "time_allocation"

	FieldID               = "id"
	FieldClassroomID      = "classroom_id"
	FieldDate             = "date"
	FieldDateAllocationID = "date_allocation_id"
	FieldStartHr          = "start_hr"
	FieldEndHr            = "end_hr"
	FieldPeople           = "people"
)

// DateAllocation is one classroom's booking record for a single calendar date.
// It is created on the first successful booking for that classroom and date,
// reused afterwards, and never explicitly deleted by the booking flow.
type DateAllocation struct {
	ID          string     `db:"id"`
	ClassroomID string     `db:"classroom_id"`
	Date        time.Time  `db:"date"`
	DeletedAt   *time.Time `db:"deleted_at"`
	model.Metadata
}

func NewDateAllocation(classroomID string, date time.Time, user string) DateAllocation {
	return DateAllocation{
		ID:          uuid.NewString(),
		ClassroomID: classroomID,
		Date:        date,
		Metadata:    newMetadata(user),
	}
}

// TimeAllocation is one booked interval with a people count under a
// DateAllocation. Cancellation tombstones the row via DeletedAt rather than
// removing it.
type TimeAllocation struct {
	ID               string     `db:"id"`
	DateAllocationID string     `db:"date_allocation_id"`
	StartHr          int        `db:"start_hr"`
	EndHr            int        `db:"end_hr"`
	People           int        `db:"people"`
	DeletedAt        *time.Time `db:"deleted_at"`
	model.Metadata
}

func NewTimeAllocation(dateAllocationID string, startHr, endHr, people int, user string) TimeAllocation {
	return TimeAllocation{
		ID:               uuid.NewString(),
		DateAllocationID: dateAllocationID,
		StartHr:          startHr,
		EndHr:            endHr,
		People:           people,
		Metadata:         newMetadata(user),
	}
}

// CombineID groups same-interval bookings for capacity accounting. Intervals
// are compared exactly; adjacent or overlapping intervals are never merged.
func (t *TimeAllocation) CombineID() string {
	return fmt.Sprintf("%d-%d", t.StartHr, t.EndHr)
}

func newMetadata(user string) model.Metadata {
	now := timezone.Now()

	return model.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}
