package model_test

import (
	"testing"

	"classbooking/internal/domains/allocation/model"
	"classbooking/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestNewDateAllocation(t *testing.T) {
	date, err := timezone.Parse("2006-01-02", "2026-09-07")
	assert.NoError(t, err)

	allocation := model.NewDateAllocation("class-a", date, "guest")

	assert.NotEmpty(t, allocation.ID, "expected ID to be generated")
	assert.Equal(t, "class-a", allocation.ClassroomID)
	assert.Equal(t, date, allocation.Date)
	assert.Nil(t, allocation.DeletedAt)
	assert.Equal(t, "guest", allocation.CreatedBy)
	assert.Equal(t, "guest", allocation.ModifiedBy)
	assert.False(t, allocation.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestNewTimeAllocation(t *testing.T) {
	allocation := model.NewTimeAllocation("da-1", 9, 10, 4, "guest")

	assert.NotEmpty(t, allocation.ID, "expected ID to be generated")
	assert.Equal(t, "da-1", allocation.DateAllocationID)
	assert.Equal(t, 9, allocation.StartHr)
	assert.Equal(t, 10, allocation.EndHr)
	assert.Equal(t, 4, allocation.People)
	assert.Nil(t, allocation.DeletedAt)
	assert.False(t, allocation.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestTimeAllocation_CombineID(t *testing.T) {
	tests := []struct {
		name       string
		allocation model.TimeAllocation
		want       string
	}{
		{
			name:       "morning interval",
			allocation: model.TimeAllocation{StartHr: 9, EndHr: 10},
			want:       "9-10",
		},
		{
			name:       "two hour interval",
			allocation: model.TimeAllocation{StartHr: 8, EndHr: 10},
			want:       "8-10",
		},
		{
			name:       "late interval",
			allocation: model.TimeAllocation{StartHr: 21, EndHr: 22},
			want:       "21-22",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.allocation.CombineID())
		})
	}
}

func TestTimeAllocation_CombineID_ExactIntervals(t *testing.T) {
	overlapping := model.TimeAllocation{StartHr: 9, EndHr: 11}
	contained := model.TimeAllocation{StartHr: 9, EndHr: 10}

	assert.NotEqual(t, overlapping.CombineID(), contained.CombineID(),
		"overlapping intervals must stay separate buckets")
}
