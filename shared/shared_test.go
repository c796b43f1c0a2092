package shared_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"classbooking/shared"
	cacheMocks "classbooking/shared/cache/mocks"
	"classbooking/shared/constant"
	"classbooking/shared/dto"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{
			name:  "single part",
			parts: []string{"slot"},
			want:  "slot",
		},
		{
			name:  "multiple parts",
			parts: []string{"slot", "availability"},
			want:  "slot:availability",
		},
		{
			name:  "no parts",
			parts: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.BuildCacheKey(tt.parts...))
		})
	}
}

func TestInvalidateCaches(t *testing.T) {
	t.Run("clears the prefixed keys", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().
			Clear(gomock.Any(), "slot:availability*").
			Return(nil)

		shared.InvalidateCaches(context.Background(), mockCache, "slot:availability")
	})

	t.Run("swallows cache errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(errors.New("redis down"))

		shared.InvalidateCaches(context.Background(), mockCache, "slot:availability")
	})
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("ta-1", "id", "")

	clause, args := group.GetWhereClause()

	assert.Equal(t, "(id = :id)", clause)
	assert.Equal(t, "ta-1", args["id"])
}

func TestFilterActive(t *testing.T) {
	t.Run("without table", func(t *testing.T) {
		filter := shared.FilterActive("")

		clause, _ := filter.GetWhereClause()

		assert.Equal(t, constant.FieldDeletedAt+" IS NULL", clause)
	})

	t.Run("with table", func(t *testing.T) {
		filter := shared.FilterActive("slot_time_allocations")

		clause, _ := filter.GetWhereClause()

		assert.Equal(t, "slot_time_allocations.deleted_at IS NULL", clause)
	})

	t.Run("composes into a group", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{
					Field:    "classroom_id",
					Operator: dto.FilterOperatorEq,
					Value:    "class-a",
				},
				shared.FilterActive(""),
			},
		}

		clause, _ := group.GetWhereClause()

		assert.Equal(t, "(classroom_id = :classroom_id AND deleted_at IS NULL)", clause)
	})
}
