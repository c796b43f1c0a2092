package repository

//go:generate go run go.uber.org/mock/mockgen -source=./time_allocation.go -destination=../mocks/time_allocation_mock.go -package=mocks

import (
	"classbooking/infras/otel"
	"classbooking/infras/postgres"
	"classbooking/internal/domains/allocation/model"
	"classbooking/shared"
	gDto "classbooking/shared/dto"
	gRepo "classbooking/shared/repository"
	"context"

	"github.com/jmoiron/sqlx"
)

type TimeAllocation interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.TimeAllocation) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TimeAllocation, error)
	GetAllActive(ctx context.Context) ([]model.TimeAllocation, error)
	GetActiveMatch(ctx context.Context, dateAllocationID string, startHr, endHr, people int) (model.TimeAllocation, error)
	SumPeopleTx(ctx context.Context, tx *sqlx.Tx, dateAllocationID string, startHr, endHr int) (int, error)
	SoftDeleteByID(ctx context.Context, id, deletedBy string) error
}

type timeRepositoryImpl struct {
	gRepo.Repository[model.TimeAllocation]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTimeAllocation(db *postgres.Connection, otel otel.Otel) TimeAllocation {
	return &timeRepositoryImpl{
		Repository: gRepo.NewRepository[model.TimeAllocation](model.TimeEntityName, model.TimeTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *timeRepositoryImpl) GetAllActive(ctx context.Context) ([]model.TimeAllocation, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{shared.FilterActive("")},
	})
}

// GetActiveMatch finds the active booking matching the interval and people
// count exactly; a partial match counts as not found.
func (repo *timeRepositoryImpl) GetActiveMatch(ctx context.Context, dateAllocationID string, startHr, endHr, people int) (model.TimeAllocation, error) {
	return repo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDateAllocationID,
				Operator: gDto.FilterOperatorEq,
				Value:    dateAllocationID,
			},
			gDto.Filter{
				Field:    model.FieldStartHr,
				Operator: gDto.FilterOperatorEq,
				Value:    startHr,
			},
			gDto.Filter{
				Field:    model.FieldEndHr,
				Operator: gDto.FilterOperatorEq,
				Value:    endHr,
			},
			gDto.Filter{
				Field:    model.FieldPeople,
				Operator: gDto.FilterOperatorEq,
				Value:    people,
			},
			shared.FilterActive(""),
		},
	})
}

// SumPeopleTx totals the active people count already booked for the exact
// (start_hr, end_hr) interval. Runs inside the caller's transaction so the
// capacity check and the insert it guards observe the same state.
func (repo *timeRepositoryImpl) SumPeopleTx(ctx context.Context, tx *sqlx.Tx, dateAllocationID string, startHr, endHr int) (int, error) {
	return repo.SumIntTx(ctx, tx, model.FieldPeople, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDateAllocationID,
				Operator: gDto.FilterOperatorEq,
				Value:    dateAllocationID,
			},
			gDto.Filter{
				Field:    model.FieldStartHr,
				Operator: gDto.FilterOperatorEq,
				Value:    startHr,
			},
			gDto.Filter{
				Field:    model.FieldEndHr,
				Operator: gDto.FilterOperatorEq,
				Value:    endHr,
			},
			shared.FilterActive(""),
		},
	})
}

func (repo *timeRepositoryImpl) SoftDeleteByID(ctx context.Context, id, deletedBy string) error {
	return repo.SoftDelete(ctx, shared.FilterByID(id, model.FieldID, ""), deletedBy)
}
