package repository

//go:generate go run go.uber.org/mock/mockgen -source=./date_allocation.go -destination=../mocks/date_allocation_mock.go -package=mocks

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

type DateAllocation interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.DateAllocation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DateAllocation, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.DateAllocation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DateAllocation, error)
	GetActive(ctx context.Context, classroomID, date string) (model.DateAllocation, error)
	GetActiveTx(ctx context.Context, tx *sqlx.Tx, classroomID, date string) (model.DateAllocation, error)
	GetAllActive(ctx context.Context) ([]model.DateAllocation, error)
}

type dateRepositoryImpl struct {
	gRepo.Repository[model.DateAllocation]
	db   *postgres.Connection
	otel otel.Otel
}

func NewDateAllocation(db *postgres.Connection, otel otel.Otel) DateAllocation {
	return &dateRepositoryImpl{
		Repository: gRepo.NewRepository[model.DateAllocation](model.DateEntityName, model.DateTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func activeByClassroomAndDate(classroomID, date string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldClassroomID,
				Operator: gDto.FilterOperatorEq,
				Value:    classroomID,
			},
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
			},
			shared.FilterActive(""),
		},
	}
}

func (repo *dateRepositoryImpl) GetActive(ctx context.Context, classroomID, date string) (model.DateAllocation, error) {
	return repo.Get(ctx, activeByClassroomAndDate(classroomID, date))
}

func (repo *dateRepositoryImpl) GetActiveTx(ctx context.Context, tx *sqlx.Tx, classroomID, date string) (model.DateAllocation, error) {
	return repo.GetTx(ctx, tx, activeByClassroomAndDate(classroomID, date))
}

func (repo *dateRepositoryImpl) GetAllActive(ctx context.Context) ([]model.DateAllocation, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{shared.FilterActive("")},
	})
}
