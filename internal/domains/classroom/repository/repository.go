package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"classbooking/infras/otel"
	"classbooking/infras/postgres"
	"classbooking/internal/domains/classroom/model"
	gDto "classbooking/shared/dto"
	gRepo "classbooking/shared/repository"
	"context"
)

type Classroom interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Classroom, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Classroom, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Classroom]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Classroom {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Classroom](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
