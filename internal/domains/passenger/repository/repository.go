package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"airline/infras/otel"
	"airline/infras/postgres"
	"airline/internal/domains/passenger/model"
	gDto "airline/shared/dto"
	gRepo "airline/shared/repository"
	"context"

	"github.com/jmoiron/sqlx"
)

type Passenger interface {
	Insert(ctx context.Context, model model.Passenger) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Passenger, error)
	GetPrimary(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Passenger, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Passenger, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Passenger]
}

func New(db *postgres.Connection, otel otel.Otel) Passenger {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Passenger](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
