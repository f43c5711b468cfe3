package uow

import (
	"airline/infras/otel"
	"airline/infras/postgres"
	"airline/shared/constant"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// AfterCommit runs once the transaction has been committed.
type AfterCommit func(ctx context.Context)

// Work is the body of a unit of work. Every repository call it makes must go through tx;
// side effects that must not happen on rollback are registered with after.
type Work func(ctx context.Context, tx *sqlx.Tx, after func(AfterCommit)) error

// UnitOfWork runs Work inside a single all-or-nothing transaction.
type UnitOfWork interface {
	Do(ctx context.Context, work Work) error
}

type unitOfWork struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) UnitOfWork {
	return &unitOfWork{
		db:   db,
		otel: otel,
	}
}

func (u *unitOfWork) Do(ctx context.Context, work Work) (err error) {
	ctx, scope := u.otel.NewScope(ctx, constant.OtelUnitOfWorkScopeName, constant.OtelUnitOfWorkScopeName+".Do")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := u.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	hooks := []AfterCommit{}
	after := func(hook AfterCommit) {
		hooks = append(hooks, hook)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = work(ctx, tx, after); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	scope.AddEvent("transaction committed")

	for _, hook := range hooks {
		hook(context.WithoutCancel(ctx))
	}

	return nil
}
