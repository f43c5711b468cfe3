package mocks

import (
	"airline/shared/uow"
	"context"
)

// UnitOfWork runs the work without a database. Repository mocks receive a nil transaction;
// after-commit hooks run only when the work succeeds.
type UnitOfWork struct {
	Committed  int
	RolledBack int
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{}
}

// Do implements uow.UnitOfWork.
func (u *UnitOfWork) Do(ctx context.Context, work uow.Work) error {
	hooks := []uow.AfterCommit{}

	if err := work(ctx, nil, func(hook uow.AfterCommit) { hooks = append(hooks, hook) }); err != nil {
		u.RolledBack++

		return err
	}

	u.Committed++

	for _, hook := range hooks {
		hook(ctx)
	}

	return nil
}
