package repository

import (
	"banking_ledger/internal/domain"
	"context"
	"errors"
)

type ClientRepository interface {
	Save(ctx context.Context, client *domain.Client) error
	GetByNationalID(ctx context.Context, nationalID string) (*domain.Client, error)
	GetAll(ctx context.Context) ([]*domain.Client, error)
}

type AccountRepository interface {
	Save(ctx context.Context, account domain.Account) error
	GetByNumber(ctx context.Context, number string) (domain.Account, error)
	GetByOwner(ctx context.Context, nationalID string) ([]domain.Account, error)
	NextNumber(ctx context.Context) (string, error)
}

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate entry")
)
