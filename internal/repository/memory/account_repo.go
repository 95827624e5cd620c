package memory

import (
	"banking_ledger/internal/domain"
	"banking_ledger/internal/repository"
	"context"
	"fmt"
	"strconv"
	"sync"
)

type AccountRepository struct {
	mu         sync.RWMutex
	accounts   map[string]domain.Account
	ownerIndex map[string][]string
	lastNumber int
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts:   make(map[string]domain.Account),
		ownerIndex: make(map[string][]string),
	}
}

func (r *AccountRepository) Save(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Number()]; exists {
		return fmt.Errorf("%w: account %s", repository.ErrDuplicate, account.Number())
	}

	r.accounts[account.Number()] = account

	if owner := account.Owner(); owner != nil {
		r.ownerIndex[owner.NationalID] = append(r.ownerIndex[owner.NationalID], account.Number())
	}
	if n, err := strconv.Atoi(account.Number()); err == nil && n > r.lastNumber {
		r.lastNumber = n
	}

	return nil
}

func (r *AccountRepository) GetByNumber(ctx context.Context, number string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[number]
	if !exists {
		return nil, fmt.Errorf("%w: account %s", repository.ErrNotFound, number)
	}
	return account, nil
}

func (r *AccountRepository) GetByOwner(ctx context.Context, nationalID string) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	numbers, exists := r.ownerIndex[nationalID]
	if !exists {
		return nil, fmt.Errorf("%w: owner %s", repository.ErrNotFound, nationalID)
	}

	var result []domain.Account
	for _, number := range numbers {
		if account, exists := r.accounts[number]; exists {
			result = append(result, account)
		}
	}

	return result, nil
}

// NextNumber returns the number following the highest numeric account saved so far.
func (r *AccountRepository) NextNumber(ctx context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return strconv.Itoa(r.lastNumber + 1), nil
}
