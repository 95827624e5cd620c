package memory

import (
	"banking_ledger/internal/domain"
	"banking_ledger/internal/repository"
	"context"
	"fmt"
	"sync"
)

type ClientRepository struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client
	order   []string
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{
		clients: make(map[string]*domain.Client),
	}
}

func (r *ClientRepository) Save(ctx context.Context, client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[client.NationalID]; exists {
		return fmt.Errorf("%w: client %s", repository.ErrDuplicate, client.NationalID)
	}

	r.clients[client.NationalID] = client
	r.order = append(r.order, client.NationalID)

	return nil
}

func (r *ClientRepository) GetByNationalID(ctx context.Context, nationalID string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, exists := r.clients[nationalID]
	if !exists {
		return nil, fmt.Errorf("%w: client %s", repository.ErrNotFound, nationalID)
	}
	return client, nil
}

func (r *ClientRepository) GetAll(ctx context.Context) ([]*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Client, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.clients[id])
	}

	return result, nil
}
