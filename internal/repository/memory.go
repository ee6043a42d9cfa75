package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/user-management/internal/domain"
)

// memoryUserRepository keeps users in process memory. It backs the service
// when no POSTGRES_DSN is configured and is the store used by tests. It
// enforces the same email uniqueness contract as the SQL implementation.
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  map[string]domain.User
	byMail map[string]string
	seq    int64
}

// NewMemoryUserRepository creates an empty in-memory store.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users:  make(map[string]domain.User),
		byMail: make(map[string]string),
	}
}

func (r *memoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byMail[user.Email]; exists {
		return ErrDuplicateEmail
	}

	// seq keeps ordering stable when clock readings collide.
	r.seq++
	now := time.Now().Add(time.Duration(r.seq) * time.Nanosecond)
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	r.byMail[user.Email] = user.ID
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.users[user.ID]
	if !exists {
		return ErrNotFound
	}
	if id, taken := r.byMail[user.Email]; taken && id != user.ID {
		return ErrDuplicateEmail
	}

	delete(r.byMail, current.Email)
	user.CreatedAt = current.CreatedAt
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	r.byMail[user.Email] = user.ID
	return nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byMail[email]
	if !exists {
		return nil, ErrNotFound
	}
	user := r.users[id]
	return &user, nil
}

func (r *memoryUserRepository) List(_ context.Context, limit, offset int) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ordered := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		ordered = append(ordered, user)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	if offset >= len(ordered) {
		return []domain.User{}, nil
	}
	end := offset + limit
	if end > len(ordered) {
		end = len(ordered)
	}
	return ordered[offset:end], nil
}

func (r *memoryUserRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}
