package blob

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/StudyFlow-2025/task-service/internal/models"
	"github.com/StudyFlow-2025/task-service/internal/repositories"
	"github.com/StudyFlow-2025/task-service/internal/storage"
)

type UserBlob struct {
	store storage.Store
	key   string
	mu    sync.Mutex
}

func newUserBlob(store storage.Store, key string) repositories.UserRepository {
	return &UserBlob{store: store, key: key}
}

func (r *UserBlob) readAll(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := r.store.Get(ctx, r.key, &users); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}

func (r *UserBlob) writeAll(ctx context.Context, users []*models.User) error {
	if err := r.store.Set(ctx, r.key, users); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}
	return nil
}

func (r *UserBlob) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(filters.Query)
	result := make([]*models.User, 0, len(users))
	for _, u := range users {
		if filters.Role != nil && u.Role != *filters.Role {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(u.Name), query) &&
			!strings.Contains(strings.ToLower(u.Email), query) {
			continue
		}
		result = append(result, u)
	}
	return result, nil
}

func (r *UserBlob) GetByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// GetByEmail matches the stored email exactly (case-sensitive), like the
// reference behavior.
func (r *UserBlob) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserBlob) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

func (r *UserBlob) Create(ctx context.Context, user *models.User) error {
	if user.Name == "" || user.Email == "" || user.Password == "" {
		return repositories.ErrMissingFields
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Email == user.Email {
			return repositories.ErrDuplicateEmail
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	if user.Role == "" {
		user.Role = models.RoleStudent
	}

	return r.writeAll(ctx, append(users, user))
}

func (r *UserBlob) Update(ctx context.Context, id string, patch repositories.UserPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.readAll(ctx)
	if err != nil {
		return false, err
	}

	idx := -1
	for i, u := range users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	if patch.Email != nil && *patch.Email != users[idx].Email {
		for _, u := range users {
			if u.Email == *patch.Email {
				return false, repositories.ErrDuplicateEmail
			}
		}
		users[idx].Email = *patch.Email
	}
	if patch.Name != nil {
		users[idx].Name = *patch.Name
	}
	if patch.Password != nil {
		users[idx].Password = *patch.Password
	}
	if patch.Avatar != nil {
		users[idx].Avatar = patch.Avatar
	}
	if patch.Role != nil {
		users[idx].Role = *patch.Role
	}

	if err := r.writeAll(ctx, users); err != nil {
		return false, err
	}
	return true, nil
}

func (r *UserBlob) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.readAll(ctx)
	if err != nil {
		return false, err
	}

	filtered := users[:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, u)
	}
	if !found {
		return false, nil
	}

	if err := r.writeAll(ctx, filtered); err != nil {
		return false, err
	}
	return true, nil
}
