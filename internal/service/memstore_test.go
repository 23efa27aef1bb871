package service

import (
	"context"
	"sync"

	"go-calc-service/internal/model"
)

// memUserStore is an in-memory UserStore used by the service tests. It
// mirrors the database semantics: atomic create-or-fail on duplicates,
// case-sensitive username matching.
type memUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[int64]model.User{}}
}

func (s *memUserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return model.User{}, model.ErrDuplicateUser
		}
	}

	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = user
	return user, nil
}

func (s *memUserStore) FindByID(_ context.Context, id int64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return user, nil
}

func (s *memUserStore) FindByUsernameOrEmail(_ context.Context, identifier string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == identifier || user.Email == identifier {
			return user, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *memUserStore) ExistsByUsernameOrEmail(_ context.Context, username string, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *memUserStore) delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

type memCalculationStore struct {
	mu           sync.Mutex
	nextID       int64
	calculations map[int64]model.Calculation
}

func newMemCalculationStore() *memCalculationStore {
	return &memCalculationStore{calculations: map[int64]model.Calculation{}}
}

func (s *memCalculationStore) Create(_ context.Context, c model.Calculation) (model.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	c.ID = s.nextID
	s.calculations[c.ID] = c
	return c, nil
}

func (s *memCalculationStore) FindByID(_ context.Context, id int64) (model.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.calculations[id]
	if !ok {
		return model.Calculation{}, model.ErrCalculationNotFound
	}
	return c, nil
}

func (s *memCalculationStore) List(_ context.Context) ([]model.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Calculation, 0, len(s.calculations))
	for id := int64(1); id <= s.nextID; id++ {
		if c, ok := s.calculations[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memCalculationStore) Update(_ context.Context, c model.Calculation) (model.Calculation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.calculations[c.ID]; !ok {
		return model.Calculation{}, model.ErrCalculationNotFound
	}
	s.calculations[c.ID] = c
	return c, nil
}

func (s *memCalculationStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.calculations[id]; !ok {
		return model.ErrCalculationNotFound
	}
	delete(s.calculations, id)
	return nil
}
