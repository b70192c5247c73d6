package service

import (
	"context"
	"sync"
	"time"

	"cityscope/internal/apperror"
	"cityscope/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeUserRepository is an in-memory credential store for end-to-end service
// tests; it mirrors the real repository's conflict behavior.
type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*model.User)}
}

func (f *fakeUserRepository) Insert(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperror.Conflict("Email already registered")
		}
		if existing.Username == user.Username {
			return apperror.Conflict("Username already taken")
		}
	}

	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (f *fakeUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if user, ok := f.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperror.NotFound("user not found")
}

type fakeNotifier struct {
	registered chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{registered: make(chan string, 1)}
}

func (f *fakeNotifier) NotifyUserRegistered(userID string, username string) error {
	f.registered <- username
	return nil
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type MockSavedCityRepository struct {
	mock.Mock
}

func (m *MockSavedCityRepository) Upsert(ctx context.Context, city *model.SavedCity) (*model.SavedCity, error) {
	args := m.Called(ctx, city)
	saved, _ := args.Get(0).(*model.SavedCity)
	return saved, args.Error(1)
}

func (m *MockSavedCityRepository) Delete(ctx context.Context, userID string, cityID string) error {
	return m.Called(ctx, userID, cityID).Error(0)
}

func (m *MockSavedCityRepository) ListByUser(ctx context.Context, userID string, params model.PageParams) (*model.Page[model.SavedCity], error) {
	args := m.Called(ctx, userID, params)
	page, _ := args.Get(0).(*model.Page[model.SavedCity])
	return page, args.Error(1)
}
