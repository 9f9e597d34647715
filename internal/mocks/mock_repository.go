package mocks

import (
	"newvision/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockNewsRepository
type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) FindAll() ([]models.News, error) {
	args := m.Called()
	return args.Get(0).([]models.News), args.Error(1)
}

func (m *MockNewsRepository) FindByID(id uint) (*models.News, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsRepository) Create(article *models.News) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockNewsRepository) Update(id uint, updates *models.NewsUpdate) (*models.News, error) {
	args := m.Called(id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockNewsRepository) IncrementViews(id uint) (int, error) {
	args := m.Called(id)
	return args.Int(0), args.Error(1)
}

func (m *MockNewsRepository) SetDisplayOrder(orders []models.NewsOrder) (int, error) {
	args := m.Called(orders)
	return args.Int(0), args.Error(1)
}

// Shared MockVideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) FindAll() ([]models.Video, error) {
	args := m.Called()
	return args.Get(0).([]models.Video), args.Error(1)
}

func (m *MockVideoRepository) Create(video *models.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockFacebookPostRepository
type MockFacebookPostRepository struct {
	mock.Mock
}

func (m *MockFacebookPostRepository) FindAll() ([]models.FacebookPost, error) {
	args := m.Called()
	return args.Get(0).([]models.FacebookPost), args.Error(1)
}

func (m *MockFacebookPostRepository) Create(post *models.FacebookPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockFacebookPostRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockSettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get() (map[string]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockSettingsRepository) Update(values map[string]string) (map[string]string, error) {
	args := m.Called(values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByLogin(login string) (*models.User, error) {
	args := m.Called(login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}
