package repository

import (
	"errors"
	"strings"

	"newvision/internal/filestore"
	"newvision/internal/models"

	"gorm.io/gorm"
)

const usersFile = "users.json"

type UserRepository interface {
	FindByLogin(login string) (*models.User, error)
	Count() (int64, error)
	Create(user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByLogin matches the username or the email, the way the admin login
// form submits either.
func (r *userRepository) FindByLogin(login string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ? OR email = ?", login, login).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

type fileUserRepository struct {
	store *filestore.Store
}

func NewFileUserRepository(store *filestore.Store) (UserRepository, error) {
	if err := store.Init(usersFile, []models.User{}); err != nil {
		return nil, err
	}
	return &fileUserRepository{store: store}, nil
}

func (r *fileUserRepository) FindByLogin(login string) (*models.User, error) {
	var users []models.User
	if err := r.store.Read(usersFile, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Username, login) || strings.EqualFold(users[i].Email, login) {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *fileUserRepository) Count() (int64, error) {
	var users []models.User
	if err := r.store.Read(usersFile, &users); err != nil {
		return 0, err
	}
	return int64(len(users)), nil
}

func (r *fileUserRepository) Create(user *models.User) error {
	var users []models.User
	return r.store.Update(usersFile, &users, func() (bool, error) {
		var max uint
		for _, u := range users {
			if u.ID > max {
				max = u.ID
			}
		}
		user.ID = max + 1
		users = append(users, *user)
		return true, nil
	})
}
