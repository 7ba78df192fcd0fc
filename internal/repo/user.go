package repo

import (
	"FileVault/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository определяет контракт доступа к User для слоя сервиса.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByEmail ищет пользователя по email. Отсутствие — gorm.ErrRecordNotFound.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// GetUserByID ищет пользователя по id. Отсутствие — gorm.ErrRecordNotFound.
	GetUserByID(ctx context.Context, id string) (*model.User, error)

	// CountUsers возвращает общее число пользователей.
	CountUsers(ctx context.Context) (int64, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if tx := r.db.WithContext(ctx).Create(user); tx.Error != nil {
		return nil, tx.Error
	}
	return user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if tx := r.db.WithContext(ctx).Where("email = ?", email).First(&u); tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if tx := r.db.WithContext(ctx).Where("id = ?", id).First(&u); tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *userRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if tx := r.db.WithContext(ctx).Model(&model.User{}).Count(&n); tx.Error != nil {
		return 0, tx.Error
	}
	return n, nil
}
