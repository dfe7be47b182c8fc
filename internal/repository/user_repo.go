package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/model"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/storage"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByLogin(ctx context.Context, login string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	UpdatePassword(ctx context.Context, userID uint, hash string) error
	CreatePasswordReset(ctx context.Context, reset *model.PasswordReset) error
	FindValidReset(ctx context.Context, token string) (*model.PasswordReset, error)
	ConsumeReset(ctx context.Context, id uint) error
}

type userRepository struct {
	db *storage.DB
}

func NewUserRepository(db *storage.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.Gorm().WithContext(ctx).Create(user).Error; err != nil {
		if storage.IsUniqueViolation(err) {
			return apierror.Conflict("username or email already registered")
		}
		return apierror.Storage("create user", err)
	}
	return nil
}

// FindByLogin matches either username or email, the way the login form
// accepts both.
func (r *userRepository) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	var user model.User
	err := r.db.Gorm().WithContext(ctx).
		Where("username = ? OR email = ?", login, login).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNoRows
	}
	if err != nil {
		return nil, apierror.Storage("find user", err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.Gorm().WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNoRows
	}
	if err != nil {
		return nil, apierror.Storage("find user", err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.Gorm().WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNoRows
	}
	if err != nil {
		return nil, apierror.Storage("find user", err)
	}
	return &user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID uint, hash string) error {
	err := r.db.Gorm().WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Update("password", hash).Error
	if err != nil {
		return apierror.Storage("update password", err)
	}
	return nil
}

func (r *userRepository) CreatePasswordReset(ctx context.Context, reset *model.PasswordReset) error {
	if err := r.db.Gorm().WithContext(ctx).Create(reset).Error; err != nil {
		return apierror.Storage("create password reset", err)
	}
	return nil
}

func (r *userRepository) FindValidReset(ctx context.Context, token string) (*model.PasswordReset, error) {
	var reset model.PasswordReset
	err := r.db.Gorm().WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, time.Now()).
		First(&reset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNoRows
	}
	if err != nil {
		return nil, apierror.Storage("find password reset", err)
	}
	return &reset, nil
}

func (r *userRepository) ConsumeReset(ctx context.Context, id uint) error {
	if err := r.db.Gorm().WithContext(ctx).Delete(&model.PasswordReset{}, id).Error; err != nil {
		return apierror.Storage("consume password reset", err)
	}
	return nil
}
