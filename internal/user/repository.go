package user

import (
	"context"
	"errors"

	"github.com/thesrcielos/SnakeArena/internal/apperrors"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// GormUserRepository returns (nil, nil) from the lookups when no row matches.
type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CreateUser(ctx context.Context, u *User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict("Email or username already registered")
	}
	if err != nil {
		return apperrors.Storage("Error creating user", err)
	}
	return nil
}

func (r *GormUserRepository) GetUser(ctx context.Context, id string) (*User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormUserRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *GormUserRepository) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *GormUserRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&User{}).Count(&n).Error; err != nil {
		return 0, apperrors.Storage("Error counting users", err)
	}
	return n, nil
}

func (r *GormUserRepository) first(ctx context.Context, query string, arg string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("Error getting user", err)
	}
	return &u, nil
}
