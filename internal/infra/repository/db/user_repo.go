package db

import (
	"context"
	"errors"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"gorm.io/gorm"
)

// ErrUserNotFound 用戶不存在
var ErrUserNotFound = errors.New("user not found")

type UserRepo struct {
	dbDao *DbDao
}

func NewUserRepo(dbDao *DbDao) *UserRepo {
	return &UserRepo{dbDao: dbDao}
}

// Create - 創建用戶
func (s *UserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := s.dbDao.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Read - 根據ID查詢用戶
func (s *UserRepo) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := s.dbDao.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Read - 根據Email查詢用戶
func (s *UserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.dbDao.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Read - 查詢所有用戶
func (s *UserRepo) GetAllUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.dbDao.WithContext(ctx).Find(&users).Error
	return users, err
}

// Update - 更新用戶
func (s *UserRepo) UpdateUser(ctx context.Context, user *model.User) error {
	return s.dbDao.WithContext(ctx).Save(user).Error
}

// Delete - 軟刪除用戶
func (s *UserRepo) DeleteUser(ctx context.Context, id uint) error {
	return s.dbDao.WithContext(ctx).Delete(&model.User{}, id).Error
}

var _ IUserRepository = (*UserRepo)(nil)
