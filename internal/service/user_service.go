package service

import (
	"context"
	"errors"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/infra/repository/db"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotExist       = errors.New("user is not exist")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type IUserService interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	GetUser(ctx context.Context, userID uint) (*model.User, error)
	UpdateProfile(ctx context.Context, user *model.User) (*model.User, error)
	ListUsers(ctx context.Context, actor *model.Actor) ([]model.User, error)
}

type UserService struct {
	userRepo db.IUserRepository
}

func NewUserService(userRepo db.IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// 註冊一律給customer角色，管理員帳號由seed建立
func (u *UserService) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	if len(params.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	if _, err := u.userRepo.GetUserByEmail(ctx, params.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, db.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     params.Name,
		Email:    params.Email,
		Password: string(hashed),
		Role:     model.RoleCustomer,
		Phone:    params.Phone,
		Address:  params.Address,
	}
	return u.userRepo.CreateUser(ctx, user)
}

// 驗證失敗不透露是帳號不存在還是密碼錯誤
func (u *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, db.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (u *UserService) GetUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if errors.Is(err, db.ErrUserNotFound) {
		return nil, ErrUserNotExist
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// 角色與密碼不在此更新，沒提供的欄位維持原值
func (u *UserService) UpdateProfile(ctx context.Context, user *model.User) (*model.User, error) {
	existing, err := u.GetUser(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	if user.Name != "" {
		existing.Name = user.Name
	}
	if user.Phone != "" {
		existing.Phone = user.Phone
	}
	if user.Address != "" {
		existing.Address = user.Address
	}
	if user.City != "" {
		existing.City = user.City
	}
	if user.Country != "" {
		existing.Country = user.Country
	}

	if err := u.userRepo.UpdateUser(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// 僅管理員可列出所有用戶
func (u *UserService) ListUsers(ctx context.Context, actor *model.Actor) ([]model.User, error) {
	if !actor.HasAdminPrivilege() {
		return nil, ErrAccessDenied
	}
	return u.userRepo.GetAllUsers(ctx)
}

var _ IUserService = (*UserService)(nil)
