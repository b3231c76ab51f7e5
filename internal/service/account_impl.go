package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/casbin/casbin/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"visorhr.com/internal/auth"
	"visorhr.com/internal/domain"
	"visorhr.com/internal/model"
)

// AccountServiceImpl implements domain.AccountService on the GORM credential
// store with casbin-backed roles.
type AccountServiceImpl struct {
	db       *gorm.DB
	enforcer *casbin.Enforcer
}

func NewAccountService(db *gorm.DB, enforcer *casbin.Enforcer) *AccountServiceImpl {
	return &AccountServiceImpl{
		db:       db,
		enforcer: enforcer,
	}
}

func (s *AccountServiceImpl) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, domain.NewBadRequestError("Username and password are required.")
	}

	db := s.db.WithContext(ctx)

	var existing int64
	if err := db.Model(&model.User{}).Where("username = ?", username).Count(&existing).Error; err != nil {
		return nil, domain.NewInternalError("Failed to check username", err)
	}
	if existing > 0 {
		return nil, domain.NewConflictError("Username already exists.")
	}

	var total int64
	if err := db.Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, domain.NewInternalError("Failed to count users", err)
	}
	firstUser := total == 0

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewInternalError("Failed to hash password", err)
	}

	user := model.User{
		Username:    username,
		Email:       email,
		Password:    string(hashed),
		IsStaff:     firstUser,
		IsSuperuser: firstUser,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, domain.NewInternalError("Failed to create user", err)
	}

	s.grantRoles(&user)

	return &user, nil
}

// grantRoles records the user's casbin roles. The enforcer's autosave
// persists each grant through the adapter; a failed grant leaves the account
// usable and is logged.
func (s *AccountServiceImpl) grantRoles(user *model.User) {
	sub := auth.Subject(user.ID)
	if _, err := s.enforcer.AddGroupingPolicy(sub, auth.RoleStaff); err != nil {
		log.Printf("Failed to grant staff role to %s: %v", sub, err)
	}
	if user.IsSuperuser {
		if _, err := s.enforcer.AddGroupingPolicy(sub, auth.RoleAdmin); err != nil {
			log.Printf("Failed to grant admin role to %s: %v", sub, err)
		}
	}
}

func (s *AccountServiceImpl) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.NewBadRequestError("Username and password are required.")
	}

	var user model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewUnauthorizedError("Invalid credentials.")
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.NewUnauthorizedError("Invalid credentials.")
	}

	return &user, nil
}

func (s *AccountServiceImpl) UserExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, domain.NewInternalError("Failed to check username", err)
	}
	return count > 0, nil
}

func (s *AccountServiceImpl) IsAdmin(user *model.User) bool {
	hasRole, err := s.enforcer.HasRoleForUser(auth.Subject(user.ID), auth.RoleAdmin)
	if err != nil {
		return user.IsSuperuser
	}
	return hasRole || user.IsSuperuser
}
