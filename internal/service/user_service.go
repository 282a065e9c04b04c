package service

import (
	"errors"
	"fmt"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrUsernameExists  = errors.New("username already exists")
	ErrAdminProtected  = errors.New("the ADMIN role cannot be removed or reassigned")
	ErrLastActiveAdmin = errors.New("cannot block the last active administrator")
	ErrRolesNotFound   = errors.New("one or more roles not found")
	ErrNoRolesAssigned = errors.New("at least one role must be assigned")
	ErrUnknownStatus   = errors.New("status must be Active or Blocked")
)

type UserService interface {
	GetAll() ([]model.UserResponse, error)
	GetByID(id uuid.UUID) (*model.UserResponse, error)
	Create(req *CreateUserRequest, creatorID string) (*model.User, error)
	Update(id uuid.UUID, req *UpdateUserRequest, updaterID string) (*model.User, error)
	SetStatus(id uuid.UUID, status model.UserStatus, updaterID string) (*model.User, error)
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"omitempty,email"`
	RoleIDs  []uint `json:"roleIds" validate:"required,min=1"`
}

type UpdateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"` // Optional
	RoleIDs  []uint  `json:"roleIds" validate:"required,min=1"`
}

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) UserService {
	return &userService{userRepo: userRepo, roleRepo: roleRepo}
}

func (s *userService) GetAll() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	response := user.ToResponse()
	return &response, nil
}

func (s *userService) Create(req *CreateUserRequest, creatorID string) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, _ := s.userRepo.FindByUsername(req.Username)
	if existing != nil {
		return nil, ErrUsernameExists
	}

	roles, err := s.resolveRoles(req.RoleIDs)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Status:   model.UserActive,
		Roles:    roles,
	}
	user.CreatedBy = creatorID
	user.UpdatedBy = creatorID

	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(id uuid.UUID, req *UpdateUserRequest, updaterID string) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.Username != user.Username {
		existing, _ := s.userRepo.FindByUsername(req.Username)
		if existing != nil {
			return nil, ErrUsernameExists
		}
	}

	roles, err := s.resolveRoles(req.RoleIDs)
	if err != nil {
		return nil, err
	}

	// ADMIN is protected: a user holding it must keep it
	if user.HasRole(model.RoleAdmin) && !containsRole(roles, model.RoleAdmin) {
		return nil, ErrAdminProtected
	}

	user.Username = req.Username
	user.Email = req.Email
	user.UpdatedBy = updaterID

	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	if err := s.userRepo.ReplaceRoles(user, roles); err != nil {
		return nil, err
	}

	return s.userRepo.FindByID(id)
}

// SetStatus toggles the soft Active/Blocked transition. Blocking the last
// active administrator would lock everyone out, so it is refused.
func (s *userService) SetStatus(id uuid.UUID, status model.UserStatus, updaterID string) (*model.User, error) {
	if status != model.UserActive && status != model.UserBlocked {
		return nil, ErrUnknownStatus
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if status == model.UserBlocked && user.HasRole(model.RoleAdmin) {
		count, err := s.userRepo.CountWithRole(model.RoleAdmin, model.UserActive)
		if err != nil {
			return nil, err
		}
		if count <= 1 {
			return nil, ErrLastActiveAdmin
		}
	}

	if err := s.userRepo.UpdateStatus(id, status, updaterID); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(id)
}

func (s *userService) resolveRoles(roleIDs []uint) ([]model.Role, error) {
	if len(roleIDs) == 0 {
		return nil, ErrNoRolesAssigned
	}
	roles, err := s.roleRepo.FindByIDs(roleIDs)
	if err != nil || len(roles) != len(dedupe(roleIDs)) {
		return nil, ErrRolesNotFound
	}
	return roles, nil
}

func containsRole(roles []model.Role, code string) bool {
	for _, r := range roles {
		if r.Code == code {
			return true
		}
	}
	return false
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
