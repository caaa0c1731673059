package services

import (
	"context"
	"errors"
	"log"
	"time"

	"travelcompanion/internal/infra"
	"travelcompanion/internal/models/db_models"
	"travelcompanion/internal/models/request_models"
	"travelcompanion/internal/models/response_models"
	"travelcompanion/internal/repositories"
	"travelcompanion/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.SignUpRequest) (response_models.User, error)
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
	GetUser(ctx context.Context, userID string) (response_models.User, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
	cfg      *infra.Config
}

func NewAccountService(userRepo repositories.UserRepository, cfg *infra.Config) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (a *AccountService) Register(ctx context.Context, req request_models.SignUpRequest) (response_models.User, error) {
	existingUsername, err := a.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return response_models.User{}, utils.ErrDatabaseError
	}
	existingEmail, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return response_models.User{}, utils.ErrDatabaseError
	}
	if existingUsername != nil || existingEmail != nil {
		return response_models.User{}, utils.ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return response_models.User{}, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			return response_models.User{}, utils.ErrUserAlreadyExists
		}
		log.Printf("Error creating user: %v", err)
		return response_models.User{}, utils.ErrDatabaseError
	}

	return toUserResponse(user), nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.HashedPassword, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	ttl := time.Duration(a.cfg.TokenExpireMinutes) * time.Minute
	token, err := utils.CreateToken(a.cfg.JWTSecret, user.ID, user.Username, ttl)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) GetUser(ctx context.Context, userID string) (response_models.User, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return response_models.User{}, utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.User{}, utils.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *db_models.User) response_models.User {
	return response_models.User{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}
}
