package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/silkroute/order-tracking-service/internal/domain"
)

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type DefaultAuthUsecase struct {
	Users    domain.UserRepository
	Secret   []byte
	TokenTTL time.Duration
}

func NewDefaultAuthUsecase(users domain.UserRepository, secret []byte, tokenTTL time.Duration) *DefaultAuthUsecase {
	return &DefaultAuthUsecase{
		Users:    users,
		Secret:   secret,
		TokenTTL: tokenTTL,
	}
}

// Register creates a user account. The team flag is fixed at registration
// and never changes afterwards.
func (uc *DefaultAuthUsecase) Register(input *RegisterInput, isTeam bool) (*domain.User, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	_, err := uc.Users.GetUserByEmail(input.Email)
	if err == nil {
		return nil, fmt.Errorf("%w: email already registered", domain.ErrValidation)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		IsTeam:       isTeam,
	}
	if err := uc.Users.CreateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *DefaultAuthUsecase) Login(email, password string) (string, *domain.User, error) {
	user, err := uc.Users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := NewToken(uc.Secret, user, uc.TokenTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// ActorFromToken resolves the identity carried by a bearer token.
func (uc *DefaultAuthUsecase) ActorFromToken(tokenString string) (domain.Actor, error) {
	claims, err := ValidateToken(tokenString, uc.Secret)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %v", domain.ErrInvalidCredentials, err)
	}

	return domain.Actor{UserID: claims.UserID, IsTeam: claims.IsTeam}, nil
}
