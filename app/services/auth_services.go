package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shashiranjanraj/donorlink/app/models"
	"github.com/shashiranjanraj/donorlink/app/repositories"
	"github.com/shashiranjanraj/donorlink/pkg/auth"
	"github.com/shashiranjanraj/donorlink/pkg/errs"
	"github.com/shashiranjanraj/donorlink/pkg/logger"
	"gorm.io/gorm"
)

// RegisterInput is the registerUser body. isAdmin is accepted for wire
// compatibility and ignored.
type RegisterInput struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,max=100"`
	Mobile      string `json:"mobile" validate:"required,max=100"`
	Password    string `json:"password" validate:"required,max=72"`
	IsAdmin     bool   `json:"isAdmin"`
	Address     string `json:"address" validate:"required,max=100"`
	BloodGroup  string `json:"bloodGroup" validate:"required,max=3"`
	HospitalID  *uint  `json:"hospital_id" validate:"required"`
	IsAlive     bool   `json:"isAlive"`
	IsDonor     bool   `json:"isDonor"`
	IsRecipient bool   `json:"isRecipient"`
}

// AuthResult is returned by a successful authenticateUser. Token is the
// user id, kept for existing clients; AccessToken is a signed JWT.
type AuthResult struct {
	Token       uint   `json:"token"`
	IsAdmin     bool   `json:"isAdmin"`
	AccessToken string `json:"accessToken"`
}

const (
	msgUserNotFound      = "User not found"
	msgIncorrectPassword = "Incorrect password"
	msgUserAlreadyFound  = "User already found"
	msgPasswordTooLong   = "The password may not be greater than 72 bytes."
)

type AuthService struct {
	users  *repositories.UserRepository
	hasher auth.PasswordHasher
}

func NewAuthService(hasher auth.PasswordHasher) *AuthService {
	return &AuthService{
		users:  repositories.NewUserRepository(),
		hasher: hasher,
	}
}

// Register creates a non-admin user. Names are stored upper-cased and the
// email lower-cased; a second registration differing only in email case is
// a Conflict.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return models.User{}, errs.NewConflictError(msgUserAlreadyFound)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return models.User{}, fmt.Errorf("register: lookup email: %w", err)
	}

	hashed, err := s.hash(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	user := models.User{
		FirstName:   strings.ToUpper(in.FirstName),
		LastName:    strings.ToUpper(in.LastName),
		Email:       email,
		Mobile:      in.Mobile,
		Password:    hashed,
		IsAdmin:     false,
		Address:     in.Address,
		BloodGroup:  in.BloodGroup,
		HospitalID:  in.HospitalID,
		IsAlive:     in.IsAlive,
		IsDonor:     in.IsDonor,
		IsRecipient: in.IsRecipient,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return models.User{}, fmt.Errorf("register: create: %w", err)
	}

	logger.WithCtx(ctx).Info("user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate checks email/password and issues the login result.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.verify(ctx, email, password)
	if err != nil {
		return AuthResult{}, err
	}

	token, err := auth.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return AuthResult{}, fmt.Errorf("authenticate: %w", err)
	}

	return AuthResult{Token: user.ID, IsAdmin: user.IsAdmin, AccessToken: token}, nil
}

// ForgotPassword replaces the user's password with a random six-digit code
// and returns the code.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	code, err := temporaryPassword()
	if err != nil {
		return "", fmt.Errorf("forgot password: %w", err)
	}
	if err := s.setPassword(ctx, user.ID, code); err != nil {
		return "", fmt.Errorf("forgot password: %w", err)
	}

	logger.WithCtx(ctx).Info("temporary password issued", "user_id", user.ID)
	return code, nil
}

// ChangePassword replaces the password after checking the old one.
func (s *AuthService) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	user, err := s.verify(ctx, email, oldPassword)
	if err != nil {
		return err
	}
	if err := s.setPassword(ctx, user.ID, newPassword); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

func (s *AuthService) verify(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if !s.hasher.Check(user.Password, password) {
		return models.User{}, errs.NewUnauthorizedError(msgIncorrectPassword)
	}
	return user, nil
}

func (s *AuthService) findByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, errs.NewNotFoundError(msgUserNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("lookup email: %w", err)
	}
	return user, nil
}

func (s *AuthService) setPassword(ctx context.Context, userID uint, plain string) error {
	hashed, err := s.hash(plain)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, hashed)
}

// hash reports input the hasher cannot store as a 422. Validation bounds
// characters, so multi-byte passwords can still get here.
func (s *AuthService) hash(plain string) (string, error) {
	hashed, err := s.hasher.Hash(plain)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return "", errs.NewUnprocessableError(msgPasswordTooLong)
	}
	return hashed, err
}

// temporaryPassword returns a uniformly random code in [100000, 999999].
func temporaryPassword() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
