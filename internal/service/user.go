package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Noshedme/vendismarket/internal/hash"
	"github.com/Noshedme/vendismarket/internal/models"
	"github.com/Noshedme/vendismarket/internal/repo"
	"github.com/Noshedme/vendismarket/internal/transport"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleCajero  = "cajero"
	RoleCliente = "cliente"

	accessTokenTTL = 15 * time.Minute
)

func validRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCajero, RoleCliente:
		return true
	}
	return false
}

type UserService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func (s *UserService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: email requerido", ErrValidation)
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("%w: la contrasena debe tener al menos 6 caracteres", ErrValidation)
	}

	role := req.Role
	if role == "" {
		role = RoleCliente
	}
	if !validRole(role) {
		return nil, fmt.Errorf("%w: rol desconocido %q", ErrValidation, role)
	}

	if _, err := s.Repo.GetUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: el correo ya esta registrado", ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         role,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a short-lived HS256 access token.
// The token carries identity only; role checks stay on the client.
func (s *UserService) Login(ctx context.Context, req transport.LoginRequest) (*models.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", fmt.Errorf("%w: email y contrasena requeridos", ErrValidation)
	}

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("%w: credenciales invalidas", ErrUnauthorized)
	}
	if err != nil {
		return nil, "", err
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", fmt.Errorf("%w: credenciales invalidas", ErrUnauthorized)
	}

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.JWTSecret)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: usuario %d", ErrNotFound, id)
	}
	return user, err
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

func (s *UserService) PatchUser(ctx context.Context, req transport.PatchUserRequest, id uint) (*models.User, error) {
	if req.Role != nil && !validRole(*req.Role) {
		return nil, fmt.Errorf("%w: rol desconocido %q", ErrValidation, *req.Role)
	}

	user, err := s.Repo.GetUser(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: usuario %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.Repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	err := s.Repo.DeleteUser(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: usuario %d", ErrNotFound, id)
	}
	return err
}
