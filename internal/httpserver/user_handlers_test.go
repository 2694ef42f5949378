package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Noshedme/vendismarket/internal/models"
	"github.com/Noshedme/vendismarket/internal/transport"
	"github.com/stretchr/testify/require"
)

func registerBody(email, password, role string) transport.RegisterRequest {
	return transport.RegisterRequest{
		Email:     email,
		Password:  password,
		FirstName: "Ana",
		LastName:  "Luna",
		Role:      role,
	}
}

func (env *testEnv) register(t *testing.T, email, password, role string) models.User {
	t.Helper()
	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/auth/register", registerBody(email, password, role))
	require.NoError(t, env.User.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var user models.User
	decodeJSON(t, rec, &user)
	return user
}

func TestRegisterDefaultsRole(t *testing.T) {
	env := newTestEnv(t)

	user := env.register(t, "Ana@Example.COM", "secreta1", "")
	require.Equal(t, "cliente", user.Role)
	// email is stored canonicalized
	require.Equal(t, "ana@example.com", user.Email)

	var stored models.User
	require.NoError(t, env.DB.First(&stored, user.ID).Error)
	require.NotEmpty(t, stored.PasswordHash)
	require.NotEqual(t, "secreta1", stored.PasswordHash)
}

func TestRegisterShortPassword(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/auth/register", registerBody("ana@example.com", "abc", ""))
	require.NoError(t, env.User.Register(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/auth/register", registerBody("ana@example.com", "secreta1", "gerente"))
	require.NoError(t, env.User.Register(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "ana@example.com", "secreta1", "")

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/auth/register", registerBody("ANA@example.com", "secreta2", ""))
	require.NoError(t, env.User.Register(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "caja@example.com", "secreta1", "cajero")

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/auth/login", transport.LoginRequest{
		Email:    "caja@example.com",
		Password: "secreta1",
	})
	require.NoError(t, env.User.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success     bool        `json:"success"`
		Role        string      `json:"role"`
		AccessToken string      `json:"access_token"`
		User        models.User `json:"user"`
	}
	decodeJSON(t, rec, &resp)
	require.True(t, resp.Success)
	require.Equal(t, "cajero", resp.Role)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "caja@example.com", resp.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "ana@example.com", "secreta1", "")

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/auth/login", transport.LoginRequest{
		Email:    "ana@example.com",
		Password: "otra",
	})
	require.NoError(t, env.User.Login(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/auth/login", transport.LoginRequest{
		Email:    "nadie@example.com",
		Password: "secreta1",
	})
	require.NoError(t, env.User.Login(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/users/7", nil)
	c.SetParamNames("id")
	c.SetParamValues("7")
	require.NoError(t, env.User.GetUser(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPatchUserRole(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "ana@example.com", "secreta1", "")

	rec, c := env.doJSONRequest(http.MethodPatch, "/api/v1/users/1", map[string]any{"role": "admin"})
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(user.ID))
	require.NoError(t, env.User.PatchUser(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	decodeJSON(t, rec, &got)
	require.Equal(t, "admin", got.Role)
	require.Equal(t, "Ana", got.FirstName)
}

func TestPatchUserUnknownRole(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "ana@example.com", "secreta1", "")

	rec, c := env.doJSONRequest(http.MethodPatch, "/api/v1/users/1", map[string]any{"role": "superusuario"})
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(user.ID))
	require.NoError(t, env.User.PatchUser(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "ana@example.com", "secreta1", "")

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/v1/users/1", nil)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(user.ID))
	require.NoError(t, env.User.DeleteUser(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}
