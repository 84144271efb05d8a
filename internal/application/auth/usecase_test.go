package auth

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesbi-api/internal/application/dto"
	"salesbi-api/internal/domain"
	"salesbi-api/pkg/config"
	"salesbi-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba-suficientemente-largo"

func newTestUseCase(t *testing.T) *UseCase {
	t.Helper()
	uc, err := NewUseCase(
		config.DashConfig{
			ExecutivePassword: "exec-pass",
			ManagerPassword:   "manager-pass",
			// DivHeadPassword vacía: cuenta deshabilitada
		},
		config.JWTConfig{Secret: testSecret, Expiration: 60, Issuer: "test"},
		zerolog.Nop(),
	)
	require.NoError(t, err)
	return uc
}

func TestLogin_Exitoso(t *testing.T) {
	uc := newTestUseCase(t)

	out, err := uc.Login(dto.LoginRequest{Username: "executive", Password: "exec-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "executive", out.User.Username)
	assert.Equal(t, RoleExecutive, out.User.Role)

	// El token emitido debe validar y traer el rol en los claims
	username, role, _, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "executive", username)
	assert.Equal(t, RoleExecutive, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "manager", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_CuentaDeshabilitada(t *testing.T) {
	uc := newTestUseCase(t)

	// Sin contraseña configurada la cuenta no acepta ningún login, ni siquiera vacío
	_, err := uc.Login(dto.LoginRequest{Username: "divisionshead", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
