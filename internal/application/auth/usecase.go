// Package auth implementa el stub de autenticación del dashboard: tres
// cuentas fijas cuyas contraseñas vienen del entorno. No hay persistencia de
// usuarios; una contraseña vacía deshabilita la cuenta.
package auth

import (
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"salesbi-api/internal/application/dto"
	"salesbi-api/internal/domain"
	"salesbi-api/pkg/config"
	"salesbi-api/pkg/jwt"
)

// Roles del dashboard. Cada rol habilita exactamente una vista.
const (
	RoleExecutive    = "executive"
	RoleManager      = "manager"
	RoleDivisionHead = "divisionshead"
)

type account struct {
	username string
	role     string
	division string // solo divisionshead; vacío = sin restricción
	hash     []byte // nil = cuenta deshabilitada
}

// UseCase resuelve login contra las cuentas fijas y emite JWT.
type UseCase struct {
	accounts map[string]account
	jwtCfg   config.JWTConfig
	log      zerolog.Logger
}

// NewUseCase hashea las contraseñas configuradas una sola vez al arranque.
func NewUseCase(dash config.DashConfig, jwtCfg config.JWTConfig, log zerolog.Logger) (*UseCase, error) {
	uc := &UseCase{
		accounts: make(map[string]account, 3),
		jwtCfg:   jwtCfg,
		log:      log,
	}

	seed := []struct {
		username, role, division, password string
	}{
		{"executive", RoleExecutive, "", dash.ExecutivePassword},
		{"manager", RoleManager, "", dash.ManagerPassword},
		{"divisionshead", RoleDivisionHead, "", dash.DivHeadPassword},
	}
	for _, s := range seed {
		acc := account{username: s.username, role: s.role, division: s.division}
		if s.password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			acc.hash = hash
		} else {
			log.Warn().Str("username", s.username).Msg("cuenta de dashboard sin contraseña configurada: deshabilitada")
		}
		uc.accounts[s.username] = acc
	}
	return uc, nil
}

// Login valida credenciales y emite un token con role y division en los
// claims. Credencial mala y cuenta deshabilitada devuelven el mismo error
// para no filtrar qué cuentas existen.
func (uc *UseCase) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	acc, ok := uc.accounts[req.Username]
	if !ok || acc.hash == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(req.Password)); err != nil {
		uc.log.Info().Str("username", req.Username).Msg("intento de login fallido")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, acc.username, acc.role, acc.division, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserDTO{
			Username: acc.username,
			Role:     acc.role,
			Division: acc.division,
		},
	}, nil
}
