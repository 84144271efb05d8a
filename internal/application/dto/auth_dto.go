package dto

// LoginRequest credenciales del stub de autenticación.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserDTO usuario del dashboard (cuenta fija, sin persistencia).
type UserDTO struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Division string `json:"division,omitempty"`
}

// LoginResponse token emitido más el usuario autenticado.
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
