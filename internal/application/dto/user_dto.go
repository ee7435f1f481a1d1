package dto

import "time"

// RegisterRequest entrada para registro público. Con CompanyName se crea una
// empresa nueva y el registrante queda como admin. Unirse a una empresa
// existente no pasa por aquí: lo hace un admin vía CreateUserRequest.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Name        string `json:"name" validate:"omitempty,max=200"`
	CompanyName string `json:"company_name" validate:"required,min=1,max=200"`
}

// CreateUserRequest alta de empleado dentro de la empresa del admin autenticado
// (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"required,oneof=admin gerente operario"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT de sesión (30 días).
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
