package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/user"
)

type loginInput struct {
	Body loginRequest
}

type loginRequest struct {
	Email    string `json:"email" format:"email" doc:"Account email"`
	Password string `json:"password" minLength:"1" doc:"Account password"`
}

type loginOutput struct {
	Body loginResponse
}

type loginResponse struct {
	Token string      `json:"token"`
	User  accountView `json:"user"`
}

type logoutOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}

type meOutput struct {
	Body accountView
}

// accountView is the safe projection of a user: no password hash.
type accountView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      user.Role `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toAccountView(u user.User) accountView {
	return accountView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
