package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/tpdoyle87/tomanddeb-sub001/internal/domain/user"
)

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Email    string `json:"email" format:"email" doc:"Account email"`
	Name     string `json:"name" maxLength:"80" doc:"Display name"`
	Password string `json:"password" minLength:"8" doc:"Initial password"`
	Role     string `json:"role" enum:"reader,author,editor,admin" doc:"Initial role"`
}

type createOutput struct {
	Body accountView
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Users []accountView `json:"users"`
}

type changeRoleInput struct {
	ID   uuid.UUID `path:"id" doc:"Target user ID"`
	Body changeRoleRequest
}

type changeRoleRequest struct {
	Role string `json:"role" enum:"reader,author,editor,admin" doc:"New role"`
}

type changeRoleOutput struct {
	Body accountView
}

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
