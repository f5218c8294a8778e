package request

type RegisterUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	IsAdmin   bool   `json:"isAdmin"`
}

type UpdateUserRequest struct {
	Password  *string `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

// UpdateMap flattens the provided fields for the partial-update builder. The
// password value is the plaintext here; the service swaps in the hash before
// building the statement.
func (r UpdateUserRequest) UpdateMap() map[string]any {
	updates := map[string]any{}
	if r.Password != nil {
		updates["password"] = *r.Password
	}
	if r.FirstName != nil {
		updates["firstName"] = *r.FirstName
	}
	if r.LastName != nil {
		updates["lastName"] = *r.LastName
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	return updates
}

type AuthenticateRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
