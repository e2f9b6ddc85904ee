package handler

// The auth endpoints keep the success/message contract the frontend was
// built against; all other endpoints use the service-wide error envelope.

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type registerResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    authUser `json:"user"`
}

type loginResponse struct {
	Success bool      `json:"success"`
	Role    string    `json:"role"`
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    *authUser `json:"user,omitempty"`
}

type authFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
