package auth

// LoginRequest is the body shared by the three login endpoints.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the actor profile the
// frontend needs for its header.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
	Actor     Actor  `json:"actor"`
}

// Actor is the authenticated principal's public profile.
type Actor struct {
	ID    uint   `json:"id"`
	Ref   string `json:"ref,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
