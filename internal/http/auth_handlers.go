package httpapi

import (
	"net/http"

	"catacuti-backend-go/internal/services"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IsSignup bool   `json:"is_signup"`
	Name     string `json:"name"`
	Class    string `json:"class"`
	Gender   string `json:"gender"`
	School   string `json:"school"`
}

type LoginResponse struct {
	services.UserProfile
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// Login handles both signup and login, selected by is_signup.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeBody(r, &req); err != nil {
		s.badBody(w, err)
		return
	}
	profile, err := s.Service.Authenticate(r.Context(), services.AuthRequest{
		Email:    req.Email,
		Password: req.Password,
		IsSignup: req.IsSignup,
		Name:     req.Name,
		Class:    req.Class,
		Gender:   req.Gender,
		School:   req.School,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	token, exp, err := s.Tokens.CreateAccessToken(profile.ID, profile.Email, profile.Role)
	if err != nil {
		s.fail(w, r, services.WrapError(err, "issue token"))
		return
	}
	message := "Login successful"
	if req.IsSignup {
		message = "Registration successful"
	}
	WriteData(w, LoginResponse{UserProfile: profile, Token: token, ExpiresAt: exp}, message)
}
