package api

import (
	"context"
	"net/http"
)

type AuthService struct {
	c *Client
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login authenticates and stores the returned token pair.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) error {
	var resp LoginResponse
	if err := s.c.do(ctx, http.MethodPost, "/auth/login", req, &resp, nil); err != nil {
		return err
	}
	return s.c.session.SetTokens(resp.AccessToken, resp.RefreshToken)
}

// Logout revokes the refresh token server-side and clears the local session
// either way.
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	if clearErr := s.c.session.Clear(); clearErr != nil {
		return clearErr
	}
	return err
}
