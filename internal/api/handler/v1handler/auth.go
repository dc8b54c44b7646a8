package v1handler

import (
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) authRoutes() {
	h.public("POST /v1/auth/login", h.login)
	// tokens are stateless; clients drop them
	h.public("POST /v1/auth/logout", func(*http.Request) (any, error) { return nil, nil })
	h.admin("GET /v1/auth/me", func(r *http.Request) (any, error) {
		return map[string]string{"username": Username(r.Context())}, nil
	})
}

func (h *Handler) login(r *http.Request) (any, error) {
	var in loginRequest
	if err := decode(r, &in); err != nil {
		return nil, err
	}

	return h.deps.Auth.Login(r.Context(), in.Username, in.Password) //nolint: wrapcheck
}
