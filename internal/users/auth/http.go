// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell-cms/inkwell/internal/platform/middleware"
	requestutil "github.com/inkwell-cms/inkwell/internal/platform/request"
	"github.com/inkwell-cms/inkwell/internal/platform/respond"
	"github.com/inkwell-cms/inkwell/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages the session entry points: credential exchange, token
// refresh, and principal introspection. Account creation lives in the user
// package because it is an account-management concern, not a session one.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /login         : Exchanges credentials for a signed JWT.
//   - POST /refresh-token : Re-issues a token with a fresh validity window.
//   - GET  /me            : Returns the account behind the presented token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/refresh-token", handler.refresh)
		r.Get("/me", handler.me)
	})

	return router
}

// # Request Payloads

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

/*
Login handles a credential exchange.

POST /api/v1/auth/login

Description: Validates input and trades a username/password pair for a signed
access token. Credential failures of any kind map to a single generic 401.

Request:
  - Body: loginRequest (Username, Password)

Response:
  - 200: tokenResponse: Signed JWT plus the authenticated profile
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: ErrUnauthorized: Unknown username or wrong password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Username: input.Username,
		Password: input.Password,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, tokenResponse{Token: session.Token, User: session.User})
}

/*
Refresh re-issues an access token for the authenticated caller.

POST /api/v1/auth/refresh-token

Description: Requires a currently valid token. The principal is re-read from
storage so the new token reflects any role changes since the old one was
minted.

Response:
  - 200: tokenResponse: Fresh token with a full validity window
  - 401: ErrUnauthorized: Missing, malformed, or expired token
  - 404: ErrNotFound: The account behind the token no longer exists
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.authService.Refresh(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, tokenResponse{Token: token})
}

/*
Me returns the live account record behind the presented token.

GET /api/v1/auth/me

Response:
  - 200: User: Hydrated profile (password hash omitted)
  - 401: ErrUnauthorized: Missing, malformed, or expired token
  - 404: ErrNotFound: The account behind the token no longer exists
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.ResolvePrincipal(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}
