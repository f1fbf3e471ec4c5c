// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell-cms/inkwell/internal/platform/middleware"
	requestutil "github.com/inkwell-cms/inkwell/internal/platform/request"
	"github.com/inkwell-cms/inkwell/internal/platform/respond"
	"github.com/inkwell-cms/inkwell/internal/platform/validate"
	"github.com/inkwell-cms/inkwell/internal/users/auth"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements account management HTTP endpoints.
type Handler struct {
	userService     *Service
	defaultPageSize int
}

// NewHandler constructs a new [Handler] with its service dependency and the
// configured per-page default for listings.
func NewHandler(service *Service, defaultPageSize int) *Handler {
	return &Handler{userService: service, defaultPageSize: defaultPageSize}
}

// Routes returns a [chi.Router] configured with account routes.
//
// # Endpoints
//   - POST   /          : Registers a new account (public).
//   - GET    /          : Lists accounts, paginated.
//   - GET    /{userID}  : Returns one account.
//   - PATCH  /{userID}  : Partially updates an account.
//   - DELETE /{userID}  : Removes an account.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/", handler.register)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", handler.list)
		r.Get("/{userID}", handler.get)
		r.Patch("/{userID}", handler.update)
		r.Delete("/{userID}", handler.remove)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	DisplayName     string `json:"display_name"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Email           string `json:"email"`
	Biography       string `json:"biography"`
	Picture         string `json:"picture"`
}

type updateRequest struct {
	DisplayName     *string `json:"display_name"`
	Username        *string `json:"username"`
	Password        *string `json:"password"`
	ConfirmPassword *string `json:"confirm_password"`
	Email           *string `json:"email"`
	Biography       *string `json:"biography"`
	Picture         *string `json:"picture"`
	Role            *string `json:"role"`
}

/*
Register handles the creation of a new account.

POST /api/v1/users

Description: Validates all identity fields, enforces the password policy and
confirmation match, then persists a new account at the default tier.

Request:
  - Body: registerRequest

Response:
  - 201: auth.User: Created profile (password hash omitted)
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Username or email already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(auth.FieldDisplayName, input.DisplayName).
		Required(auth.FieldUsername, input.Username).
		MinLen(auth.FieldUsername, input.Username, 3).
		Required(auth.FieldPassword, input.Password).
		Password(auth.FieldPassword, input.Password).
		Required(auth.FieldConfirmPassword, input.ConfirmPassword).
		Match(auth.FieldConfirmPassword, input.Password, input.ConfirmPassword).
		Required(auth.FieldEmail, input.Email).
		Email(auth.FieldEmail, input.Email).
		MaxLen(auth.FieldBiography, input.Biography, 1000).
		MaxLen(auth.FieldPicture, input.Picture, 255)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.userService.Register(request.Context(), RegisterInput{
		DisplayName: input.DisplayName,
		Username:    input.Username,
		Password:    input.Password,
		Email:       input.Email,
		Biography:   input.Biography,
		PictureRef:  input.Picture,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, account)
}

/*
List returns a paginated page of accounts.

GET /api/v1/users?page=&limit=&order=

Response:
  - 200: PaginatedEnvelope: Accounts plus pagination metadata
  - 401: ErrUnauthorized: Missing or invalid token
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request, handler.defaultPageSize)

	accounts, total, err := handler.userService.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, accounts, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
Get returns a single account.

GET /api/v1/users/{userID}

Response:
  - 200: auth.User
  - 401: ErrUnauthorized: Missing or invalid token
  - 404: ErrNotFound: Unknown account
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	account, err := handler.userService.Get(request.Context(), requestutil.ID(request, "userID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

/*
Update partially modifies an account.

PATCH /api/v1/users/{userID}

Description: Only fields present in the payload are validated and applied.
The account ID comes exclusively from the URL; identity fields in the payload
are not part of the contract and cannot be smuggled in. Role changes require
the ADMIN role on top of the ownership check.

Request:
  - Body: updateRequest (all fields optional)

Response:
  - 200: auth.User: Updated profile
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Not the owner, not an admin, or role change denied
  - 404: ErrNotFound: Unknown account
  - 409: ErrConflict: New username or email already taken
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// Validate only what the payload actually carries.
	validator := &validate.Validator{}
	if input.DisplayName != nil {
		validator.Required(auth.FieldDisplayName, *input.DisplayName)
	}
	if input.Username != nil {
		validator.Required(auth.FieldUsername, *input.Username).
			MinLen(auth.FieldUsername, *input.Username, 3)
	}
	if input.Email != nil {
		validator.Required(auth.FieldEmail, *input.Email).
			Email(auth.FieldEmail, *input.Email)
	}
	if input.Password != nil {
		validator.Password(auth.FieldPassword, *input.Password)

		// A password change must always arrive with its confirmation.
		confirmation := ""
		if input.ConfirmPassword != nil {
			confirmation = *input.ConfirmPassword
		}
		validator.Match(auth.FieldConfirmPassword, *input.Password, confirmation)
	}
	if input.Biography != nil {
		validator.MaxLen(auth.FieldBiography, *input.Biography, 1000)
	}
	if input.Picture != nil {
		validator.MaxLen(auth.FieldPicture, *input.Picture, 255)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.userService.Update(request.Context(), caller, requestutil.ID(request, "userID"), UpdateInput{
		DisplayName: input.DisplayName,
		Username:    input.Username,
		Password:    input.Password,
		Email:       input.Email,
		Biography:   input.Biography,
		PictureRef:  input.Picture,
		Role:        input.Role,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account)
}

/*
Remove permanently deletes an account.

DELETE /api/v1/users/{userID}

Response:
  - 204: No content
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Not the owner and not an administrator
  - 404: ErrNotFound: Unknown account
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.userService.Delete(request.Context(), caller, requestutil.ID(request, "userID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
