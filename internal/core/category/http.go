// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package category

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell-cms/inkwell/internal/platform/apperr"
	"github.com/inkwell-cms/inkwell/internal/platform/middleware"
	requestutil "github.com/inkwell-cms/inkwell/internal/platform/request"
	"github.com/inkwell-cms/inkwell/internal/platform/respond"
	"github.com/inkwell-cms/inkwell/internal/platform/sec"
	"github.com/inkwell-cms/inkwell/internal/platform/validate"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements the category HTTP endpoints.
type Handler struct {
	categoryService *Service
	defaultPageSize int
}

// NewHandler constructs a new [Handler] with its service dependency and the
// configured per-page default for listings.
func NewHandler(service *Service, defaultPageSize int) *Handler {
	return &Handler{categoryService: service, defaultPageSize: defaultPageSize}
}

// Routes returns a [chi.Router] configured with category routes.
//
// # Endpoints
//   - GET    /                 : Lists categories (public).
//   - GET    /{categoryID}     : Returns one category (public).
//   - GET    /by-slug/{slug}   : Returns one category by slug (public).
//   - POST   /                 : Creates a category (EDITOR+).
//   - PATCH  /{categoryID}     : Renames a category (EDITOR+).
//   - DELETE /{categoryID}     : Removes a category (EDITOR+).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/", handler.list)
	router.Get("/{categoryID}", handler.get)
	router.Get("/by-slug/{slug}", handler.getBySlug)

	// Staff endpoints. The router gate rejects low-tier callers before the
	// body is read; the service re-checks the same policy.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleEditor))
		r.Post("/", handler.create)
		r.Patch("/{categoryID}", handler.update)
		r.Delete("/{categoryID}", handler.remove)
	})

	return router
}

// # Request Payloads

type mutateRequest struct {
	Name string `json:"name"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request, handler.defaultPageSize)

	categories, total, err := handler.categoryService.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, categories, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := numericID(request, "categoryID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.categoryService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	entry, err := handler.categoryService.GetBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
Create adds a new category.

POST /api/v1/categories

Response:
  - 201: Category
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Below EDITOR tier
  - 409: ErrConflict: Duplicate slug
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input mutateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 100)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.categoryService.Create(request.Context(), caller, input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := numericID(request, "categoryID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input mutateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 100)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.categoryService.Update(request.Context(), caller, id, input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := numericID(request, "categoryID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.categoryService.Delete(request.Context(), caller, id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// numericID parses an integer URL parameter; a non-numeric value is treated
// as a missing resource rather than a validation failure.
func numericID(request *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(requestutil.ID(request, name))
	if err != nil {
		return 0, apperr.NotFound("Category")
	}
	return id, nil
}
