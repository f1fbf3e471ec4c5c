// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package page

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

// Handler implements the static-page HTTP endpoints.
type Handler struct {
	pageService     *Service
	defaultPageSize int
}

// NewHandler constructs a new [Handler] with its service dependency and the
// configured per-page default for listings.
func NewHandler(service *Service, defaultPageSize int) *Handler {
	return &Handler{pageService: service, defaultPageSize: defaultPageSize}
}

// Routes returns a [chi.Router] configured with page routes.
//
// # Endpoints
//   - GET    /               : Lists pages (public).
//   - GET    /{pageID}       : Returns one page (public).
//   - GET    /by-slug/{slug} : Returns one page by slug (public).
//   - POST   /               : Creates a page (EDITOR+).
//   - PATCH  /{pageID}       : Partially updates a page (EDITOR+).
//   - DELETE /{pageID}       : Removes a page (EDITOR+).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Get("/", handler.list)
	router.Get("/{pageID}", handler.get)
	router.Get("/by-slug/{slug}", handler.getBySlug)

	// Staff endpoints. The router gate rejects low-tier callers before the
	// body is read; the service re-checks the same policy.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleEditor))
		r.Post("/", handler.create)
		r.Patch("/{pageID}", handler.update)
		r.Delete("/{pageID}", handler.remove)
	})

	return router
}

// # Request Payloads

type createRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type updateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request, handler.defaultPageSize)

	pages, total, err := handler.pageService.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, pages, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := numericID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.pageService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	entry, err := handler.pageService.GetBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
Create adds a new static page.

POST /api/v1/pages

Response:
  - 201: Page
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

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		Required(FieldContent, input.Content)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.pageService.Create(request.Context(), caller, CreateInput{
		Title:   input.Title,
		Content: input.Content,
	})

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

	id, err := numericID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title).
			MaxLen(FieldTitle, *input.Title, 200)
	}
	if input.Content != nil {
		validator.Required(FieldContent, *input.Content)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.pageService.Update(request.Context(), caller, id, UpdateInput{
		Title:   input.Title,
		Content: input.Content,
	})

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

	id, err := numericID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.pageService.Delete(request.Context(), caller, id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// numericID parses an integer URL parameter; a non-numeric value is treated
// as a missing resource rather than a validation failure.
func numericID(request *http.Request) (int, error) {
	id, err := strconv.Atoi(requestutil.ID(request, "pageID"))
	if err != nil {
		return 0, apperr.NotFound("Page")
	}
	return id, nil
}
