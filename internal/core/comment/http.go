// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell-cms/inkwell/internal/platform/middleware"
	requestutil "github.com/inkwell-cms/inkwell/internal/platform/request"
	"github.com/inkwell-cms/inkwell/internal/platform/respond"
	"github.com/inkwell-cms/inkwell/internal/platform/validate"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements the discussion HTTP endpoints.
type Handler struct {
	commentService  *Service
	defaultPageSize int
}

// NewHandler constructs a new [Handler] with its service dependency and the
// configured per-page default for listings.
func NewHandler(service *Service, defaultPageSize int) *Handler {
	return &Handler{commentService: service, defaultPageSize: defaultPageSize}
}

// Routes returns a [chi.Router] configured with comment routes.
//
// # Endpoints
//   - GET    /                     : Lists comments, filterable by post (public).
//   - GET    /{commentID}          : Returns one comment (public).
//   - POST   /                     : Posts a new comment (starts pending).
//   - PATCH  /{commentID}          : Rewrites a comment's content.
//   - PATCH  /{commentID}/approve  : Approves a pending comment.
//   - DELETE /{commentID}          : Removes a comment, detaching replies.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints (moderators get extended status visibility)
	router.Get("/", handler.list)
	router.Get("/{commentID}", handler.get)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.create)
		r.Patch("/{commentID}", handler.update)
		r.Patch("/{commentID}/approve", handler.approve)
		r.Delete("/{commentID}", handler.remove)
	})

	return router
}

// # Request Payloads

type createRequest struct {
	PostID   string  `json:"post_id"`
	ParentID *string `json:"parent_id"`
	Content  string  `json:"content"`
}

type updateRequest struct {
	Content string `json:"content"`
}

/*
List returns a filtered, paginated page of comments.

GET /api/v1/comments?post=&status=&page=&limit=&order=

Description: Callers below EDITOR tier are silently restricted to approved
comments regardless of the status filter.

Response:
  - 200: PaginatedEnvelope: Comments plus pagination metadata
  - 400: ErrValidation: Unknown status filter value
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	queryValues := request.URL.Query()

	status := queryValues.Get("status")
	validator := &validate.Validator{}
	if status != "" {
		validator.OneOf(FieldStatus, status, StatusPending, StatusApproved)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := ListFilter{
		PostID: queryValues.Get("post"),
		Status: status,
	}
	params := pagination.FromRequest(request, handler.defaultPageSize)

	comments, total, err := handler.commentService.List(request.Context(), requestutil.Claims(request), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, comments, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
Get returns a single comment.

GET /api/v1/comments/{commentID}

Response:
  - 200: Comment
  - 404: ErrNotFound: Unknown comment
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	entry, err := handler.commentService.Get(request.Context(), requestutil.ID(request, "commentID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
Create posts a new comment owned by the caller.

POST /api/v1/comments

Request:
  - Body: createRequest (PostID, Content required; ParentID optional)

Response:
  - 201: Comment: Created entity in pending state
  - 400: ErrInvalidJSON: Bad input, validation failure, or cross-post reply
  - 401: ErrUnauthorized: Missing or invalid token
  - 404: ErrNotFound: Unknown parent comment
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
	validator.Required(FieldPostID, input.PostID).
		UUID(FieldPostID, input.PostID).
		Required(FieldContent, input.Content).
		MaxLen(FieldContent, input.Content, 5000)
	if input.ParentID != nil {
		validator.UUID(FieldParent, *input.ParentID)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.commentService.Create(request.Context(), caller, CreateInput{
		PostID:   input.PostID,
		ParentID: input.ParentID,
		Content:  input.Content,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

/*
Update rewrites a comment's content.

PATCH /api/v1/comments/{commentID}

Response:
  - 200: Comment: Updated entity
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Not the owner and not an admin
  - 404: ErrNotFound: Unknown comment
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

	validator := &validate.Validator{}
	validator.Required(FieldContent, input.Content).
		MaxLen(FieldContent, input.Content, 5000)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.commentService.Update(request.Context(), caller, requestutil.ID(request, "commentID"), input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
Approve marks a pending comment as publicly visible.

PATCH /api/v1/comments/{commentID}/approve

Response:
  - 200: Comment: Updated entity
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Below EDITOR tier
  - 404: ErrNotFound: Unknown comment
*/
func (handler *Handler) approve(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.commentService.Approve(request.Context(), caller, requestutil.ID(request, "commentID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

/*
Remove deletes a comment and promotes its replies to top level.

DELETE /api/v1/comments/{commentID}

Response:
  - 204: No content
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Not the owner and below EDITOR tier
  - 404: ErrNotFound: Unknown comment
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.commentService.Delete(request.Context(), caller, requestutil.ID(request, "commentID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
