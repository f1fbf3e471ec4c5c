// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell-cms/inkwell/internal/platform/middleware"
	requestutil "github.com/inkwell-cms/inkwell/internal/platform/request"
	"github.com/inkwell-cms/inkwell/internal/platform/respond"
	"github.com/inkwell-cms/inkwell/internal/platform/validate"
	"github.com/inkwell-cms/inkwell/pkg/convert"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements the article HTTP endpoints.
type Handler struct {
	postService     *Service
	defaultPageSize int
}

// NewHandler constructs a new [Handler] with its service dependency and the
// configured per-page default for listings.
func NewHandler(service *Service, defaultPageSize int) *Handler {
	return &Handler{postService: service, defaultPageSize: defaultPageSize}
}

// Routes returns a [chi.Router] configured with article routes.
//
// # Endpoints
//   - GET    /          : Lists posts with optional filters (public).
//   - GET    /{postID}  : Returns one post (public; drafts hidden).
//   - POST   /          : Creates a post.
//   - PATCH  /{postID}  : Partially updates a post.
//   - DELETE /{postID}  : Removes a post.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints (authenticated callers get extended draft visibility)
	router.Get("/", handler.list)
	router.Get("/{postID}", handler.get)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.create)
		r.Patch("/{postID}", handler.update)
		r.Delete("/{postID}", handler.remove)
	})

	return router
}

// # Request Payloads

type createRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Status      string `json:"status"`
	CategoryIDs []int  `json:"category_ids"`
	TagIDs      []int  `json:"tag_ids"`
}

type updateRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Status      *string `json:"status"`
	CategoryIDs []int   `json:"category_ids"`
	TagIDs      []int   `json:"tag_ids"`
}

/*
List returns a filtered, paginated page of posts.

GET /api/v1/posts?page=&limit=&order=&author=&category=&tag=&status=

Description: Filters compose as AND constraints. Callers without draft
visibility are silently restricted to published posts.

Response:
  - 200: PaginatedEnvelope: Posts plus pagination metadata
  - 400: ErrValidation: Unknown status filter value
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	queryValues := request.URL.Query()

	status := queryValues.Get("status")
	validator := &validate.Validator{}
	if status != "" {
		validator.OneOf(FieldStatus, status, StatusDraft, StatusPublished)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.listWith(writer, request, ListFilter{
		AuthorID:   queryValues.Get("author"),
		CategoryID: convert.ToInt(queryValues.Get("category")),
		TagID:      convert.ToInt(queryValues.Get("tag")),
		Status:     status,
	})
}

// # Nested Listings
//
// The same listing pipeline is also reachable through the owning resource:
// /users/{userID}/posts, /categories/{categoryID}/posts, /tags/{tagID}/posts.
// The path parameter pins the corresponding filter; pagination and draft
// visibility behave exactly like the flat listing.

// ListByAuthor returns the posts written by one member.
//
// GET /api/v1/users/{userID}/posts
func (handler *Handler) ListByAuthor(writer http.ResponseWriter, request *http.Request) {
	handler.listWith(writer, request, ListFilter{AuthorID: requestutil.ID(request, "userID")})
}

// ListByCategory returns the posts filed under one category.
//
// GET /api/v1/categories/{categoryID}/posts
func (handler *Handler) ListByCategory(writer http.ResponseWriter, request *http.Request) {
	handler.listWith(writer, request, ListFilter{CategoryID: convert.ToInt(requestutil.ID(request, "categoryID"))})
}

// ListByTag returns the posts carrying one tag.
//
// GET /api/v1/tags/{tagID}/posts
func (handler *Handler) ListByTag(writer http.ResponseWriter, request *http.Request) {
	handler.listWith(writer, request, ListFilter{TagID: convert.ToInt(requestutil.ID(request, "tagID"))})
}

// listWith runs the shared listing pipeline for a prepared filter.
func (handler *Handler) listWith(writer http.ResponseWriter, request *http.Request, filter ListFilter) {
	params := pagination.FromRequest(request, handler.defaultPageSize)

	posts, total, err := handler.postService.List(request.Context(), requestutil.Claims(request), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
Get returns a single post.

GET /api/v1/posts/{postID}

Response:
  - 200: Post
  - 404: ErrNotFound: Unknown post, or a draft the caller may not see
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	article, err := handler.postService.Get(request.Context(), requestutil.Claims(request), requestutil.ID(request, "postID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, article)
}

/*
Create persists a new post owned by the caller.

POST /api/v1/posts

Request:
  - Body: createRequest (Title, Content required; Status defaults to draft)

Response:
  - 201: Post: Created entity with hydrated taxonomy
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Publishing below AUTHOR tier
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
	if input.Status != "" {
		validator.OneOf(FieldStatus, input.Status, StatusDraft, StatusPublished)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.postService.Create(request.Context(), caller, CreateInput{
		Title:       input.Title,
		Content:     input.Content,
		Status:      input.Status,
		CategoryIDs: input.CategoryIDs,
		TagIDs:      input.TagIDs,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, article)
}

/*
Update partially modifies a post.

PATCH /api/v1/posts/{postID}

Description: Only fields present in the payload are validated and applied.
The post ID and owner come from the URL and storage, never from the payload.

Request:
  - Body: updateRequest (all fields optional)

Response:
  - 200: Post: Updated entity
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Not the owner / insufficient role
  - 404: ErrNotFound: Unknown post
  - 409: ErrConflict: Duplicate slug
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
	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title).
			MaxLen(FieldTitle, *input.Title, 200)
	}
	if input.Content != nil {
		validator.Required(FieldContent, *input.Content)
	}
	if input.Status != nil {
		validator.OneOf(FieldStatus, *input.Status, StatusDraft, StatusPublished)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.postService.Update(request.Context(), caller, requestutil.ID(request, "postID"), UpdateInput{
		Title:       input.Title,
		Content:     input.Content,
		Status:      input.Status,
		CategoryIDs: input.CategoryIDs,
		TagIDs:      input.TagIDs,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, article)
}

/*
Remove permanently deletes a post.

DELETE /api/v1/posts/{postID}

Response:
  - 204: No content
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Not the owner and below EDITOR tier
  - 404: ErrNotFound: Unknown post
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.postService.Delete(request.Context(), caller, requestutil.ID(request, "postID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
