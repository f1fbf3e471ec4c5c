// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package user

import (
	"context"
	"fmt"

	"github.com/inkwell-cms/inkwell/internal/platform/apperr"
	"github.com/inkwell-cms/inkwell/internal/platform/sec"
	"github.com/inkwell-cms/inkwell/internal/users/auth"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
	"github.com/inkwell-cms/inkwell/pkg/pointer"
	"github.com/inkwell-cms/inkwell/pkg/uuid"
)

// # Definitions & Constructors

// Service implements account management use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new account [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// # Listing & Retrieval

/*
List returns a page of accounts with the total count.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []auth.User: Page of accounts
  - int: Total account count
  - err: Retrieval failures
*/
func (service *Service) List(context context.Context, params pagination.Params) ([]auth.User, int, error) {
	return service.repository.List(context, params)
}

/*
Get returns a single account by ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *auth.User: Hydrated account
  - err: NotFound or storage failures
*/
func (service *Service) Get(context context.Context, id string) (*auth.User, error) {
	return service.repository.FindByID(context, id)
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	DisplayName string
	Username    string
	Password    string
	Email       string
	Biography   string
	PictureRef  string
}

/*
Register hashes the credentials and persists a brand-new account.

Description: New accounts always start at the lowest tier; promotion is an
explicit administrator action afterwards. Duplicate usernames or emails
surface as a Conflict from the storage layer.

Parameters:
  - context: context.Context
  - input: RegisterInput (already field-validated by the transport layer)

Returns:
  - *auth.User: Created entity
  - err: Conflict or storage failures
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*auth.User, error) {

	// Prevent storing plain-text passwords. Default cost balances security
	// against CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user_service_hash_failed: %w", err)
	}

	// Time-sortable ID to prevent PG index fragmentation.
	account := &auth.User{
		ID:           uuid.New(),
		DisplayName:  input.DisplayName,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Biography:    input.Biography,
		PictureRef:   input.PictureRef,
		Role:         sec.RoleSubscriber,
	}

	if err := service.repository.Create(context, account); err != nil {
		return nil, err
	}

	return account, nil
}

// # Update Flow

// UpdateInput carries the optional profile changes for an account.
//
// Nil fields are left untouched. The account ID is taken from the URL, never
// from the payload, so identity fields cannot be rewritten through here.
type UpdateInput struct {
	DisplayName *string
	Username    *string
	Password    *string
	Email       *string
	Biography   *string
	PictureRef  *string
	Role        *string
}

/*
Update applies a partial profile change to the target account.

Description: The caller must own the account or hold the ADMIN role. Changing
the role field is additionally restricted to administrators regardless of
ownership, so members cannot promote themselves.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims (verified identity of the requester)
  - targetID: string
  - input: UpdateInput

Returns:
  - *auth.User: Updated entity
  - err: NotFound, Forbidden, Conflict, or storage failures
*/
func (service *Service) Update(context context.Context, caller *sec.AuthClaims, targetID string, input UpdateInput) (*auth.User, error) {

	// ── 1. Load the target ──
	// Existence is checked before authorization so a missing account is 404
	// for everyone rather than 403 for non-owners.
	account, err := service.repository.FindByID(context, targetID)
	if err != nil {
		return nil, err
	}

	// ── 2. Authorize ──
	if err := sec.CanMutate(caller, account.ID); err != nil {
		return nil, err
	}

	// ── 3. Apply the role change under its stricter gate ──
	if input.Role != nil {
		if err := sec.CanAssignRole(caller); err != nil {
			return nil, err
		}

		role := sec.UserRole(pointer.Val(input.Role))
		if !role.IsValid() {
			return nil, apperr.ValidationError("Unknown role", apperr.FieldError{
				Field:   auth.FieldRole,
				Message: "must be one of ADMIN, EDITOR, AUTHOR, CONTRIBUTOR, SUBSCRIBER",
			})
		}
		account.Role = role
	}

	// ── 4. Merge the optional profile fields ──
	if input.DisplayName != nil {
		account.DisplayName = pointer.Val(input.DisplayName)
	}
	if input.Username != nil {
		account.Username = pointer.Val(input.Username)
	}
	if input.Email != nil {
		account.Email = pointer.Val(input.Email)
	}
	if input.Biography != nil {
		account.Biography = pointer.Val(input.Biography)
	}
	if input.PictureRef != nil {
		account.PictureRef = pointer.Val(input.PictureRef)
	}
	if input.Password != nil {
		hashedPassword, err := sec.HashPassword(pointer.Val(input.Password))
		if err != nil {
			return nil, fmt.Errorf("user_service_hash_failed: %w", err)
		}
		account.PasswordHash = hashedPassword
	}

	// ── 5. Persist ──
	if err := service.repository.Update(context, account); err != nil {
		return nil, err
	}

	return account, nil
}

// # Removal Flow

/*
Delete permanently removes the target account.

Description: Allowed for the account owner or an administrator only; the
EDITOR overlay that applies to content deletion does not extend to member
accounts. The target is its own owner for policy purposes, so no load is
needed before the authorization check; a missing account still yields NotFound
from the storage layer.

Parameters:
  - context: context.Context
  - caller: *sec.AuthClaims
  - targetID: string

Returns:
  - err: NotFound, Forbidden, or storage failures
*/
func (service *Service) Delete(context context.Context, caller *sec.AuthClaims, targetID string) error {
	if err := sec.CanDeleteAccount(caller, targetID); err != nil {
		return err
	}

	return service.repository.Delete(context, targetID)
}
