package tag

import (
	"context"

	"github.com/inkwell-cms/inkwell/internal/platform/sec"
	"github.com/inkwell-cms/inkwell/pkg/pagination"
	"github.com/inkwell-cms/inkwell/pkg/slug"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (service *Service) List(context context.Context, params pagination.Params) ([]Tag, int, error) {
	return service.repo.List(context, params)
}

func (service *Service) Get(context context.Context, id int) (*Tag, error) {
	return service.repo.FindByID(context, id)
}

func (service *Service) GetBySlug(context context.Context, tagSlug string) (*Tag, error) {
	return service.repo.FindBySlug(context, tagSlug)
}

// Create persists a new tag. EDITOR tier and above only.
func (service *Service) Create(context context.Context, caller *sec.AuthClaims, name string) (*Tag, error) {
	if err := sec.CanModerate(caller); err != nil {
		return nil, err
	}

	entry := &Tag{Name: name, Slug: slug.From(name)}
	if err := service.repo.Create(context, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Update renames a tag, regenerating its slug. EDITOR tier and above only.
func (service *Service) Update(context context.Context, caller *sec.AuthClaims, id int, name string) (*Tag, error) {
	if err := sec.CanModerate(caller); err != nil {
		return nil, err
	}

	entry, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	entry.Name = name
	entry.Slug = slug.From(name)

	if err := service.repo.Update(context, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Delete removes a tag. EDITOR tier and above only.
func (service *Service) Delete(context context.Context, caller *sec.AuthClaims, id int) error {
	if err := sec.CanModerate(caller); err != nil {
		return err
	}

	return service.repo.Delete(context, id)
}
