package tag

import (
	"context"

	"github.com/inkwell-cms/inkwell/pkg/pagination"
)

// Repository defines the persistence contract for tags.
type Repository interface {
	List(context context.Context, params pagination.Params) ([]Tag, int, error)
	FindByID(context context.Context, id int) (*Tag, error)
	FindBySlug(context context.Context, slug string) (*Tag, error)
	Create(context context.Context, tag *Tag) error
	Update(context context.Context, tag *Tag) error
	Delete(context context.Context, id int) error
}
