package view

import (
	"context"

	"github.com/toolbox/backend/internal/application/projection"
	"github.com/toolbox/backend/internal/domain/entity"
)

// GetCatalogInput represents the input for the anonymous sample catalog.
type GetCatalogInput struct {
	Search string
	Mode   string
}

// GetCatalogOutput carries the label-grouped sample catalog.
type GetCatalogOutput struct {
	View projection.View[entity.SampleTool]
}

// GetCatalogUseCase projects the built-in sample catalog shown to signed-out visitors.
type GetCatalogUseCase struct {
	catalog func() []entity.SampleTool
}

// NewGetCatalogUseCase creates a new GetCatalogUseCase over the built-in catalog.
func NewGetCatalogUseCase() *GetCatalogUseCase {
	return &GetCatalogUseCase{
		catalog: entity.SampleCatalog,
	}
}

// Execute builds the catalog view.
func (uc *GetCatalogUseCase) Execute(_ context.Context, input GetCatalogInput) (*GetCatalogOutput, error) {
	mode, err := projection.ParseViewMode(input.Mode)
	if err != nil {
		return nil, err
	}

	return &GetCatalogOutput{
		View: projection.GroupByLabel(uc.catalog(), input.Search, mode),
	}, nil
}
