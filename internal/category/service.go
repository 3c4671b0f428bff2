package category

import (
	"context"
	"log/slog"
	"strings"

	"github.com/frahmantamala/expense-tracker/internal/core/common/validation"
)

// Registry owns the category set. The expense repository implements it.
type Registry interface {
	Categories() []string
	AddCategory(ctx context.Context, name string) bool
}

type Service struct {
	registry Registry
	logger   *slog.Logger
}

func NewService(registry Registry, logger *slog.Logger) *Service {
	return &Service{
		registry: registry,
		logger:   logger,
	}
}

func (s *Service) GetAllCategories() []string {
	return s.registry.Categories()
}

func (s *Service) IsValidCategory(name string) bool {
	return Contains(s.registry.Categories(), name)
}

// AddCategory trims and validates name, then appends it when not already present.
func (s *Service) AddCategory(ctx context.Context, dto CreateCategoryDTO) (*CategoryResponse, error) {
	name := strings.TrimSpace(dto.Name)
	if appErr := validation.ValidateCategoryName(name); appErr != nil {
		s.logger.Warn("category validation failed", "name", dto.Name, "error", appErr)
		return nil, appErr
	}

	added := s.registry.AddCategory(ctx, name)
	if added {
		s.logger.Info("category added", "name", name)
	} else {
		s.logger.Debug("category already present", "name", name)
	}

	return &CategoryResponse{Name: name, Added: added}, nil
}
