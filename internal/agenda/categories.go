package agenda

import (
	"context"
	"strings"

	"github.com/julianstephens/cadence/internal/constants"
	apperrors "github.com/julianstephens/cadence/internal/errors"
	"github.com/julianstephens/cadence/internal/logger"
	"github.com/julianstephens/cadence/internal/models"
)

func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	owner, ok := s.owner(ctx)
	if !ok {
		return []models.Category{}, nil
	}
	return s.store.ListCategories(ctx, owner)
}

// FindCategory resolves ref as a category id first and then as an exact name.
func (s *Service) FindCategory(ctx context.Context, ref string) (models.Category, error) {
	owner, ok := s.owner(ctx)
	if !ok {
		return models.Category{}, apperrors.ErrNotFoundOrUnauthorized
	}

	c, err := s.store.GetCategory(ctx, owner, ref)
	if err == nil {
		return c, nil
	}
	if !isNotFound(err) {
		return models.Category{}, err
	}

	c, err = s.store.GetCategoryByName(ctx, owner, ref)
	if err != nil {
		return models.Category{}, mapStoreErr(err)
	}
	return c, nil
}

// CreateCategory adds a category. Names are unique per owner, compared
// case-sensitively.
func (s *Service) CreateCategory(ctx context.Context, in models.CategoryInput) (models.Category, error) {
	owner, err := s.requireOwner(ctx)
	if err != nil {
		return models.Category{}, err
	}
	if err := in.Validate(); err != nil {
		return models.Category{}, invalid(err)
	}

	name := strings.TrimSpace(in.Name)
	if err := s.ensureNameFree(ctx, owner, name); err != nil {
		return models.Category{}, err
	}

	c := models.Category{
		ID:    s.newID(),
		Owner: owner,
		Name:  name,
		Emoji: in.Emoji,
		Color: in.Color,
	}
	if err := s.store.AddCategory(ctx, c); err != nil {
		return models.Category{}, mapStoreErr(err)
	}

	logger.Info("Created category", "id", c.ID, "name", c.Name)
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) (models.Category, error) {
	owner, err := s.requireOwner(ctx)
	if err != nil {
		return models.Category{}, err
	}
	if err := patch.Validate(); err != nil {
		return models.Category{}, invalid(err)
	}

	c, err := s.store.GetCategory(ctx, owner, id)
	if err != nil {
		return models.Category{}, mapStoreErr(err)
	}
	if patch.IsEmpty() {
		return c, nil
	}
	if patch.Name.Set {
		patch.Name.Value = strings.TrimSpace(patch.Name.Value)
		if patch.Name.Value != c.Name {
			if err := s.ensureNameFree(ctx, owner, patch.Name.Value); err != nil {
				return models.Category{}, err
			}
		}
	}

	if err := s.store.UpdateCategory(ctx, owner, id, patch); err != nil {
		return models.Category{}, mapStoreErr(err)
	}

	logger.Info("Updated category", "id", id)
	return patch.Apply(c), nil
}

// DeleteCategory removes a category that no task references.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	owner, err := s.requireOwner(ctx)
	if err != nil {
		return err
	}

	if _, err := s.store.GetCategory(ctx, owner, id); err != nil {
		return mapStoreErr(err)
	}
	referenced, err := s.store.HasTasksWithCategory(ctx, owner, id)
	if err != nil {
		return err
	}
	if referenced {
		return apperrors.ErrReferentialConflict
	}

	if err := s.store.DeleteCategory(ctx, owner, id); err != nil {
		return mapStoreErr(err)
	}
	logger.Info("Deleted category", "id", id)
	return nil
}

// InitializeDefaultCategories seeds the preset categories for an owner who
// has none. Owners with existing categories get them back unchanged.
func (s *Service) InitializeDefaultCategories(ctx context.Context) ([]models.Category, error) {
	owner, err := s.requireOwner(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.ListCategories(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	seeded := make([]models.Category, 0, len(constants.DefaultCategories))
	for _, preset := range constants.DefaultCategories {
		c := models.Category{
			ID:    s.newID(),
			Owner: owner,
			Name:  preset.Name,
			Emoji: preset.Emoji,
			Color: preset.Color,
		}
		if err := s.store.AddCategory(ctx, c); err != nil {
			return nil, mapStoreErr(err)
		}
		seeded = append(seeded, c)
	}

	logger.Info("Seeded default categories", "owner", owner, "count", len(seeded))
	return seeded, nil
}

func (s *Service) ensureNameFree(ctx context.Context, owner, name string) error {
	_, err := s.store.GetCategoryByName(ctx, owner, name)
	switch {
	case err == nil:
		return apperrors.ErrDuplicateName
	case isNotFound(err):
		return nil
	default:
		return err
	}
}
