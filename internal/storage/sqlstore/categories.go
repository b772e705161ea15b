package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/julianstephens/cadence/internal/models"
)

func (s *Store) AddCategory(ctx context.Context, c models.Category) error {
	query, args, err := s.builder.Insert(categoriesTable).
		Columns(categoryColumns...).
		Values(c.ID, c.Owner, c.Name, c.Emoji, c.Color).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return s.classify(err)
	}
	return nil
}

func (s *Store) GetCategory(ctx context.Context, owner, id string) (models.Category, error) {
	return s.getCategory(ctx, sq.Eq{"id": id, "user_id": owner})
}

func (s *Store) GetCategoryByName(ctx context.Context, owner, name string) (models.Category, error) {
	return s.getCategory(ctx, sq.Eq{"user_id": owner, "name": name})
}

func (s *Store) getCategory(ctx context.Context, where sq.Eq) (models.Category, error) {
	query, args, err := s.builder.Select(categoryColumns...).
		From(categoriesTable).
		Where(where).
		ToSql()
	if err != nil {
		return models.Category{}, err
	}

	var row categoryRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		return models.Category{}, notFound(err)
	}
	return row.model(), nil
}

func (s *Store) ListCategories(ctx context.Context, owner string) ([]models.Category, error) {
	query, args, err := s.builder.Select(categoryColumns...).
		From(categoriesTable).
		Where(sq.Eq{"user_id": owner}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []categoryRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, r.model())
	}
	return categories, nil
}

func (s *Store) UpdateCategory(ctx context.Context, owner, id string, patch models.CategoryPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	update := s.builder.Update(categoriesTable).Where(sq.Eq{"id": id, "user_id": owner})
	if patch.Name.Set {
		update = update.Set("name", patch.Name.Value)
	}
	if patch.Emoji.Set {
		update = update.Set("emoji", patch.Emoji.Value)
	}
	if patch.Color.Set {
		update = update.Set("color", patch.Color.Value)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return s.classify(err)
	}
	return requireRow(res)
}

func (s *Store) DeleteCategory(ctx context.Context, owner, id string) error {
	query, args, err := s.builder.Delete(categoriesTable).
		Where(sq.Eq{"id": id, "user_id": owner}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return s.classify(err)
	}
	return requireRow(res)
}

func (s *Store) HasTasksWithCategory(ctx context.Context, owner, categoryID string) (bool, error) {
	query, args, err := s.builder.Select("1").
		From(tasksTable).
		Where(sq.Eq{"user_id": owner, "category_id": categoryID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, err
	}

	var rows []int
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}
