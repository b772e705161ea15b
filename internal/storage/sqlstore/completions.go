package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/julianstephens/cadence/internal/models"
)

func (s *Store) GetCompletion(ctx context.Context, owner, taskID, date string) (models.Completion, error) {
	query, args, err := s.builder.Select(completionColumns...).
		From(completionsTable).
		Where(sq.Eq{"todo_id": taskID, "user_id": owner, "completion_date": date}).
		ToSql()
	if err != nil {
		return models.Completion{}, err
	}

	var row completionRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		return models.Completion{}, notFound(err)
	}
	return row.model(), nil
}

func (s *Store) ToggleCompletion(ctx context.Context, c models.Completion) (bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := s.builder.Delete(completionsTable).
		Where(sq.Eq{"todo_id": c.TaskID, "user_id": c.Owner, "completion_date": c.Date}).
		ToSql()
	if err != nil {
		return false, err
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	completed := removed == 0
	if completed {
		// A concurrent toggle may have inserted the same instance already;
		// the unique (todo_id, completion_date) index keeps a single record.
		query, args, err = s.builder.Insert(completionsTable).
			Columns(completionColumns...).
			Values(c.ID, c.TaskID, c.Owner, c.Date, toMillis(c.CompletedAt)).
			Suffix("ON CONFLICT (todo_id, completion_date) DO NOTHING").
			ToSql()
		if err != nil {
			return false, err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return false, s.classify(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return completed, nil
}

func (s *Store) ListCompletionsForDate(ctx context.Context, owner, date string) ([]models.Completion, error) {
	return s.listCompletions(ctx, sq.Eq{"user_id": owner, "completion_date": date})
}

func (s *Store) ListCompletionsInRange(ctx context.Context, owner, start, end string) ([]models.Completion, error) {
	return s.listCompletions(ctx, sq.And{
		sq.Eq{"user_id": owner},
		sq.GtOrEq{"completion_date": start},
		sq.LtOrEq{"completion_date": end},
	})
}

func (s *Store) ListCompletions(ctx context.Context, owner string) ([]models.Completion, error) {
	return s.listCompletions(ctx, sq.Eq{"user_id": owner})
}

func (s *Store) listCompletions(ctx context.Context, where sq.Sqlizer) ([]models.Completion, error) {
	query, args, err := s.builder.Select(completionColumns...).
		From(completionsTable).
		Where(where).
		OrderBy("completion_date", "todo_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []completionRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	completions := make([]models.Completion, 0, len(rows))
	for _, r := range rows {
		completions = append(completions, r.model())
	}
	return completions, nil
}
