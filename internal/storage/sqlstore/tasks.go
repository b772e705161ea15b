package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/julianstephens/cadence/internal/models"
)

func (s *Store) AddTask(ctx context.Context, t models.Task) error {
	query, args, err := s.builder.Insert(tasksTable).
		Columns(taskColumns...).
		Values(
			t.ID, t.Owner, t.Title, t.Emoji, nullString(t.CategoryID),
			t.DueDate, nullString(t.DueTime), string(t.Recurrence),
			t.Completed, nullMillis(t.CompletedAt), toMillis(t.CreatedAt),
		).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return s.classify(err)
	}
	return nil
}

func (s *Store) GetTask(ctx context.Context, owner, id string) (models.Task, error) {
	query, args, err := s.builder.Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"id": id, "user_id": owner}).
		ToSql()
	if err != nil {
		return models.Task{}, err
	}

	var row taskRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		return models.Task{}, notFound(err)
	}
	return row.model(), nil
}

func (s *Store) ListTasks(ctx context.Context, owner string) ([]models.Task, error) {
	query, args, err := s.builder.Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"user_id": owner}).
		OrderBy("due_date", "created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, r.model())
	}
	return tasks, nil
}

func (s *Store) UpdateTask(ctx context.Context, owner, id string, patch models.TaskPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	update := s.builder.Update(tasksTable).Where(sq.Eq{"id": id, "user_id": owner})
	if patch.Title.Set {
		update = update.Set("title", patch.Title.Value)
	}
	if patch.Emoji.Set {
		update = update.Set("emoji", patch.Emoji.Value)
	}
	if patch.CategoryID.Set {
		update = update.Set("category_id", nullString(patch.CategoryID.Value))
	}
	if patch.DueDate.Set {
		update = update.Set("due_date", patch.DueDate.Value)
	}
	if patch.DueTime.Set {
		update = update.Set("due_time", nullString(patch.DueTime.Value))
	}
	if patch.Recurrence.Set {
		update = update.Set("recurrence", string(patch.Recurrence.Value))
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

func (s *Store) SetTaskCompletion(ctx context.Context, owner, id string, completed bool, completedAt *time.Time) error {
	query, args, err := s.builder.Update(tasksTable).
		Set("completed", completed).
		Set("completed_at", nullMillis(completedAt)).
		Where(sq.Eq{"id": id, "user_id": owner}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *Store) DeleteTask(ctx context.Context, owner, id string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := s.builder.Delete(completionsTable).
		Where(sq.Eq{"todo_id": id, "user_id": owner}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	query, args, err = s.builder.Delete(tasksTable).
		Where(sq.Eq{"id": id, "user_id": owner}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if err := requireRow(res); err != nil {
		return err
	}

	return tx.Commit()
}
