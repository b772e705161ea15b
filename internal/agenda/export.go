package agenda

import (
	"context"
	"time"

	"github.com/julianstephens/cadence/internal/logger"
	"github.com/julianstephens/cadence/internal/models"
)

// Snapshot is everything the current owner has stored.
type Snapshot struct {
	Owner       string              `json:"owner" yaml:"owner"`
	ExportedAt  time.Time           `json:"exported_at" yaml:"exported_at"`
	Categories  []models.Category   `json:"categories" yaml:"categories"`
	Tasks       []models.Task       `json:"tasks" yaml:"tasks"`
	Completions []models.Completion `json:"completions" yaml:"completions"`
}

// Export collects the owner's categories, tasks and completion records.
// Unauthenticated callers get an empty snapshot.
func (s *Service) Export(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{
		ExportedAt:  s.clock.Now().UTC(),
		Categories:  []models.Category{},
		Tasks:       []models.Task{},
		Completions: []models.Completion{},
	}
	owner, ok := s.owner(ctx)
	if !ok {
		return snap, nil
	}
	snap.Owner = owner

	var err error
	if snap.Categories, err = s.store.ListCategories(ctx, owner); err != nil {
		return Snapshot{}, err
	}
	if snap.Tasks, err = s.store.ListTasks(ctx, owner); err != nil {
		return Snapshot{}, err
	}
	if snap.Completions, err = s.store.ListCompletions(ctx, owner); err != nil {
		return Snapshot{}, err
	}

	logger.Debug("Exported owner data", "owner", owner,
		"categories", len(snap.Categories), "tasks", len(snap.Tasks), "completions", len(snap.Completions))
	return snap, nil
}
