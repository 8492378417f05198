package record

import (
	"context"
	"slices"
	"strings"

	"github.com/Makepad-fr/focusdash/internal/logging"
	"github.com/Makepad-fr/focusdash/internal/model"
)

// LoadTasks returns the stored tasks, or the samples.
func (s *Store) LoadTasks(ctx context.Context) []model.Task {
	return LoadCollection(ctx, s, Tasks)
}

// AddTask appends a new open, non-priority task. Blank text is rejected
// before the medium is touched.
func (s *Store) AddTask(ctx context.Context, text string) (model.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Task{}, ErrEmptyText
	}
	var task model.Task
	err := Mutate(ctx, s, Tasks, func(tasks []model.Task) ([]model.Task, error) {
		task = model.Task{ID: nextID(s, tasks), Text: text}
		return append(tasks, task), nil
	})
	if err != nil {
		return model.Task{}, err
	}
	s.log.Debug("Task added", logging.RecordID(task.ID))
	return task, nil
}

func (s *Store) ToggleTaskComplete(ctx context.Context, id int64) (model.Task, error) {
	return updateByID(ctx, s, Tasks, id, func(t *model.Task) { t.Completed = !t.Completed })
}

func (s *Store) SetTaskCompleted(ctx context.Context, id int64, completed bool) (model.Task, error) {
	return updateByID(ctx, s, Tasks, id, func(t *model.Task) { t.Completed = completed })
}

func (s *Store) ToggleTaskPriority(ctx context.Context, id int64) (model.Task, error) {
	return updateByID(ctx, s, Tasks, id, func(t *model.Task) { t.Priority = !t.Priority })
}

func (s *Store) SetTaskPriority(ctx context.Context, id int64, priority bool) (model.Task, error) {
	return updateByID(ctx, s, Tasks, id, func(t *model.Task) { t.Priority = priority })
}

// DeleteTask removes the task with id. Deleting an unknown id still writes
// the (unchanged) collection back.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	return Mutate(ctx, s, Tasks, func(tasks []model.Task) ([]model.Task, error) {
		return slices.DeleteFunc(tasks, func(t model.Task) bool { return t.ID == id }), nil
	})
}
