package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/events"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/store"
)

// TaskService provides task operations
type TaskService interface {
	// CreateTask validates input, assigns an ID and stores the task
	CreateTask(ctx context.Context, input domain.TaskInput) (*domain.Task, error)
}

type taskServiceImpl struct {
	tasks   store.TaskStore
	emitter events.EventEmitter
	logger  *slog.Logger
	newID   func() string
}

// NewTaskService creates a new TaskService.
// It returns an error if the store is nil. A nil emitter disables change events.
// WithClock has no effect: tasks carry no timestamps.
func NewTaskService(
	tasks store.TaskStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
	opts ...Option,
) (TaskService, error) {
	if tasks == nil {
		return nil, NewServiceError("new_task_service", "tasks cannot be nil", nil)
	}

	if logger == nil {
		logger = slog.Default()
	}

	o := applyOptions(opts)
	return &taskServiceImpl{
		tasks:   tasks,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "task_service")),
		newID:   o.newID,
	}, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(s.newID(), input)
	if err != nil {
		log.Debug("task input rejected",
			slog.String("error", err.Error()),
			slog.Any("fields", rejectedFields(err)))
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		if store.IsDuplicateError(err) {
			log.Error("task identifier collision",
				slog.String("error", err.Error()),
				slog.String("task_id", task.ID))
			return nil, NewServiceError("create_task", "task identifier already in use", err)
		}
		log.Error("failed to save task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID))
		return nil, NewServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created", slog.String("task_id", task.ID))
	emitChange(ctx, s.emitter, log, events.TaskCreated, store.EntityTask, task.ID, task)

	return task, nil
}
