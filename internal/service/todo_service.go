package service

import (
	"context"
	"errors"
	"strings"

	"todoTracker/internal/logger"
	"todoTracker/internal/models/todo"
	rep "todoTracker/internal/repository"

	"go.uber.org/zap"
)

// бизнес-логики тут минимум: слияние частичного обновления
// и перевод ошибок хранилища в типовые коды

type TodoService struct {
	repo TodoRepository
}

func NewTodoService(repo TodoRepository) TodoService {
	return TodoService{
		repo: repo,
	}
}

func (s *TodoService) CreateTodo(ctx context.Context, title string, description *string) (*todo.Todo, error) {
	t := &todo.Todo{
		Title:       strings.TrimSpace(title),
		Description: description,
		Completed:   false,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, NewStoreFault("create", err)
	}
	return t, nil
}

func (s *TodoService) GetTodos(ctx context.Context) ([]*todo.Todo, error) {
	todos, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, NewStoreFault("list", err)
	}

	if todos == nil {
		todos = []*todo.Todo{}
	}
	return todos, nil
}

// UpdateTodoByID читает запись, применяет только переданные опции и пишет
// слитую версию обратно; updated_at освежается в любом случае,
// даже при пустом наборе опций
func (s *TodoService) UpdateTodoByID(ctx context.Context, id int64, options ...todo.Option) (*todo.Todo, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.Int64("target_id", id))
			return nil, NewNotFound("задача", id)
		}
		return nil, NewStoreFault("update", err)
	}

	updated := existing.Clone()
	for _, opt := range options {
		if opt != nil {
			opt(updated)
		}
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			// запись исчезла между чтением и записью
			logger.Info("Service: Задача не найдена", zap.Int64("target_id", id))
			return nil, NewNotFound("задача", id)
		}
		return nil, NewStoreFault("update", err)
	}

	return updated, nil
}

func (s *TodoService) DeleteTodoByID(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.Int64("target_id", id))
			return NewNotFound("задача", id)
		}
		return NewStoreFault("delete", err)
	}
	return nil
}

func (s *TodoService) HealthCheck(ctx context.Context) error {
	if err := s.repo.HealthCheck(ctx); err != nil {
		return NewStoreFault("health", err)
	}
	return nil
}
