package service

import (
	"context"

	"todoTracker/internal/models/todo"
)

type TodoRepository interface {
	Create(context.Context, *todo.Todo) error
	GetAll(context.Context) ([]*todo.Todo, error)
	GetByID(context.Context, int64) (*todo.Todo, error)
	Update(context.Context, *todo.Todo) error
	Delete(context.Context, int64) error
	HealthCheck(context.Context) error
}
