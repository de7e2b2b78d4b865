package handlers

import (
	"context"

	"todoTracker/internal/models/todo"
)

type TodoService interface {
	CreateTodo(context.Context, string, *string) (*todo.Todo, error)
	GetTodos(context.Context) ([]*todo.Todo, error)
	UpdateTodoByID(context.Context, int64, ...todo.Option) (*todo.Todo, error)
	DeleteTodoByID(context.Context, int64) error
	HealthCheck(context.Context) error
}
