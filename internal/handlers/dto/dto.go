package dto

import (
	"strings"
	"time"

	"todoTracker/internal/models/todo"
)

type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type UpdateTodoRequest struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Completed   Optional[bool]   `json:"completed"`
}

type TodoResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DeleteTodoResponse struct {
	Success bool `json:"success"`
}

func FromTodo(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// FromTodoList всегда отдаёт непустой для сериализации срез:
// клиент получает [], а не null
func FromTodoList(todos []*todo.Todo) []TodoResponse {
	result := make([]TodoResponse, len(todos))
	for i, t := range todos {
		result[i] = FromTodo(t)
	}
	return result
}

// Options переводит присутствующие в запросе поля в функции обновления;
// отсутствующие поля не порождают опций и остаются нетронутыми
func (r *UpdateTodoRequest) Options() []todo.Option {
	opts := []todo.Option{}

	if r.Title.Set {
		opts = append(opts, todo.WithTitle(strings.TrimSpace(r.Title.Value)))
	}

	if r.Description.Set {
		if r.Description.Valid {
			opts = append(opts, todo.WithDescription(&r.Description.Value))
		} else {
			opts = append(opts, todo.WithDescription(nil))
		}
	}

	if r.Completed.Set {
		opts = append(opts, todo.WithCompleted(r.Completed.Value))
	}

	return opts
}
