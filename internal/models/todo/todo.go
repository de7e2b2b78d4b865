package todo

import (
	"time"
)

// Description — указатель: NULL в базе и null в JSON это осознанное "без описания"
type Todo struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Clone отдаёт независимую копию, чтобы хранилище и вызывающий не делили память
func (t *Todo) Clone() *Todo {
	cp := *t
	if t.Description != nil {
		d := *t.Description
		cp.Description = &d
	}
	return &cp
}
