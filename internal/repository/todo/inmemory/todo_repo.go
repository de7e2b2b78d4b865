package inmemory

import (
	"context"
	"sync"
	"time"

	"todoTracker/internal/models/todo"
	repo "todoTracker/internal/repository"
)

// TodoStorage — хранилище в памяти для тестов и локальной разработки.
// Семантика повторяет postgres-репозиторий: id не переиспользуются,
// удаление и обновление несуществующей записи — ErrNotFound.
type TodoStorage struct {
	mtx     sync.RWMutex
	storage map[int64]*todo.Todo
	ids     []int64 // порядок вставки, он же порядок выдачи GetAll
	nextID  int64
}

func NewTodoStorage() *TodoStorage {
	return &TodoStorage{
		storage: make(map[int64]*todo.Todo),
		ids:     []int64{},
	}
}

func (s *TodoStorage) HealthCheck(ctx context.Context) error {
	return nil
}

func (s *TodoStorage) Create(ctx context.Context, todoToCreate *todo.Todo) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.nextID++
	now := time.Now()

	todoToCreate.ID = s.nextID
	todoToCreate.Completed = false
	todoToCreate.CreatedAt = now
	todoToCreate.UpdatedAt = now

	s.storage[todoToCreate.ID] = todoToCreate.Clone()
	s.ids = append(s.ids, todoToCreate.ID)
	return nil
}

func (s *TodoStorage) GetAll(ctx context.Context) ([]*todo.Todo, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*todo.Todo{}
	for _, id := range s.ids {
		res = append(res, s.storage[id].Clone())
	}
	return res, nil
}

func (s *TodoStorage) GetByID(ctx context.Context, id int64) (*todo.Todo, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	todoToGet, ok := s.storage[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return todoToGet.Clone(), nil
}

func (s *TodoStorage) Update(ctx context.Context, todoToUpdate *todo.Todo) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	existing, ok := s.storage[todoToUpdate.ID]
	if !ok {
		return repo.ErrNotFound
	}

	// в postgres строгую монотонность даёт clock_timestamp(),
	// здесь подстраховываемся вручную
	now := time.Now()
	if !now.After(existing.UpdatedAt) {
		now = existing.UpdatedAt.Add(time.Nanosecond)
	}

	todoToUpdate.CreatedAt = existing.CreatedAt
	todoToUpdate.UpdatedAt = now
	s.storage[todoToUpdate.ID] = todoToUpdate.Clone()

	return nil
}

func (s *TodoStorage) Delete(ctx context.Context, id int64) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[id]; !ok {
		return repo.ErrNotFound
	}

	delete(s.storage, id)
	for ind, val := range s.ids {
		if val == id {
			s.ids = append(s.ids[:ind], s.ids[ind+1:]...)
			break
		}
	}
	return nil
}
