package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"todoTracker/internal/logger"
	"todoTracker/internal/models/todo"
	"todoTracker/internal/repository"
	"todoTracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init(true)
	m.Run()
}

// MockTodoRepository - мок репозитория
type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) Create(ctx context.Context, t *todo.Todo) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTodoRepository) GetAll(ctx context.Context) ([]*todo.Todo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*todo.Todo), args.Error(1)
}

func (m *MockTodoRepository) GetByID(ctx context.Context, id int64) (*todo.Todo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.Todo), args.Error(1)
}

func (m *MockTodoRepository) Update(ctx context.Context, t *todo.Todo) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTodoRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTodoRepository) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ service.TodoRepository = (*MockTodoRepository)(nil)

// TestTodoService_CreateTodo тестирует создание задачи
func TestTodoService_CreateTodo(t *testing.T) {
	ctx := context.Background()
	desc := "описание"

	tests := []struct {
		name        string
		title       string
		description *string
		wantTitle   string
	}{
		{
			name:        "simple create",
			title:       "Buy milk",
			description: nil,
			wantTitle:   "Buy milk",
		},
		{
			name:        "title is trimmed",
			title:       "  Buy milk  ",
			description: &desc,
			wantTitle:   "Buy milk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTodoRepository)
			mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(created *todo.Todo) bool {
				return created.Title == tt.wantTitle &&
					created.Completed == false &&
					created.Description == tt.description
			})).Return(nil)

			svc := service.NewTodoService(mockRepo)
			result, err := svc.CreateTodo(ctx, tt.title, tt.description)

			assert.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantTitle, result.Title)
			assert.False(t, result.Completed)
			mockRepo.AssertExpectations(t)
		})
	}

	t.Run("error - store fault propagates", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		svc := service.NewTodoService(mockRepo)
		_, err := svc.CreateTodo(ctx, "Test", nil)

		require.Error(t, err)
		var businessErr *service.BusinessError
		require.ErrorAs(t, err, &businessErr)
		assert.Equal(t, service.CodeStoreFault, businessErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

// TestTodoService_GetTodos тестирует получение списка
func TestTodoService_GetTodos(t *testing.T) {
	ctx := context.Background()

	t.Run("success - returns all todos", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)
		todos := []*todo.Todo{
			{ID: 1, Title: "Todo 1"},
			{ID: 2, Title: "Todo 2"},
		}
		mockRepo.On("GetAll", mock.Anything).Return(todos, nil)

		svc := service.NewTodoService(mockRepo)
		result, err := svc.GetTodos(ctx)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("nil from repo becomes empty slice", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)
		mockRepo.On("GetAll", mock.Anything).Return([]*todo.Todo(nil), nil)

		svc := service.NewTodoService(mockRepo)
		result, err := svc.GetTodos(ctx)

		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.Empty(t, result)
		mockRepo.AssertExpectations(t)
	})
}

// TestTodoService_UpdateTodoByID тестирует частичное обновление
func TestTodoService_UpdateTodoByID(t *testing.T) {
	ctx := context.Background()
	todoID := int64(42)

	t.Run("success - omitted fields stay intact", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)
		desc := "старое описание"
		existing := &todo.Todo{
			ID:          todoID,
			Title:       "Buy milk",
			Description: &desc,
			Completed:   false,
			CreatedAt:   time.Now().Add(-time.Hour),
			UpdatedAt:   time.Now().Add(-time.Hour),
		}

		mockRepo.On("GetByID", mock.Anything, todoID).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(updated *todo.Todo) bool {
			return updated.Title == "Buy milk" &&
				updated.Description != nil && *updated.Description == "старое описание" &&
				updated.Completed == true
		})).Return(nil)

		svc := service.NewTodoService(mockRepo)
		result, err := svc.UpdateTodoByID(ctx, todoID, todo.WithCompleted(true))

		assert.NoError(t, err)
		assert.Equal(t, "Buy milk", result.Title)
		assert.True(t, result.Completed)
		mockRepo.AssertExpectations(t)
	})

	t.Run("success - explicit null clears description", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)
		desc := "будет стёрто"
		existing := &todo.Todo{ID: todoID, Title: "Todo", Description: &desc}

		mockRepo.On("GetByID", mock.Anything, todoID).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(updated *todo.Todo) bool {
			return updated.Description == nil
		})).Return(nil)

		svc := service.NewTodoService(mockRepo)
		result, err := svc.UpdateTodoByID(ctx, todoID, todo.WithDescription(nil))

		assert.NoError(t, err)
		assert.Nil(t, result.Description)
		mockRepo.AssertExpectations(t)
	})

	t.Run("success - empty option set still touches the store", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)
		existing := &todo.Todo{ID: todoID, Title: "Todo"}

		mockRepo.On("GetByID", mock.Anything, todoID).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		svc := service.NewTodoService(mockRepo)
		_, err := svc.UpdateTodoByID(ctx, todoID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - not found", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)
		mockRepo.On("GetByID", mock.Anything, todoID).Return(nil, repository.ErrNotFound)

		svc := service.NewTodoService(mockRepo)
		_, err := svc.UpdateTodoByID(ctx, todoID, todo.WithCompleted(true))

		require.Error(t, err)
		var businessErr *service.BusinessError
		require.ErrorAs(t, err, &businessErr)
		assert.Equal(t, service.CodeNotFound, businessErr.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - vanished between read and write", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)
		existing := &todo.Todo{ID: todoID, Title: "Todo"}

		mockRepo.On("GetByID", mock.Anything, todoID).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(repository.ErrNotFound)

		svc := service.NewTodoService(mockRepo)
		_, err := svc.UpdateTodoByID(ctx, todoID)

		require.Error(t, err)
		var businessErr *service.BusinessError
		require.ErrorAs(t, err, &businessErr)
		assert.Equal(t, service.CodeNotFound, businessErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

// TestTodoService_DeleteTodoByID тестирует удаление
func TestTodoService_DeleteTodoByID(t *testing.T) {
	ctx := context.Background()
	todoID := int64(7)

	tests := []struct {
		name      string
		repoErr   error
		wantCode  string
		expectErr bool
	}{
		{
			name:      "success",
			repoErr:   nil,
			expectErr: false,
		},
		{
			name:      "not found",
			repoErr:   repository.ErrNotFound,
			wantCode:  service.CodeNotFound,
			expectErr: true,
		},
		{
			name:      "store fault",
			repoErr:   errors.New("connection reset"),
			wantCode:  service.CodeStoreFault,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTodoRepository)
			mockRepo.On("Delete", mock.Anything, todoID).Return(tt.repoErr)

			svc := service.NewTodoService(mockRepo)
			err := svc.DeleteTodoByID(ctx, todoID)

			if tt.expectErr {
				require.Error(t, err)
				var businessErr *service.BusinessError
				require.ErrorAs(t, err, &businessErr)
				assert.Equal(t, tt.wantCode, businessErr.Code)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// TestTodoService_HealthCheck тестирует проверку здоровья
func TestTodoService_HealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)
		mockRepo.On("HealthCheck", mock.Anything).Return(nil)

		svc := service.NewTodoService(mockRepo)
		assert.NoError(t, svc.HealthCheck(ctx))
		mockRepo.AssertExpectations(t)
	})

	t.Run("failure", func(t *testing.T) {
		mockRepo := new(MockTodoRepository)
		mockRepo.On("HealthCheck", mock.Anything).Return(errors.New("db connection failed"))

		svc := service.NewTodoService(mockRepo)
		assert.Error(t, svc.HealthCheck(ctx))
		mockRepo.AssertExpectations(t)
	})
}
