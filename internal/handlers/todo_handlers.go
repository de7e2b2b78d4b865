package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"todoTracker/internal/handlers/dto"
	"todoTracker/internal/logger"

	"go.uber.org/zap"
)

type TodoHandler struct {
	TodoService TodoService
}

func NewTodoHandler(todoService TodoService) TodoHandler {
	return TodoHandler{
		TodoService: todoService,
	}
}

// PostTodo — процедура createTodo: POST /todos
func (h *TodoHandler) PostTodo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: Неверный тип контента",
			zap.String("expected", "application/json"),
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type должен быть application/json")
		return
	}

	var request dto.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return
	}
	defer r.Body.Close()

	if validationErr := validateCreate(&request); validationErr != nil {
		logger.Warn("HTTP: Ошибка валидации",
			zap.String("field", validationErr.Details["field"].(string)),
			zap.String("client_ip", r.RemoteAddr))

		handleError(w, validationErr)
		return
	}

	logger.Info("HTTP: Вызов сервиса создания задач")

	created, err := h.TodoService.CreateTodo(r.Context(), request.Title, request.Description)
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "create_todo"),
			zap.String("client_ip", r.RemoteAddr),
			zap.Duration("ms", time.Since(start)))

		handleError(w, err)
		return
	}

	logger.Info("HTTP_OUT: Задача создана",
		zap.Int64("todo_id", created.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, dto.FromTodo(created))
}

// GetTodos — процедура getTodos: GET /todos
func (h *TodoHandler) GetTodos(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	logger.Info("HTTP: Вызов сервиса для получения задач")

	todos, err := h.TodoService.GetTodos(r.Context())
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "get_todos"),
			zap.String("client_ip", r.RemoteAddr))

		handleError(w, err)
		return
	}

	logger.Info("HTTP_OUT: Задачи получены",
		zap.Int("count", len(todos)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, dto.FromTodoList(todos))
}

// UpdateTodoByID — процедура updateTodo: PATCH /todos/{id};
// отсутствующие в теле поля не меняются, description: null — явный сброс
func (h *TodoHandler) UpdateTodoByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, validationErr := idFromURL(r)
	if validationErr != nil {
		logger.Warn("HTTP: Неверное значение id",
			zap.String("raw_id", r.URL.Path),
			zap.String("client_ip", r.RemoteAddr))

		handleError(w, validationErr)
		return
	}

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: Неверный тип контента",
			zap.String("expected", "application/json"),
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type должен быть application/json")
		return
	}

	var request dto.UpdateTodoRequest

	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := decoder.Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверно переданы параметры обновления: "+err.Error())
		return
	}

	if validationErr := validateUpdate(&request); validationErr != nil {
		logger.Warn("HTTP: Ошибка валидации",
			zap.String("field", validationErr.Details["field"].(string)),
			zap.String("client_ip", r.RemoteAddr))

		handleError(w, validationErr)
		return
	}

	logger.Info("HTTP: запрос к сервису обновления данных")

	updated, err := h.TodoService.UpdateTodoByID(r.Context(), id, request.Options()...)
	if err != nil {
		logger.Error("HTTP: ошибка в Service", err,
			zap.String("operation", "update_todo"),
			zap.String("client_addr", r.RemoteAddr))

		handleError(w, err)
		return
	}

	logger.Info("HTTP_OUT: Задача обновлена",
		zap.Int64("todo_id", updated.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, dto.FromTodo(updated))
}

// DeleteTodoByID — процедура deleteTodo: DELETE /todos/{id}
func (h *TodoHandler) DeleteTodoByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, validationErr := idFromURL(r)
	if validationErr != nil {
		logger.Warn("HTTP: Неверное значение id",
			zap.String("raw_id", r.URL.Path),
			zap.String("client_ip", r.RemoteAddr))

		handleError(w, validationErr)
		return
	}

	logger.Info("HTTP: Обращение к сервису для удаления задачи")

	if err := h.TodoService.DeleteTodoByID(r.Context(), id); err != nil {
		logger.Error("HTTP: ошибка в Service", err,
			zap.String("operation", "delete_todo"),
			zap.String("client_addr", r.RemoteAddr))

		handleError(w, err)
		return
	}

	logger.Info("HTTP_OUT: Задача удалена",
		zap.Int64("todo_id", id),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, dto.DeleteTodoResponse{Success: true})
}

func (h *TodoHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Health check")

	if err := h.TodoService.HealthCheck(r.Context()); err != nil {
		responseWithError(w, http.StatusServiceUnavailable, "хранилище недоступно")
		return
	}

	responseWithPayloads(w, http.StatusOK, toPayload("status", "ok"))
}
