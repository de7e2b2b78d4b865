package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"todoTracker/internal/config"
	"todoTracker/internal/handlers"
	"todoTracker/internal/logger"
	"todoTracker/internal/middleware"
	"todoTracker/internal/repository/todo/inmemory"
	"todoTracker/internal/repository/todo/postgres"
	"todoTracker/internal/service"
	"todoTracker/internal/worker"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type App struct {
	config     *config.Config
	server     *http.Server
	router     *chi.Mux
	repository service.TodoRepository
	service    handlers.TodoService
	worker     *worker.HealthWorker
	shutdowns  []func() // функции для graceful shutdown, вызываются в обратном порядке
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	if err := a.initRepository(ctx); err != nil {
		return fmt.Errorf("инициализация репозитория: %w", err)
	}

	todoService := service.NewTodoService(a.repository)
	a.service = &todoService

	a.initWorker()
	a.initRouter()

	a.server = &http.Server{
		Addr:         a.config.GetServerAddr(),
		Handler:      a.router,
		ReadTimeout:  a.config.Server.ReadTimeout.Std(),
		WriteTimeout: a.config.Server.WriteTimeout.Std(),
	}

	return nil
}

func (a *App) initRepository(ctx context.Context) error {
	switch a.config.Repository.Type {
	case "postgres":
		storage, err := postgres.New(ctx, a.config.Database)
		if err != nil {
			return err
		}
		if err := storage.Migrate(); err != nil {
			storage.Close()
			return err
		}
		a.shutdowns = append(a.shutdowns, storage.Close)
		a.repository = storage
	case "inmemory":
		a.repository = inmemory.NewTodoStorage()
	default:
		return fmt.Errorf("неизвестный тип репозитория: %q", a.config.Repository.Type)
	}
	return nil
}

func (a *App) initWorker() {
	a.worker = worker.NewHealthWorker(a.repository, a.config.Worker.HealthInterval.Std())

	workerCtx, cancel := context.WithCancel(context.Background())
	go a.worker.Start(workerCtx)

	a.shutdowns = append(a.shutdowns, cancel)
}

func (a *App) initRouter() {
	todoHandler := handlers.NewTodoHandler(a.service)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)

	// клиент — браузерная форма с другого origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", todoHandler.GetTodos)  // GET /todos
		r.Post("/", todoHandler.PostTodo) // POST /todos

		r.Route("/{id}", func(r chi.Router) {
			r.Patch("/", todoHandler.UpdateTodoByID)  // PATCH /todos/{id}
			r.Delete("/", todoHandler.DeleteTodoByID) // DELETE /todos/{id}
		})
	})

	r.Get("/health", todoHandler.HealthCheck)

	a.router = r
}

func (a *App) Run() error {
	logger.Info("Server started")

	err := a.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http сервер: %w", err)
	}
	return nil
}

// Shutdown останавливает сервер и раскручивает стек shutdown-функций
// в обратном порядке: сервер -> worker -> пул -> логгер
func (a *App) Shutdown(ctx context.Context) {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			logger.Error("Ошибка остановки сервера", err)
		}
	}

	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
}
