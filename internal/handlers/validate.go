package handlers

import (
	"mime"
	"net/http"
	"strconv"
	"strings"

	"todoTracker/internal/handlers/dto"
	"todoTracker/internal/service"

	"github.com/go-chi/chi/v5"
)

func checkContentType(r *http.Request, target string) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == target
}

// idFromURL разбирает {id} из пути; id — положительное целое
func idFromURL(r *http.Request) (int64, *service.BusinessError) {
	idParam := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		return 0, service.NewValidationError("id", "должно быть целым числом")
	}
	if id <= 0 {
		return 0, service.NewValidationError("id", "должно быть положительным")
	}
	return id, nil
}

func validateCreate(req *dto.CreateTodoRequest) *service.BusinessError {
	if strings.TrimSpace(req.Title) == "" {
		return service.NewValidationError("title", "не может быть пустым")
	}
	return nil
}

// validateUpdate: отсутствующее поле — норма, присутствующее обязано быть
// корректным; null допустим только для description
func validateUpdate(req *dto.UpdateTodoRequest) *service.BusinessError {
	if req.Title.Set {
		if !req.Title.Valid {
			return service.NewValidationError("title", "не может быть null")
		}
		if strings.TrimSpace(req.Title.Value) == "" {
			return service.NewValidationError("title", "не может быть пустым")
		}
	}

	if req.Completed.Set && !req.Completed.Valid {
		return service.NewValidationError("completed", "не может быть null")
	}

	return nil
}
