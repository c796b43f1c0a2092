package health

import (
	"classbooking/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

func (handler *Handler) Health(writer http.ResponseWriter, _ *http.Request) {
	response.WithMessage(writer, http.StatusOK, "ok")
}
