package slot

import (
	"classbooking/infras/otel"
	"classbooking/internal/domains/allocation/model/dto"
	"classbooking/internal/domains/allocation/service"
	"classbooking/shared/constant"
	"classbooking/shared/failure"
	"classbooking/shared/validator"
	"classbooking/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	msgBooked    = "Your slot booked successfully."
	msgCancelled = "A class cancelled successfully."
)

type Handler struct {
	service service.Slot
	otel    otel.Otel
}

func New(service service.Slot, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/class", func(routerGroup chi.Router) {
		routerGroup.Get("/list", handler.GetAvailability)
		routerGroup.Post("/book", handler.BookSlot)
		routerGroup.Post("/cancel", handler.CancelSlot)
	})
}

// GetAvailability lists the booked people totals per classroom, date and
// interval.
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	availability, err := handler.service.GetAvailability(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Availability retrieved successfully")

	response.WithPayload(writer, http.StatusOK, availability)
}

// BookSlot books a classroom slot for a date, hour interval and people count.
func (handler *Handler) BookSlot(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookSlot")
	defer scope.End()

	req := dto.BookSlotRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		handler.respond(writer, err, constant.Empty)

		return
	}

	if err := handler.service.Book(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book slot")

		handler.respond(writer, err, constant.Empty)

		return
	}

	scope.AddEvent("Slot booked successfully")

	handler.respond(writer, nil, msgBooked)
}

// CancelSlot cancels a booking matching class, date, interval and people count
// exactly.
func (handler *Handler) CancelSlot(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelSlot")
	defer scope.End()

	req := dto.CancelSlotRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		handler.respond(writer, err, constant.Empty)

		return
	}

	if err := handler.service.Cancel(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel slot")

		handler.respond(writer, err, constant.Empty)

		return
	}

	scope.AddEvent("Slot cancelled successfully")

	handler.respond(writer, nil, msgCancelled)
}

// respond writes the uniform book/cancel result body. Validation and business
// failures keep HTTP 200 and flag the error in the body; only infrastructure
// faults surface as a 5xx.
func (handler *Handler) respond(writer http.ResponseWriter, err error, successMsg string) {
	if err == nil {
		response.WithPayload(writer, http.StatusOK, dto.SlotResult{Error: false, Validation: successMsg})

		return
	}

	if failure.IsValidation(err) {
		response.WithPayload(writer, http.StatusOK, dto.SlotResult{Error: true, Validation: err.Error()})

		return
	}

	response.WithPayload(writer, http.StatusInternalServerError, dto.SlotResult{Error: true, Validation: "internal server error"})
}
