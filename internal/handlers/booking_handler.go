package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barbeariadobeco/barbearia-api/internal/cache"
	"github.com/barbeariadobeco/barbearia-api/internal/domain/schedule"
	"github.com/barbeariadobeco/barbearia-api/internal/dto"
	"github.com/barbeariadobeco/barbearia-api/internal/httperr"
	"github.com/barbeariadobeco/barbearia-api/internal/httpresp"
	ucBooking "github.com/barbeariadobeco/barbearia-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC     *ucBooking.Create
	completionUC *ucBooking.SetCompletion
	deleteUC     *ucBooking.Delete
	repo         schedule.Repository
	cache        *cache.ScheduleCache
	log          *zap.Logger
}

func NewBookingHandler(
	createUC *ucBooking.Create,
	completionUC *ucBooking.SetCompletion,
	deleteUC *ucBooking.Delete,
	repo schedule.Repository,
	scheduleCache *cache.ScheduleCache,
	log *zap.Logger,
) *BookingHandler {
	return &BookingHandler{
		createUC:     createUC,
		completionUC: completionUC,
		deleteUC:     deleteUC,
		repo:         repo,
		cache:        scheduleCache,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientName string `json:"nome" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Whatsapp   string `json:"whatsapp" binding:"required"`
	Barber     string `json:"barbeiro" binding:"required"`
	Date       string `json:"data" binding:"required"`
	Time       string `json:"horario" binding:"required"`
	Service    string `json:"servico" binding:"required"`
}

type SetCompletionRequest struct {
	Completed *bool  `json:"concluido" binding:"required"`
	Payment   string `json:"pagamento"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, "Todos os campos são obrigatórios.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateInput{
		ClientName: req.ClientName,
		Email:      req.Email,
		Phone:      req.Whatsapp,
		Barber:     req.Barber,
		Date:       req.Date,
		Time:       req.Time,
		Service:    req.Service,
	})
	if err != nil {
		h.mapBookingError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), b.Barber, b.Date)

	httpresp.Created(c, gin.H{
		"id":               b.ID,
		"horariosOcupados": b.Slots,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.repo.ListBookings(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list bookings", zap.Error(err))
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao buscar agendamentos.")
		return
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.NewBookingListDTO(b))
	}

	httpresp.OK(c, out)
}

// ======================================================
// COMPLETE / REOPEN
// ======================================================

func (h *BookingHandler) SetCompletion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req SetCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, `O valor de "concluido" deve ser um booleano.`)
		return
	}

	_, err = h.completionUC.Execute(
		c.Request.Context(),
		uint(id),
		*req.Completed,
		req.Payment,
	)
	if err != nil {
		h.mapBookingError(c, err)
		return
	}

	httpresp.Message(c, 200, "Agendamento atualizado com sucesso.")
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	b, err := h.deleteUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		h.mapBookingError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), b.Barber, b.Date)

	httpresp.Message(c, 200, "Agendamento deletado com sucesso.")
}

// ======================================================
// ERROR MAPPING
// ======================================================

func (h *BookingHandler) mapBookingError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case httperr.CodeMissingField:
		httperr.BadRequest(c, httperr.CodeMissingField, "Todos os campos são obrigatórios.")
	case httperr.CodeInvalidEmail:
		httperr.BadRequest(c, httperr.CodeInvalidEmail, "Email inválido.")
	case httperr.CodeInvalidDate:
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Data inválida.")
	case httperr.CodeInvalidService:
		httperr.BadRequest(c, httperr.CodeInvalidService, "Serviço inválido.")
	case httperr.CodeInvalidPayment:
		httperr.BadRequest(c, httperr.CodeInvalidPayment, "Forma de pagamento inválida.")
	case httperr.CodeSlotOutOfGrid:
		httperr.BadRequest(c, httperr.CodeSlotOutOfGrid, "Horário fora do expediente.")
	case httperr.CodeTimeConflict:
		httperr.Conflict(c, httperr.CodeTimeConflict, "Conflito de horário.")
	case httperr.CodeNotFound:
		httperr.NotFound(c, httperr.CodeNotFound, "Agendamento não encontrado.")
	default:
		h.log.Error("booking operation failed", zap.Error(err))
		httperr.Internal(c, "booking_failed", "Erro ao processar agendamento.")
	}
}
