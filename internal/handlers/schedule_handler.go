package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barbeariadobeco/barbearia-api/internal/cache"
	"github.com/barbeariadobeco/barbearia-api/internal/httperr"
	"github.com/barbeariadobeco/barbearia-api/internal/httpresp"
	ucBooking "github.com/barbeariadobeco/barbearia-api/internal/usecase/booking"
)

type ScheduleHandler struct {
	availabilityUC *ucBooking.Availability
	dayScheduleUC  *ucBooking.DaySchedule
	cache          *cache.ScheduleCache
	log            *zap.Logger
}

func NewScheduleHandler(
	availabilityUC *ucBooking.Availability,
	dayScheduleUC *ucBooking.DaySchedule,
	scheduleCache *cache.ScheduleCache,
	log *zap.Logger,
) *ScheduleHandler {
	return &ScheduleHandler{
		availabilityUC: availabilityUC,
		dayScheduleUC:  dayScheduleUC,
		cache:          scheduleCache,
		log:            log,
	}
}

type AvailabilityRequest struct {
	Barber  string `json:"barbeiro" binding:"required"`
	Date    string `json:"data" binding:"required"`
	Service string `json:"servico" binding:"required"`
}

// Available returns every start time at which the requested service fits.
func (h *ScheduleHandler) Available(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, "Barbeiro, data e serviço são obrigatórios.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		req.Barber,
		req.Date,
		req.Service,
	)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidService) {
			httperr.BadRequest(c, httperr.CodeInvalidService, "Serviço inválido.")
			return
		}
		h.log.Error("availability failed", zap.Error(err))
		httperr.Internal(c, "availability_failed", "Erro ao buscar horários ocupados.")
		return
	}

	httpresp.OK(c, slots)
}

// Day returns the full grid annotated occupied/free with client attribution,
// independent of any service duration. Responses are cached briefly per
// (barber, date) and invalidated by booking writes.
func (h *ScheduleHandler) Day(c *gin.Context) {
	barber := c.Query("barbeiro")
	date := c.Query("data")

	if barber == "" || date == "" {
		httperr.BadRequest(c, httperr.CodeMissingField, "Barbeiro e data são obrigatórios.")
		return
	}

	ctx := c.Request.Context()

	if payload, ok := h.cache.Get(ctx, barber, date); ok {
		c.Data(200, "application/json; charset=utf-8", payload)
		return
	}

	entries, err := h.dayScheduleUC.Execute(ctx, barber, date)
	if err != nil {
		h.log.Error("day schedule failed", zap.Error(err))
		httperr.Internal(c, "day_schedule_failed", "Erro ao buscar agendamentos.")
		return
	}

	if payload, err := json.Marshal(entries); err == nil {
		h.cache.Set(ctx, barber, date, payload)
	}

	httpresp.OK(c, entries)
}
