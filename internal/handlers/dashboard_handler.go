package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barbeariadobeco/barbearia-api/internal/httperr"
	"github.com/barbeariadobeco/barbearia-api/internal/httpresp"
	ucBooking "github.com/barbeariadobeco/barbearia-api/internal/usecase/booking"
)

type DashboardHandler struct {
	dashboardUC *ucBooking.Dashboard
	revenueUC   *ucBooking.TotalRevenue
	log         *zap.Logger
}

func NewDashboardHandler(
	dashboardUC *ucBooking.Dashboard,
	revenueUC *ucBooking.TotalRevenue,
	log *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		revenueUC:   revenueUC,
		log:         log,
	}
}

// Summary aggregates the current month: booking count and gross revenue.
func (h *DashboardHandler) Summary(c *gin.Context) {
	data, err := h.dashboardUC.Execute(c.Request.Context(), time.Now())
	if err != nil {
		h.log.Error("dashboard aggregation failed", zap.Error(err))
		httperr.Internal(c, "dashboard_failed", "Erro ao buscar dados do dashboard.")
		return
	}
	httpresp.OK(c, data)
}

// CompletedRevenue sums net revenue over completed bookings: service price
// minus the payment method fee. Zero completed bookings yields total 0.
func (h *DashboardHandler) CompletedRevenue(c *gin.Context) {
	total, err := h.revenueUC.Execute(c.Request.Context())
	if err != nil {
		h.log.Error("revenue aggregation failed", zap.Error(err))
		httperr.Internal(c, "revenue_failed", "Erro ao buscar agendamentos.")
		return
	}
	httpresp.OK(c, gin.H{"total": total})
}
