package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barbeariadobeco/barbearia-api/internal/audit"
	"github.com/barbeariadobeco/barbearia-api/internal/cache"
	"github.com/barbeariadobeco/barbearia-api/internal/config"
	"github.com/barbeariadobeco/barbearia-api/internal/handlers"
	infraRepo "github.com/barbeariadobeco/barbearia-api/internal/infra/repository"
	"github.com/barbeariadobeco/barbearia-api/internal/storage"
	ucBooking "github.com/barbeariadobeco/barbearia-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	store storage.ImageStore,
	log *zap.Logger,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	scheduleCache := cache.New(cfg.RedisURL)

	eventLogger := audit.New(db)
	events := audit.NewDispatcher(eventLogger, log)

	// ======================================================
	// 🧠 USE CASES — SCHEDULING ENGINE
	// ======================================================
	createUC := ucBooking.NewCreate(bookingRepo, events)
	completionUC := ucBooking.NewSetCompletion(bookingRepo, events)
	deleteUC := ucBooking.NewDelete(bookingRepo, events)
	availabilityUC := ucBooking.NewAvailability(bookingRepo)
	dayScheduleUC := ucBooking.NewDaySchedule(bookingRepo)
	revenueUC := ucBooking.NewTotalRevenue(bookingRepo)
	dashboardUC := ucBooking.NewDashboard(bookingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		createUC,
		completionUC,
		deleteUC,
		bookingRepo,
		scheduleCache,
		log,
	)
	scheduleHandler := handlers.NewScheduleHandler(
		availabilityUC,
		dayScheduleUC,
		scheduleCache,
		log,
	)

	barberHandler := handlers.NewBarberHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	paymentHandler := handlers.NewPaymentMethodHandler(db)
	configHandler := handlers.NewConfigHandler(db, store, log)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC, revenueUC, log)

	// ======================================================
	// 📅 AGENDAMENTOS
	// ======================================================
	r.POST("/new-client", bookingHandler.Create)
	r.GET("/agendamentos", bookingHandler.List)
	r.PATCH("/agendamentos/:id", bookingHandler.SetCompletion)
	r.DELETE("/agendamentos/:id", bookingHandler.Delete)

	r.POST("/horarios-disponiveis", scheduleHandler.Available)
	r.GET("/todos-horarios", scheduleHandler.Day)

	// ======================================================
	// 💈 BARBEIROS
	// ======================================================
	r.GET("/barbeiros", barberHandler.ListNames)
	r.GET("/listarbarbeiros", barberHandler.List)
	r.GET("/listar-barbeiros", barberHandler.List)
	r.POST("/adicionar-barbeiro", barberHandler.Create)
	r.DELETE("/barbeiros/:id", barberHandler.Delete)
	r.DELETE("/listar-barbeiros/:id", barberHandler.Delete)
	r.POST("/barbeiroscapacitados", barberHandler.Capable)
	r.POST("/barbeiro-servico", barberHandler.SyncServices)

	// ======================================================
	// ✂️ SERVIÇOS
	// ======================================================
	r.GET("/servicos", serviceHandler.List)
	r.GET("/listar-servicos", serviceHandler.ListAll)
	r.POST("/adicionar-servico", serviceHandler.Create)
	r.PUT("/servicos/:id", serviceHandler.Update)
	r.DELETE("/remover-servico/:id", serviceHandler.Delete)

	// ======================================================
	// 💰 FORMAS DE PAGAMENTO
	// ======================================================
	r.GET("/listar-formas-pagamento", paymentHandler.List)
	r.POST("/adicionar-forma-pagamento", paymentHandler.Create)
	r.DELETE("/remover-forma-pagamento/:id", paymentHandler.Delete)

	// ======================================================
	// ⚙️ CONFIG + DASHBOARD
	// ======================================================
	r.GET("/config", configHandler.Get)
	r.POST("/config", configHandler.Upsert)

	r.GET("/dashboard", dashboardHandler.Summary)
	r.GET("/total-agendamentos-concluidos", dashboardHandler.CompletedRevenue)

	// Branding assets are served by the API itself on the local driver.
	if cfg.StorageDriver == "local" {
		r.Static("/images", cfg.ImagesDir)
	}
}
