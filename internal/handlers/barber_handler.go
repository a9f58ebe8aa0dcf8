package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbeariadobeco/barbearia-api/internal/httperr"
	"github.com/barbeariadobeco/barbearia-api/internal/httpresp"
	"github.com/barbeariadobeco/barbearia-api/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

type CreateBarberRequest struct {
	Name string `json:"nome" binding:"required"`
}

type CapableBarbersRequest struct {
	Service string `json:"servico" binding:"required"`
}

type SyncServicesRequest struct {
	BarberID uint   `json:"barberId" binding:"required"`
	Services []uint `json:"services"`
}

type barberName struct {
	Name string `json:"nome"`
}

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao buscar barbeiros.")
		return
	}
	httpresp.OK(c, barbers)
}

func (h *BarberHandler) ListNames(c *gin.Context) {
	var names []barberName
	if err := h.db.Model(&models.Barber{}).
		Select("nome").
		Order("id ASC").
		Scan(&names).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao buscar barbeiros.")
		return
	}
	httpresp.OK(c, names)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, "O nome do barbeiro é obrigatório.")
		return
	}

	barber := models.Barber{Name: req.Name}
	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao adicionar barbeiro.")
		return
	}

	httpresp.Created(c, barber)
}

// Delete removes the barber's capability rows first, then the barber, in one
// transaction. No database-level cascade is assumed.
func (h *BarberHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Barbeiro não encontrado.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barbeiro_id = ?", barber.ID).
			Delete(&models.BarberService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Barber{}, barber.ID).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao remover barbeiro.")
		return
	}

	httpresp.Message(c, 200, "Barbeiro removido com sucesso.")
}

// Capable lists barbers qualified for a service, matching the service name
// with collapsed whitespace like the original booking page sends it.
func (h *BarberHandler) Capable(c *gin.Context) {
	var req CapableBarbersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, "O serviço é obrigatório.")
		return
	}

	normalized := strings.Join(strings.Fields(req.Service), " ")

	var names []barberName
	err := h.db.Table("barbeiros b").
		Select("b.nome").
		Joins("JOIN barbeiro_servicos bs ON b.id = bs.barbeiro_id").
		Joins("JOIN servicos s ON s.id = bs.servico_id").
		Where("s.nome = ?", normalized).
		Scan(&names).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao buscar barbeiros.")
		return
	}

	httpresp.OK(c, names)
}

// SyncServices replaces the barber's capability set. Delete-then-insert runs
// inside one transaction so concurrent syncs cannot interleave into a mixed
// set.
func (h *BarberHandler) SyncServices(c *gin.Context) {
	var req SyncServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Services == nil {
		httperr.BadRequest(c, httperr.CodeMissingField, "Barbeiro ID e serviços são obrigatórios.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barbeiro_id = ?", req.BarberID).
			Delete(&models.BarberService{}).Error; err != nil {
			return err
		}

		if len(req.Services) == 0 {
			return nil
		}

		links := make([]models.BarberService, 0, len(req.Services))
		for _, serviceID := range req.Services {
			links = append(links, models.BarberService{
				BarberID:  req.BarberID,
				ServiceID: serviceID,
			})
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_sync_services", "Erro ao associar barbeiro a serviços.")
		return
	}

	httpresp.Message(c, 201, "Associações atualizadas com sucesso.")
}
