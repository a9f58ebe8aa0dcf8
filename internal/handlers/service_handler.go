package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbeariadobeco/barbearia-api/internal/httperr"
	"github.com/barbeariadobeco/barbearia-api/internal/httpresp"
	"github.com/barbeariadobeco/barbearia-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type ServiceRequest struct {
	Name        string   `json:"nome" binding:"required"`
	DurationMin int      `json:"duracao" binding:"required"`
	Price       *float64 `json:"valor" binding:"required"`
}

type serviceSummary struct {
	Name        string  `json:"nome"`
	DurationMin int     `json:"duracao"`
	Price       float64 `json:"valor"`
}

// List is the booking-page view: name, duration and price only.
func (h *ServiceHandler) List(c *gin.Context) {
	var services []serviceSummary
	if err := h.db.Model(&models.Service{}).
		Select("nome", "duracao", "valor").
		Order("id ASC").
		Scan(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao buscar serviços.")
		return
	}
	httpresp.OK(c, services)
}

func (h *ServiceHandler) ListAll(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao buscar serviços.")
		return
	}
	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, "Nome, duração e valor são obrigatórios.")
		return
	}

	if req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
		return
	}

	svc := models.Service{
		Name:        req.Name,
		DurationMin: req.DurationMin,
		Price:       *req.Price,
	}
	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao adicionar serviço.")
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido. Deve ser um número.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, "Nome, duração e valor são obrigatórios.")
		return
	}

	if req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
		return
	}

	res := h.db.Model(&models.Service{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"nome":    req.Name,
			"duracao": req.DurationMin,
			"valor":   *req.Price,
		})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Serviço não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{
		"id":      id,
		"nome":    req.Name,
		"duracao": req.DurationMin,
		"valor":   *req.Price,
	})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido. Deve ser um número.")
		return
	}

	res := h.db.Delete(&models.Service{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao deletar serviço.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Serviço não encontrado.")
		return
	}

	c.Status(204)
}
