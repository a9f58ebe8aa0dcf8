package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbeariadobeco/barbearia-api/internal/httperr"
	"github.com/barbeariadobeco/barbearia-api/internal/httpresp"
	"github.com/barbeariadobeco/barbearia-api/internal/models"
)

type PaymentMethodHandler struct {
	db *gorm.DB
}

func NewPaymentMethodHandler(db *gorm.DB) *PaymentMethodHandler {
	return &PaymentMethodHandler{db: db}
}

type PaymentMethodRequest struct {
	Name       string   `json:"nome" binding:"required"`
	FeePercent *float64 `json:"taxa" binding:"required"`
}

func (h *PaymentMethodHandler) List(c *gin.Context) {
	var methods []models.PaymentMethod
	if err := h.db.Order("id ASC").Find(&methods).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payment_methods", "Erro ao listar formas de pagamento.")
		return
	}
	httpresp.OK(c, methods)
}

func (h *PaymentMethodHandler) Create(c *gin.Context) {
	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, "Nome e taxa são obrigatórios.")
		return
	}

	method := models.PaymentMethod{
		Name:       req.Name,
		FeePercent: *req.FeePercent,
	}
	if err := h.db.Create(&method).Error; err != nil {
		httperr.Internal(c, "failed_to_create_payment_method", "Erro ao adicionar forma de pagamento.")
		return
	}

	httpresp.Created(c, method)
}

func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.PaymentMethod{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_payment_method", "Erro ao remover forma de pagamento.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Forma de pagamento não encontrada.")
		return
	}

	httpresp.Message(c, 200, "Forma de pagamento removida com sucesso.")
}
