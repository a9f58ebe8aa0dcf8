package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barbeariadobeco/barbearia-api/internal/httperr"
	"github.com/barbeariadobeco/barbearia-api/internal/httpresp"
	"github.com/barbeariadobeco/barbearia-api/internal/imaging"
	"github.com/barbeariadobeco/barbearia-api/internal/models"
	"github.com/barbeariadobeco/barbearia-api/internal/storage"
)

type ConfigHandler struct {
	db    *gorm.DB
	store storage.ImageStore
	log   *zap.Logger
}

func NewConfigHandler(db *gorm.DB, store storage.ImageStore, log *zap.Logger) *ConfigHandler {
	return &ConfigHandler{
		db:    db,
		store: store,
		log:   log,
	}
}

func (h *ConfigHandler) Get(c *gin.Context) {
	var cfg models.ShopConfig
	if err := h.db.First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Configurações não encontradas.")
			return
		}
		httperr.Internal(c, "failed_to_get_config", "Erro ao buscar configurações.")
		return
	}
	httpresp.OK(c, cfg)
}

// Upsert writes the singleton shop configuration. Uploaded branding images
// are converted to webp and stored; when a file is not supplied the existing
// asset URL is kept.
func (h *ConfigHandler) Upsert(c *gin.Context) {
	name := c.PostForm("barbershopName")
	commission := c.PostForm("commission")
	contact := c.PostForm("contact")
	color := c.PostForm("color")

	if strings.TrimSpace(name) == "" {
		httperr.BadRequest(c, httperr.CodeMissingField, "O nome da barbearia é obrigatório.")
		return
	}

	slug := strings.Join(strings.Fields(name), "-")

	logoURL, err := h.saveImage(c, "logo", slug+"-logo")
	if err != nil {
		h.log.Error("failed to store logo", zap.Error(err))
		httperr.Internal(c, "failed_to_store_image", "Erro ao salvar imagem.")
		return
	}

	backgroundURL, err := h.saveImage(c, "backgroundImage", slug+"-background")
	if err != nil {
		h.log.Error("failed to store background image", zap.Error(err))
		httperr.Internal(c, "failed_to_store_image", "Erro ao salvar imagem.")
		return
	}

	var cfg models.ShopConfig
	err = h.db.First(&cfg).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		cfg = models.ShopConfig{
			Name:          name,
			Commission:    commission,
			Contact:       contact,
			LogoURL:       logoURL,
			BackgroundURL: backgroundURL,
			ColorCode:     color,
		}
		if err := h.db.Create(&cfg).Error; err != nil {
			httperr.Internal(c, "failed_to_save_config", "Erro ao salvar configurações.")
			return
		}
		httpresp.OK(c, gin.H{"message": "Configurações salvas com sucesso!"})

	case err != nil:
		httperr.Internal(c, "failed_to_save_config", "Erro ao verificar configurações.")

	default:
		cfg.Name = name
		cfg.Commission = commission
		cfg.Contact = contact
		cfg.ColorCode = color
		if logoURL != "" {
			cfg.LogoURL = logoURL
		}
		if backgroundURL != "" {
			cfg.BackgroundURL = backgroundURL
		}
		if err := h.db.Save(&cfg).Error; err != nil {
			httperr.Internal(c, "failed_to_save_config", "Erro ao atualizar configurações.")
			return
		}
		httpresp.OK(c, gin.H{"message": "Configurações atualizadas com sucesso!"})
	}
}

// saveImage returns "" when the form field carries no file.
func (h *ConfigHandler) saveImage(c *gin.Context, field, baseName string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	data, err := readUpload(fh)
	if err != nil {
		return "", err
	}

	encoded, err := imaging.ToWebP(data)
	if err != nil {
		return "", err
	}

	// Unique suffix so a re-upload never collides with a cached older asset.
	objectName := fmt.Sprintf("%s-%s.webp", baseName, uuid.NewString()[:8])

	return h.store.Save(c.Request.Context(), objectName, encoded, "image/webp")
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
