package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davicafu/adsflow/internal/ad/application"
	"github.com/davicafu/adsflow/pkg/utils"
)

// AdHandler encapsula los endpoints HTTP relacionados con Ad.
type AdHandler struct {
	service *application.AdService
	log     *zap.Logger
}

// NewAdHandler crea un nuevo AdHandler.
func NewAdHandler(service *application.AdService, log *zap.Logger) *AdHandler {
	return &AdHandler{service: service, log: log}
}

// CreateAd endpoint POST /ads
// El cuerpo se pasa crudo al pipeline: el parseo y la validación son suyos.
func (h *AdHandler) CreateAd(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.log.Error("Failed to read request body", zap.Error(err))
		utils.SendInternalServerError(c, application.MessageInternalError)
		return
	}

	ad, err := h.service.CreateAd(c.Request.Context(), body)
	status, resp := application.Respond(ad, err)
	utils.Send(c, status, resp)
}
