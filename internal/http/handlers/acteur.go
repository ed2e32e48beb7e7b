package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assemblee-ouverte/assemblee-backend/internal/http/response"
	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos/repoerr"
	"github.com/assemblee-ouverte/assemblee-backend/internal/services"
)

type ActeurHandler struct {
	log         *logger.Logger
	acteurs     services.ActeurService
	acteurStock services.ActeurStockService
}

func NewActeurHandler(log *logger.Logger, acteurs services.ActeurService, acteurStock services.ActeurStockService) *ActeurHandler {
	return &ActeurHandler{
		log:         log.With("handler", "ActeurHandler"),
		acteurs:     acteurs,
		acteurStock: acteurStock,
	}
}

func (h *ActeurHandler) GetByUID(c *gin.Context) {
	uid := c.Param("uid")
	legislature := c.Query("legislature")
	typeOrgane := c.Query("typeOrgane")

	acteur, err := h.acteurs.GetByUID(c.Request.Context(), uid, legislature, typeOrgane)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			response.RespondError(c, http.StatusNotFound, "acteur_not_found", err)
			return
		}
		h.log.Error("GetByUID failed", "error", err, "uid", uid)
		response.RespondError(c, http.StatusInternalServerError, "read_failed", err)
		return
	}
	response.RespondOK(c, acteur)
}

func (h *ActeurHandler) RefreshStock(c *gin.Context) {
	count, err := h.acteurStock.Refresh(c.Request.Context())
	if err != nil {
		h.log.Error("RefreshStock failed", "error", err)
		response.RespondError(c, http.StatusBadGateway, "stock_update_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"count": count})
}
