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

type OrganeHandler struct {
	log         *logger.Logger
	organes     services.OrganeService
	organeStock services.OrganeStockService
}

func NewOrganeHandler(log *logger.Logger, organes services.OrganeService, organeStock services.OrganeStockService) *OrganeHandler {
	return &OrganeHandler{
		log:         log.With("handler", "OrganeHandler"),
		organes:     organes,
		organeStock: organeStock,
	}
}

func (h *OrganeHandler) GetByUID(c *gin.Context) {
	uid := c.Param("uid")

	organe, err := h.organes.GetByUID(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			response.RespondError(c, http.StatusNotFound, "organe_not_found", err)
			return
		}
		h.log.Error("GetByUID failed", "error", err, "uid", uid)
		response.RespondError(c, http.StatusInternalServerError, "read_failed", err)
		return
	}
	response.RespondOK(c, organe)
}

func (h *OrganeHandler) RefreshStock(c *gin.Context) {
	count, err := h.organeStock.Refresh(c.Request.Context())
	if err != nil {
		h.log.Error("RefreshStock failed", "error", err)
		response.RespondError(c, http.StatusBadGateway, "stock_update_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"count": count})
}
