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

type DocumentHandler struct {
	log           *logger.Logger
	documents     services.DocumentService
	documentStock services.DocumentStockService
}

func NewDocumentHandler(log *logger.Logger, documents services.DocumentService, documentStock services.DocumentStockService) *DocumentHandler {
	return &DocumentHandler{
		log:           log.With("handler", "DocumentHandler"),
		documents:     documents,
		documentStock: documentStock,
	}
}

func (h *DocumentHandler) GetByUID(c *gin.Context) {
	uid := c.Param("uid")

	document, err := h.documents.GetByUID(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			response.RespondError(c, http.StatusNotFound, "document_not_found", err)
			return
		}
		h.log.Error("GetByUID failed", "error", err, "uid", uid)
		response.RespondError(c, http.StatusInternalServerError, "read_failed", err)
		return
	}
	response.RespondOK(c, document)
}

// ListCurrentWeek serves the documents whose lifecycle touched the trailing
// week of Paris calendar days.
func (h *DocumentHandler) ListCurrentWeek(c *gin.Context) {
	documents, err := h.documents.ListCurrentWeek(c.Request.Context())
	if err != nil {
		h.log.Error("ListCurrentWeek failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "read_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"documents": documents})
}

func (h *DocumentHandler) ListByTypeOrgane(c *gin.Context) {
	codeType := c.Param("codeType")

	documents, err := h.documents.ListByTypeOrgane(c.Request.Context(), codeType)
	if err != nil {
		h.log.Error("ListByTypeOrgane failed", "error", err, "code_type", codeType)
		response.RespondError(c, http.StatusInternalServerError, "read_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"documents": documents})
}

func (h *DocumentHandler) RefreshStock(c *gin.Context) {
	count, err := h.documentStock.Refresh(c.Request.Context())
	if err != nil {
		h.log.Error("RefreshStock failed", "error", err)
		response.RespondError(c, http.StatusBadGateway, "stock_update_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"count": count})
}
