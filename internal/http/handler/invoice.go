package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftline/backoffice/internal/http/dto"
	"github.com/craftline/backoffice/internal/models"
	"github.com/craftline/backoffice/internal/service"
)

type InvoiceHandler struct {
	svc *service.Lifecycle[models.Invoice, *models.Invoice]
}

func NewInvoiceHandler(svc *service.Lifecycle[models.Invoice, *models.Invoice]) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context(), listFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponses(records))
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(record))
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if _, err := h.svc.Create(c.Request.Context(), models.NewInvoice(req.Input())); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "invoice created"})
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	record := models.NewInvoice(req.Input())
	record.ID = id

	updated, err := h.svc.Update(c.Request.Context(), record)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(updated))
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
