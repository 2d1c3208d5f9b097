package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftline/backoffice/internal/http/dto"
	"github.com/craftline/backoffice/internal/models"
	"github.com/craftline/backoffice/internal/service"
)

type OrganizationHandler struct {
	svc *service.Lifecycle[models.Organization, *models.Organization]
}

func NewOrganizationHandler(svc *service.Lifecycle[models.Organization, *models.Organization]) *OrganizationHandler {
	return &OrganizationHandler{svc: svc}
}

func (h *OrganizationHandler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context(), listFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponses(records))
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(record))
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	org, err := h.svc.Create(c.Request.Context(), models.NewOrganization(req.Input()))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": org.ID}})
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	record := models.NewOrganization(req.Input())
	record.ID = id

	updated, err := h.svc.Update(c.Request.Context(), record)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(updated))
}

func (h *OrganizationHandler) Delete(c *gin.Context) {
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
