package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftline/backoffice/internal/http/dto"
	"github.com/craftline/backoffice/internal/models"
	"github.com/craftline/backoffice/internal/service"
)

type JobHandler struct {
	svc *service.Lifecycle[models.Job, *models.Job]
}

func NewJobHandler(svc *service.Lifecycle[models.Job, *models.Job]) *JobHandler {
	return &JobHandler{svc: svc}
}

func (h *JobHandler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context(), listFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponses(records))
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(record))
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	job, err := h.svc.Create(c.Request.Context(), models.NewJob(req.Input()))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": job.ID}})
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	record := models.NewJob(req.Input())
	record.ID = id

	updated, err := h.svc.Update(c.Request.Context(), record)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(updated))
}

func (h *JobHandler) Delete(c *gin.Context) {
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
