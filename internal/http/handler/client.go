package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftline/backoffice/internal/http/dto"
	"github.com/craftline/backoffice/internal/models"
	"github.com/craftline/backoffice/internal/service"
)

type ClientHandler struct {
	svc *service.Lifecycle[models.Client, *models.Client]
}

func NewClientHandler(svc *service.Lifecycle[models.Client, *models.Client]) *ClientHandler {
	return &ClientHandler{svc: svc}
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.svc.List(c.Request.Context(), listFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponses(clients))
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if _, err := h.svc.Create(c.Request.Context(), models.NewClient(req.Input())); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "client created"})
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	client := models.NewClient(req.Input())
	client.ID = id

	updated, err := h.svc.Update(c.Request.Context(), client)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(updated))
}

func (h *ClientHandler) Delete(c *gin.Context) {
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
