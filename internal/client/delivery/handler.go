package delivery

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palloncino/storage-server-app-01/internal/client/dto"
	"github.com/palloncino/storage-server-app-01/internal/client/usecase"
	"github.com/palloncino/storage-server-app-01/pkg/httputil"
)

// ClientHandler handles client HTTP requests
type ClientHandler struct {
	clientUsecase usecase.ClientUsecase
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientUsecase usecase.ClientUsecase) *ClientHandler {
	return &ClientHandler{clientUsecase: clientUsecase}
}

// GetClients returns all clients
// GET /api/clients/get-clients
func (h *ClientHandler) GetClients(c *gin.Context) {
	clients, err := h.clientUsecase.GetClients()
	if err != nil {
		httputil.RespondError(c, err, "Error retrieving clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// CreateClient creates a new client
// POST /api/clients/create-client
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad request. Please check your JSON format."})
		return
	}

	client, err := h.clientUsecase.CreateClient(&req)
	if err != nil {
		httputil.RespondError(c, err, "Error creating client")
		return
	}
	c.JSON(http.StatusCreated, client)
}

// EditClient updates an existing client
// PUT /api/clients/edit-client
func (h *ClientHandler) EditClient(c *gin.Context) {
	var req dto.EditClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad request. Please check your JSON format."})
		return
	}

	client, err := h.clientUsecase.EditClient(&req)
	if err != nil {
		httputil.RespondError(c, err, "Error updating client")
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClients removes one or more clients by id
// DELETE /api/clients/delete-clients
func (h *ClientHandler) DeleteClients(c *gin.Context) {
	var req dto.DeleteClientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request, 'ids' must be an array of client IDs."})
		return
	}

	if _, err := h.clientUsecase.DeleteClients(req.Ids); err != nil {
		httputil.RespondError(c, err, "Error deleting clients")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ids":     req.Ids,
		"message": fmt.Sprintf("Clients with IDs: %s were successfully deleted.", httputil.JoinIDs(req.Ids)),
	})
}
