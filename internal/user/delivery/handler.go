package delivery

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palloncino/storage-server-app-01/internal/user/dto"
	"github.com/palloncino/storage-server-app-01/internal/user/usecase"
	"github.com/palloncino/storage-server-app-01/pkg/httputil"
)

// UserHandler handles user administration HTTP requests
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// GetUsers returns all users
// GET /api/users/get-users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userUsecase.GetUsers()
	if err != nil {
		httputil.RespondError(c, err, "Error retrieving users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// EditUser updates an existing user
// PUT /api/users/edit-user
func (h *UserHandler) EditUser(c *gin.Context) {
	var req dto.EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad request. Please check your JSON format."})
		return
	}

	user, err := h.userUsecase.EditUser(&req)
	if err != nil {
		httputil.RespondError(c, err, "Error updating user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUsers removes one or more users by id
// DELETE /api/users/delete-users
func (h *UserHandler) DeleteUsers(c *gin.Context) {
	var req dto.DeleteUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request, 'ids' must be an array of user IDs."})
		return
	}

	if _, err := h.userUsecase.DeleteUsers(req.Ids); err != nil {
		httputil.RespondError(c, err, "Error deleting users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ids":     req.Ids,
		"message": fmt.Sprintf("Users with IDs: %s were successfully deleted.", httputil.JoinIDs(req.Ids)),
	})
}
