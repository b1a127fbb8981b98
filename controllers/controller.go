// controllers/controller.go
package controllers

import (
	"errors"
	"net/http"

	"vendora-backend/storage"
	"vendora-backend/utils"

	"github.com/gin-gonic/gin"
)

// Repos is wired at startup, like the database handle in config. Tests swap
// in repositories over an in-memory store.
var Repos *storage.Repositories

// respondStorageError maps repository failures to HTTP responses.
func respondStorageError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, storage.ErrParse):
		utils.RespondWithError(c, http.StatusInternalServerError, "Stored data is corrupted")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Storage error")
	}
}
