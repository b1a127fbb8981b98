// controllers/backup.go
package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"vendora-backend/storage"
	"vendora-backend/utils"

	"github.com/gin-gonic/gin"
)

// ExportBackup streams the full backup envelope as a downloadable JSON file.
func ExportBackup(c *gin.Context) {
	data, err := Repos.ExportAll(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "Backup failed")
		return
	}

	filename := fmt.Sprintf("vendora_backup_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", []byte(data))
}

// ImportBackup restores from an uploaded envelope. Sections absent from the
// input are left untouched.
func ImportBackup(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Backup file required")
		return
	}

	if err := Repos.ImportAll(c.Request.Context(), string(body)); err != nil {
		if errors.Is(err, storage.ErrParse) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid backup file")
			return
		}
		respondStorageError(c, err, "Backup not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Backup imported successfully"})
}

// ResetData deletes every stored collection, singleton and the invoice
// counter. There is no undo.
func ResetData(c *gin.Context) {
	if err := Repos.ResetAll(c.Request.Context()); err != nil {
		respondStorageError(c, err, "Reset failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All data deleted"})
}
