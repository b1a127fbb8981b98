// controllers/profile.go
package controllers

import (
	"net/http"

	"vendora-backend/models"
	"vendora-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	TaxNote string `json:"taxNote"`
}

type UpdateSettingsInput struct {
	Theme    string `json:"theme" binding:"omitempty,oneof=light dark system"`
	Currency string `json:"currency"`
	Language string `json:"language" binding:"omitempty,oneof=de en"`
}

// GetProfile returns the company profile printed on invoices.
func GetProfile(c *gin.Context) {
	profile, err := Repos.Profile.Get(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "Profile not found")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile overwrites the company profile wholesale.
func UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	profile := models.CompanyProfile{
		Name:    input.Name,
		Address: input.Address,
		Email:   input.Email,
		Phone:   input.Phone,
		TaxNote: input.TaxNote,
	}
	if err := Repos.Profile.Save(c.Request.Context(), profile); err != nil {
		respondStorageError(c, err, "Profile not found")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetSettings returns the app settings plus the display language.
func GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	settings, err := Repos.Settings.Get(ctx)
	if err != nil {
		respondStorageError(c, err, "Settings not found")
		return
	}
	language, err := Repos.Settings.Language(ctx)
	if err != nil {
		respondStorageError(c, err, "Settings not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"theme":    settings.Theme,
		"currency": settings.Currency,
		"language": language,
	})
}

// UpdateSettings saves the settings singleton; empty fields keep their
// current values.
func UpdateSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	settings, err := Repos.Settings.Get(ctx)
	if err != nil {
		respondStorageError(c, err, "Settings not found")
		return
	}

	if input.Theme != "" {
		settings.Theme = input.Theme
	}
	if input.Currency != "" {
		settings.Currency = input.Currency
	}
	if err := Repos.Settings.Save(ctx, settings); err != nil {
		respondStorageError(c, err, "Settings not found")
		return
	}

	language := input.Language
	if language != "" {
		if err := Repos.Settings.SaveLanguage(ctx, language); err != nil {
			respondStorageError(c, err, "Settings not found")
			return
		}
	} else {
		language, err = Repos.Settings.Language(ctx)
		if err != nil {
			respondStorageError(c, err, "Settings not found")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"theme":    settings.Theme,
		"currency": settings.Currency,
		"language": language,
	})
}
