// api/controller/property_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	"github.com/dev-mohitbeniwal/casa/api/model"
	"github.com/dev-mohitbeniwal/casa/api/service"
	"github.com/dev-mohitbeniwal/casa/api/util"
	helper_util "github.com/dev-mohitbeniwal/casa/api/util/helper"
)

type PropertyController struct {
	propertyService service.IPropertyService
}

func NewPropertyController(propertyService service.IPropertyService) *PropertyController {
	return &PropertyController{
		propertyService: propertyService,
	}
}

// RegisterRoutes registers the API routes; reads are public.
func (pc *PropertyController) RegisterRoutes(r gin.IRouter, auth gin.HandlerFunc) {
	properties := r.Group("/properties")
	{
		properties.GET("", pc.ListProperties)
		properties.GET("/:id", pc.GetProperty)
		properties.POST("", auth, pc.CreateProperty)
		properties.PUT("/:id", auth, pc.UpdateProperty)
		properties.DELETE("/:id", auth, pc.DeleteProperty)
		properties.POST("/:id/favorite", auth, pc.AddFavorite)
		properties.DELETE("/:id/favorite", auth, pc.RemoveFavorite)
	}
}

// ListProperties endpoint
func (pc *PropertyController) ListProperties(c *gin.Context) {
	var filter model.PropertyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid search criteria", echo_errors.ErrInvalidSearchFilter)
		return
	}

	page, err := pc.propertyService.ListProperties(c.Request.Context(), filter)
	if err != nil {
		respondWithServiceError(c, err, "Server error retrieving properties")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Properties retrieved successfully",
		"properties": page.Properties,
		"pagination": page.Pagination,
	})
}

// GetProperty endpoint
func (pc *PropertyController) GetProperty(c *gin.Context) {
	propertyID, ok := propertyIDParam(c)
	if !ok {
		return
	}

	property, err := pc.propertyService.GetProperty(c.Request.Context(), propertyID)
	if err != nil {
		respondWithServiceError(c, err, "Server error retrieving property")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Property retrieved successfully",
		"property": property,
	})
}

// CreateProperty endpoint
func (pc *PropertyController) CreateProperty(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	var req model.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid property data", echo_errors.ErrInvalidPropertyData)
		return
	}

	property, err := pc.propertyService.CreateProperty(c.Request.Context(), requester, req)
	if err != nil {
		respondWithServiceError(c, err, "Server error creating property")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Property created successfully",
		"property": property,
	})
}

// UpdateProperty endpoint
func (pc *PropertyController) UpdateProperty(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	propertyID, ok := propertyIDParam(c)
	if !ok {
		return
	}
	var patch model.PropertyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid property data", echo_errors.ErrInvalidPropertyData)
		return
	}

	property, err := pc.propertyService.UpdateProperty(c.Request.Context(), requester, propertyID, patch)
	if err != nil {
		respondWithServiceError(c, err, "Server error updating property")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Property updated successfully",
		"property": property,
	})
}

// DeleteProperty endpoint
func (pc *PropertyController) DeleteProperty(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	propertyID, ok := propertyIDParam(c)
	if !ok {
		return
	}

	if err := pc.propertyService.DeleteProperty(c.Request.Context(), requester, propertyID); err != nil {
		respondWithServiceError(c, err, "Server error deleting property")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully"})
}

// AddFavorite endpoint
func (pc *PropertyController) AddFavorite(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	propertyID, ok := propertyIDParam(c)
	if !ok {
		return
	}

	favorite, err := pc.propertyService.AddFavorite(c.Request.Context(), requester, propertyID)
	if err != nil {
		respondWithServiceError(c, err, "Server error adding favorite")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Property added to favorites",
		"favorite": favorite,
	})
}

// RemoveFavorite endpoint
func (pc *PropertyController) RemoveFavorite(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	propertyID, ok := propertyIDParam(c)
	if !ok {
		return
	}

	if err := pc.propertyService.RemoveFavorite(c.Request.Context(), requester, propertyID); err != nil {
		respondWithServiceError(c, err, "Server error removing favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Property removed from favorites"})
}

func propertyIDParam(c *gin.Context) (int64, bool) {
	propertyID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid property ID", echo_errors.ErrInvalidPropertyData)
		return 0, false
	}
	return propertyID, true
}
