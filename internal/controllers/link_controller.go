package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"linkly-be/internal/models"
	"linkly-be/internal/service"
)

type LinkController struct {
	linkService service.LinkService
}

func NewLinkController(linkService service.LinkService) *LinkController {
	return &LinkController{
		linkService: linkService,
	}
}

// Create handles POST /api/link/create
func (lc *LinkController) Create(c *gin.Context) {
	var req models.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Original URL and user ID are required",
			"details": err.Error(),
		})
		return
	}

	response, err := lc.linkService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Redirect handles GET /api/link/:shortCode - the click-recording redirect.
func (lc *LinkController) Redirect(c *gin.Context) {
	shortCode := c.Param("shortCode")

	originalURL, err := lc.linkService.Redirect(
		c.Request.Context(),
		shortCode,
		c.ClientIP(),
		c.Request.UserAgent(),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, originalURL)
}

// ListByUser handles GET /api/link/short-links/:userId
func (lc *LinkController) ListByUser(c *gin.Context) {
	links, err := lc.linkService.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LinksResponse{ShortLinks: links})
}

// Update handles PUT /api/link/update/:shortCode
func (lc *LinkController) Update(c *gin.Context) {
	var req models.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	response, err := lc.linkService.Update(c.Request.Context(), c.Param("shortCode"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/link/delete/:shortCode
func (lc *LinkController) Delete(c *gin.Context) {
	shortCode := c.Param("shortCode")

	if err := lc.linkService.Delete(c.Request.Context(), shortCode); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Short link deleted successfully",
		"shortCode": shortCode,
	})
}

// Search handles GET /api/link?remarks=&offset=&limit=
func (lc *LinkController) Search(c *gin.Context) {
	remarks := c.Query("remarks")
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	links, err := lc.linkService.Search(c.Request.Context(), remarks, offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, links)
}

// Responses handles GET /api/link/:shortCode/responses
func (lc *LinkController) Responses(c *gin.Context) {
	responses, err := lc.linkService.Responses(c.Request.Context(), c.Param("shortCode"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ResponsesResponse{
		Message:   "Responses fetched successfully",
		Responses: responses,
	})
}

// Analytics handles GET /api/link/analytics/:userId
func (lc *LinkController) Analytics(c *gin.Context) {
	analytics, err := lc.linkService.Analytics(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
