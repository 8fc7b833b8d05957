package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"linkly-be/internal/service"
)

type QRCodeController struct {
	linkService service.LinkService
}

func NewQRCodeController(linkService service.LinkService) *QRCodeController {
	return &QRCodeController{
		linkService: linkService,
	}
}

// Generate handles GET /api/link/qr/:shortCode - renders the stored short URL
// as a PNG QR code.
func (qc *QRCodeController) Generate(c *gin.Context) {
	link, err := qc.linkService.Get(c.Request.Context(), c.Param("shortCode"))
	if err != nil {
		respondError(c, err)
		return
	}

	// 256x256 pixels, medium error recovery
	pngData, err := qrcode.Encode(link.ShortURL, qrcode.Medium, 256)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
