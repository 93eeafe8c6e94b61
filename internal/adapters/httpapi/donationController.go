package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DonationController struct{ dc DonationUseCase }

func NewDonationController(dc DonationUseCase) *DonationController {
	return &DonationController{dc: dc}
}

func (ctl *DonationController) Donate(c *gin.Context) {
	var req struct {
		ReceiverID string  `json:"receiver_id" binding:"required"`
		Amount     float64 `json:"amount" binding:"required"`
		Currency   string  `json:"currency"`
		TxHash     string  `json:"tx_hash" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	res, err := ctl.dc.Donate(c.Request.Context(), userID.(string), req.ReceiverID, req.Amount, req.Currency, req.TxHash)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *DonationController) GetSent(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	page, limit := pageParams(c, 10)

	donations, total, err := ctl.dc.ListSent(c.Request.Context(), userID.(string), page, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, paginated(gin.H{"donations": donations}, page, limit, total))
}

func (ctl *DonationController) GetReceived(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	page, limit := pageParams(c, 10)

	donations, total, err := ctl.dc.ListReceived(c.Request.Context(), userID.(string), page, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, paginated(gin.H{"donations": donations}, page, limit, total))
}
