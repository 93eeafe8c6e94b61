package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatsController struct{ sc StatsUseCase }

func NewStatsController(sc StatsUseCase) *StatsController { return &StatsController{sc: sc} }

func (ctl *StatsController) GetDashboard(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	dashboard, err := ctl.sc.GetCreatorDashboard(c.Request.Context(), userID.(string))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": dashboard})
}

func (ctl *StatsController) GetPublicProfile(c *gin.Context) {
	profile, err := ctl.sc.PublicCreatorProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
