package httpapi

import (
	"net/http"

	followPort "github.com/jonuar/Donacrypto/internal/ports/follow"

	"github.com/gin-gonic/gin"
)

type FollowController struct{ fc FollowUseCase }

func NewFollowController(fc FollowUseCase) *FollowController {
	return &FollowController{fc: fc}
}

func (ctl *FollowController) Follow(c *gin.Context) {
	var req struct {
		Creator string `json:"creator" binding:"required"` // account id or username
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

	outcome, err := ctl.fc.Follow(c.Request.Context(), userID.(string), req.Creator)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if outcome == followPort.OutcomeAlreadyFollowing {
		c.JSON(http.StatusOK, gin.H{"status": outcome, "message": "already following this creator"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": outcome, "message": "successfully followed creator"})
}

func (ctl *FollowController) Unfollow(c *gin.Context) {
	var req struct {
		CreatorID string `json:"creator_id" binding:"required"`
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

	outcome, err := ctl.fc.Unfollow(c.Request.Context(), userID.(string), req.CreatorID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if outcome == followPort.OutcomeNotFollowing {
		c.JSON(http.StatusOK, gin.H{"status": outcome, "message": "you were not following this creator"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": outcome, "message": "successfully unfollowed creator"})
}

func (ctl *FollowController) GetFollowing(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	page, limit := pageParams(c, 10)

	following, total, err := ctl.fc.ListFollowing(c.Request.Context(), userID.(string), page, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, paginated(gin.H{"following": following}, page, limit, total))
}

func (ctl *FollowController) GetFollowers(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	page, limit := pageParams(c, 20)

	followers, total, err := ctl.fc.ListFollowers(c.Request.Context(), userID.(string), page, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, paginated(gin.H{"followers": followers}, page, limit, total))
}
