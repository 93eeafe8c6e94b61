package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type LikeController struct{ lc LikeUseCase }

func NewLikeController(lc LikeUseCase) *LikeController { return &LikeController{lc: lc} }

func (ctl *LikeController) ToggleLike(c *gin.Context) {
	var req struct {
		PostID string `json:"post_id" binding:"required"`
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

	res, err := ctl.lc.ToggleLike(c.Request.Context(), userID.(string), req.PostID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetPostLikes is public; a valid token personalizes user_liked.
func (ctl *LikeController) GetPostLikes(c *gin.Context) {
	viewerID := ""
	if userID, exists := c.Get("userID"); exists {
		viewerID = userID.(string)
	}

	res, err := ctl.lc.PostLikes(c.Request.Context(), c.Param("id"), viewerID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
