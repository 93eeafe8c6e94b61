package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FeedController struct{ fc FeedUseCase }

func NewFeedController(fc FeedUseCase) *FeedController { return &FeedController{fc: fc} }

func (ctl *FeedController) GetFeed(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	page, limit := pageParams(c, 10)

	feed, err := ctl.fc.BuildFollowerFeed(c.Request.Context(), userID.(string), page, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

func (ctl *FeedController) SearchCreators(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	page, limit := pageParams(c, 10)

	res, err := ctl.fc.SearchCreators(c.Request.Context(), c.Query("q"), page, limit, userID.(string))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *FeedController) ExploreCreators(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	page, limit := pageParams(c, 12)

	res, err := ctl.fc.ExploreCreators(c.Request.Context(), c.DefaultQuery("sort", "popular"), page, limit, userID.(string))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetCreatorPosts is public; a valid token personalizes user_liked.
func (ctl *FeedController) GetCreatorPosts(c *gin.Context) {
	viewerID := ""
	if userID, exists := c.Get("userID"); exists {
		viewerID = userID.(string)
	}
	page, limit := pageParams(c, 10)

	res, err := ctl.fc.CreatorPosts(c.Request.Context(), c.Param("username"), page, limit, viewerID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
