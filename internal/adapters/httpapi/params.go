package httpapi

import (
	"strconv"

	"github.com/jonuar/Donacrypto/internal/core/pagination"

	"github.com/gin-gonic/gin"
)

// pageParams reads page/limit query params with defaults.
func pageParams(c *gin.Context, defaultLimit int) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	return pagination.Normalize(page, limit, defaultLimit)
}

// paginated attaches the standard pagination envelope to a response body.
func paginated(body gin.H, page, limit int, total int64) gin.H {
	body["page"] = page
	body["limit"] = limit
	body["total"] = total
	body["pages"] = pagination.Pages(total, limit)
	return body
}
