package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type AccountController struct{ ac AccountUseCase }

func NewAccountController(ac AccountUseCase) *AccountController {
	return &AccountController{ac: ac}
}

func (ctl *AccountController) Register(c *gin.Context) {
	var req struct {
		Username  string `json:"username" binding:"required"`
		Email     string `json:"email" binding:"required"`
		Password  string `json:"password" binding:"required"`
		Role      string `json:"role" binding:"required"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	acc, err := ctl.ac.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.Role, req.FirstName, req.LastName)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, acc)
}

func (ctl *AccountController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.ac.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *AccountController) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token"})
		return
	}

	if err := ctl.ac.Logout(c.Request.Context(), parts[1]); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (ctl *AccountController) GetProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	acc, err := ctl.ac.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, acc)
}
