package controllers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"barberbook-backend/config"
	"barberbook-backend/utils"
)

// AuthController handles the admin login. There is a single fixed
// administrator account configured through the environment; this is a
// credential gate for the admin panel, not a user system.
type AuthController struct {
	Config *config.AppConfig
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the admin credentials and issues a session token
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if subtle.ConstantTimeCompare([]byte(input.Username), []byte(ac.Config.AdminUsername)) != 1 {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	var passwordOK bool
	if ac.Config.AdminPasswordHash != "" {
		passwordOK = utils.CheckPasswordHash(input.Password, ac.Config.AdminPasswordHash)
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(input.Password), []byte(ac.Config.AdminPassword)) == 1
	}
	if !passwordOK {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(input.Username)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}
