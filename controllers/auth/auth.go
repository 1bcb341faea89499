package authControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"playtoy-backend/config"
	"playtoy-backend/utils"
)

type identityInput struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// POST /jwt
// Signs a token for the posted identity. Cookie transport sets an httpOnly
// cookie; bearer transport hands the token back for the Authorization header.
func IssueToken(c *gin.Context) {
	var input identityInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "email is required"})
		return
	}

	token, err := utils.IssueToken(input.Email, input.DisplayName)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to issue JWT token"})
		return
	}

	if config.App.AuthTransport == config.TransportBearer {
		c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
		return
	}
	c.SetCookie("token", token, int(utils.TokenTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "JWT token issued"})
}
