package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ShakeelGadafi/crediflow-sub000/config"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/services"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/utils"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// Login godoc
// @Summary Log in a user
// @Description Authenticate with email and password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   input     body   LoginInput  true  "Login Input"
// @Success 200 {object} utils.Response{data=LoginResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /auth/login [post]
func Login(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if !utils.BindAndValidate(c, &input) {
			return
		}

		token, u, err := services.LoginUser(input.Email, input.Password, cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			if errors.Is(err, services.ErrAccountDisabled) {
				c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, err.Error()))
				return
			}
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid email or password"))
			return
		}

		c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged in successfully", LoginResponse{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Role:     u.Role,
			Token:    token,
		}))
	}
}

// Logout godoc
// @Summary Log out a user
// @Description Invalidate the user's current token
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /auth/logout [post]
func Logout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
			return
		}

		remaining := cfg.TokenTTL
		if claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret); err == nil {
			if exp, ok := claims["exp"].(float64); ok {
				remaining = time.Until(time.Unix(int64(exp), 0))
			}
		}

		if err := services.AddToDenylist(tokenString, remaining); err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to denylist token"))
			return
		}

		c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged out successfully", nil))
	}
}
