package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/middleware"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/models"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/services"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/utils"
)

// CurrentUser godoc
// @Summary Get current user
// @Description Get the authenticated user's profile and module grants
// @Tags user
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=UserResponse}
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /auth/user [get]
func CurrentUser(c *gin.Context) {
	userVal, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}
	u := userVal.(models.User)

	resp := UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}

	if u.IsAdmin() {
		// Admins bypass the matrix; present full capability on every
		// module so the UI shows everything.
		modules, err := services.ListModules()
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load modules"))
			return
		}
		grants := make([]services.UserGrant, 0, len(modules))
		for _, m := range modules {
			grants = append(grants, services.UserGrant{
				ModuleID: m.ID, Key: m.Key, Name: m.Name,
				CanView: true, CanCreate: true, CanUpdate: true, CanDelete: true,
			})
		}
		resp.Grants = grants
	} else {
		grants, err := services.GetUserGrants(u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load permissions"))
			return
		}
		resp.Grants = grants
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User information retrieved successfully", resp))
}
