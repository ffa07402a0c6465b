package permission

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ShakeelGadafi/crediflow-sub000/internal/services"
	"github.com/ShakeelGadafi/crediflow-sub000/internal/utils"
)

// ListModules godoc
// @Summary List permission modules
// @Description Get the static module catalogue. Admin only.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/modules [get]
func ListModules(c *gin.Context) {
	modules, err := services.ListModules()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch modules"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Modules retrieved successfully", modules))
}

// GetUserGrants godoc
// @Summary Get a user's grants
// @Description One entry per module, defaulting all-false where no grant exists. Admin only.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/users/{id}/permissions [get]
func GetUserGrants(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user ID"))
		return
	}

	if _, err := services.FindUserByID(uint(id)); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch user"))
		return
	}

	grants, err := services.GetUserGrants(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch permissions"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Permissions retrieved successfully", grants))
}

// UpsertUserGrants godoc
// @Summary Upsert a user's grants
// @Description Apply a batch of grants, one upsert per module. Modules absent from the batch keep their grants. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Param body body UpsertGrantsRequest true "Grant batch"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/users/{id}/permissions [put]
func UpsertUserGrants(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user ID"))
		return
	}

	var req UpsertGrantsRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	inputs := make([]services.GrantInput, 0, len(req.Grants))
	for _, g := range req.Grants {
		inputs = append(inputs, services.GrantInput{
			ModuleID:  g.ModuleID,
			CanView:   g.CanView,
			CanCreate: g.CanCreate,
			CanUpdate: g.CanUpdate,
			CanDelete: g.CanDelete,
		})
	}

	grants, err := services.UpsertGrants(uint(id), inputs)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "User not found"))
		case errors.Is(err, services.ErrModuleNotFound):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update permissions"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Permissions updated successfully", grants))
}
