package handlers

import (
	"net/http"

	"fittrack_backend/internal/services"
	"fittrack_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	*BaseHandler
	activityService services.ActivityService
}

func NewActivityHandler(base *BaseHandler, activityService services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		BaseHandler:     base,
		activityService: activityService,
	}
}

func (h *ActivityHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	activity := rg.Group("/activity")
	activity.Use(authRequired)
	{
		activity.POST("", h.Submit)
		activity.GET("/history", h.History)
	}
}

func (h *ActivityHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitActivityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	activity, err := h.activityService.Submit(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": activity})
}

func (h *ActivityHandler) History(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ActivityHistoryRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	activities, err := h.activityService.History(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": activities})
}
