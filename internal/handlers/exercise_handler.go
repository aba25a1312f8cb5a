package handlers

import (
	"net/http"
	"time"

	"fittrack_backend/internal/services"
	"fittrack_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ExerciseHandler struct {
	*BaseHandler
	exerciseService services.ExerciseService
}

func NewExerciseHandler(base *BaseHandler, exerciseService services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{
		BaseHandler:     base,
		exerciseService: exerciseService,
	}
}

func (h *ExerciseHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	exercise := rg.Group("/exercise")
	exercise.Use(authRequired)
	{
		exercise.POST("", h.Create)
		exercise.GET("", h.List)
		exercise.DELETE("/:id", h.Delete)
	}
}

func (h *ExerciseHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateExerciseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	exercise, err := h.exerciseService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": exercise})
}

// List возвращает весь план или план на день (?date=YYYY-MM-DD)
func (h *ExerciseHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if c.Query("date") != "" {
		day, err := ParseQueryDate(c, "date", time.Time{})
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		exercises, err := h.exerciseService.ListByDate(userID, day)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": exercises})
		return
	}

	exercises, err := h.exerciseService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": exercises})
}

func (h *ExerciseHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.exerciseService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exercise deleted"})
}
