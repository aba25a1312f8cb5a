package handlers

import (
	"net/http"

	"fittrack_backend/internal/services"
	"fittrack_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FoodHandler struct {
	*BaseHandler
	foodService services.FoodService
}

func NewFoodHandler(base *BaseHandler, foodService services.FoodService) *FoodHandler {
	return &FoodHandler{
		BaseHandler: base,
		foodService: foodService,
	}
}

func (h *FoodHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	food := rg.Group("/food-suggestions")
	food.Use(authRequired)
	{
		food.POST("", h.Create)
		food.GET("", h.List)
		food.GET("/:id", h.Get)
		food.PATCH("/:id", h.Update)
		food.DELETE("/:id", h.Delete)
	}
}

func (h *FoodHandler) Create(c *gin.Context) {
	var req dto.CreateFoodSuggestionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	food, err := h.foodService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": food})
}

// List возвращает все рецепты или по цели (?support_for=weight_loss)
func (h *FoodHandler) List(c *gin.Context) {
	foods, err := h.foodService.List(c.Query("support_for"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": foods})
}

func (h *FoodHandler) Get(c *gin.Context) {
	food, err := h.foodService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": food})
}

func (h *FoodHandler) Update(c *gin.Context) {
	var req dto.UpdateFoodSuggestionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	food, err := h.foodService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": food})
}

func (h *FoodHandler) Delete(c *gin.Context) {
	if err := h.foodService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Food suggestion deleted"})
}
