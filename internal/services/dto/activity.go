package dto

import (
	"time"

	"fittrack_backend/internal/models"
)

// SubmitActivityRequest - запись тренировки
type SubmitActivityRequest struct {
	ActivityType  string              `json:"activity_type" binding:"required,is-activity-type"`
	RunAddress    string              `json:"run_address" binding:"required"`
	TimeInSeconds float64             `json:"time_in_seconds" binding:"required,gt=0"`
	DistanceInKm  float64             `json:"distance_in_km" binding:"required,gt=0"`
	ActivityDate  time.Time           `json:"activity_date" binding:"required"`
	Steps         *int                `json:"steps,omitempty" binding:"omitempty,gte=0"`
	Calories      *float64            `json:"calories,omitempty" binding:"omitempty,gte=0"`
	RoutePoints   []models.RoutePoint `json:"route_points,omitempty"`
}

// ActivityHistoryRequest - фильтр истории по датам
type ActivityHistoryRequest struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}
