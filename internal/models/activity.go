package models

import (
	"time"

	"gorm.io/datatypes"
)

// RoutePoint - точка GPS трека, сериализуется в JSONB колонку
type RoutePoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Activity struct {
	BaseModel
	UserID        string         `gorm:"type:uuid;not null;index" json:"user_id"`
	ActivityType  string         `gorm:"type:varchar(10);not null" json:"activity_type"`
	RunAddress    string         `gorm:"not null" json:"run_address"`
	TimeInSeconds float64        `gorm:"not null" json:"time_in_seconds"`
	DistanceInKm  float64        `gorm:"not null" json:"distance_in_km"`
	ActivityDate  time.Time      `gorm:"not null;index" json:"activity_date"`
	Steps         int            `gorm:"not null" json:"steps"`
	Calories      float64        `json:"calories"`
	RoutePoints   datatypes.JSON `gorm:"type:jsonb" json:"route_points,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
