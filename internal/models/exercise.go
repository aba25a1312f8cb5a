package models

import "time"

// Exercise - запланированное упражнение пользователя
type Exercise struct {
	BaseModel
	UserID           string    `gorm:"type:uuid;not null;index" json:"user_id"`
	ExerciseName     string    `gorm:"not null" json:"exercise_name"`
	ExerciseSubTitle string    `gorm:"not null" json:"exercise_sub_title"`
	DateToDo         time.Time `gorm:"not null;index" json:"date_to_do"`
	SetToDo          int       `gorm:"not null" json:"set_to_do"`
	KcalToDo         int       `gorm:"not null" json:"kcal_to_do"`
	TimeToDo         int       `gorm:"not null" json:"time_to_do"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
