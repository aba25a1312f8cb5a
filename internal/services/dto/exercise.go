package dto

import "time"

// CreateExerciseRequest - запланированное упражнение
type CreateExerciseRequest struct {
	ExerciseName     string    `json:"exercise_name" binding:"required"`
	ExerciseSubTitle string    `json:"exercise_sub_title" binding:"required"`
	DateToDo         time.Time `json:"date_to_do" binding:"required"`
	SetToDo          int       `json:"set_to_do" binding:"required,gt=0"`
	KcalToDo         int       `json:"kcal_to_do" binding:"required,gt=0"`
	TimeToDo         int       `json:"time_to_do" binding:"required,gt=0"`
}
