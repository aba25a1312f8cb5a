package dto

import "fittrack_backend/internal/models"

// UpdateProfileRequest - частичное обновление профиля.
// Указатели отличают "не прислано" от нулевого значения.
type UpdateProfileRequest struct {
	Gender        *string  `json:"gender,omitempty" binding:"omitempty,is-gender"`
	Height        *float64 `json:"height,omitempty" binding:"omitempty,gt=0"`
	Weight        *float64 `json:"weight,omitempty" binding:"omitempty,gt=0"`
	Age           *int     `json:"age,omitempty" binding:"omitempty,gt=0"`
	Goal          *string  `json:"goal,omitempty" binding:"omitempty,is-goal"`
	ActivityLevel *string  `json:"activity_level,omitempty" binding:"omitempty,is-activity-level"`
	BMI           *float64 `json:"bmi,omitempty" binding:"omitempty,gt=0"`
	UserName      *string  `json:"user_name,omitempty"`
	Email         *string  `json:"email,omitempty" binding:"omitempty,email"`
	ProfileImage  *string  `json:"profile_image,omitempty"`
}

// IsEmpty сообщает, что ни одно поле не прислано
func (r *UpdateProfileRequest) IsEmpty() bool {
	return r.Gender == nil && r.Height == nil && r.Weight == nil && r.Age == nil &&
		r.Goal == nil && r.ActivityLevel == nil && r.BMI == nil &&
		r.UserName == nil && r.Email == nil && r.ProfileImage == nil
}

// ProfileResponse - профиль пользователя
type ProfileResponse struct {
	Profile      models.Profile `json:"profile"`
	UserName     string         `json:"user_name"`
	Email        string         `json:"email"`
	ProfileImage string         `json:"profile_image,omitempty"`
}
