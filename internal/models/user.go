package models

import "time"

// Profile - анкетные данные пользователя, заполняются при онбординге
type Profile struct {
	Gender        string  `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Height        float64 `json:"height,omitempty"`
	Weight        float64 `json:"weight,omitempty"`
	Age           int     `json:"age,omitempty"`
	Goal          string  `gorm:"type:varchar(20)" json:"goal,omitempty"`
	ActivityLevel string  `gorm:"type:varchar(20)" json:"activity_level,omitempty"`
	BMI           float64 `json:"bmi,omitempty"`
}

type User struct {
	BaseModel
	FirstName    string `gorm:"not null" json:"first_name"`
	LastName     string `gorm:"not null" json:"last_name"`
	UserName     string `gorm:"uniqueIndex;not null" json:"user_name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	ProfileImage string `json:"profile_image,omitempty"`

	Profile                Profile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	HasCompletedOnboarding bool    `gorm:"default:false" json:"has_completed_onboarding"`

	IsVerified               bool       `gorm:"default:false" json:"is_verified"`
	VerificationToken        string     `json:"-"`
	VerificationTokenExpires *time.Time `json:"-"`

	// Временный пароль из потока сброса, хранится только хешем
	TempPasswordHash    string     `json:"-"`
	TempPasswordExpires *time.Time `json:"-"`
	NeedsPasswordReset  bool       `gorm:"default:false" json:"needs_password_reset"`
}
