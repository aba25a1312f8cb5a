package services

import (
	"fittrack_backend/internal/repositories"
	"fittrack_backend/internal/services/dto"
	"fittrack_backend/pkg/apperrors"
)

type UserService interface {
	GetProfile(userID string) (*dto.ProfileResponse, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetProfile(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileResponse{
		Profile:      user.Profile,
		UserName:     user.UserName,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
	}, nil
}

// UpdateProfile обновляет только присланные поля
func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewBadRequestError("Please provide at least one profile information field")
	}

	fields := map[string]interface{}{}
	if req.Gender != nil {
		fields["profile_gender"] = *req.Gender
	}
	if req.Height != nil {
		fields["profile_height"] = *req.Height
	}
	if req.Weight != nil {
		fields["profile_weight"] = *req.Weight
	}
	if req.Age != nil {
		fields["profile_age"] = *req.Age
	}
	if req.Goal != nil {
		fields["profile_goal"] = *req.Goal
	}
	if req.ActivityLevel != nil {
		fields["profile_activity_level"] = *req.ActivityLevel
	}
	if req.BMI != nil {
		fields["profile_bmi"] = *req.BMI
	}
	if req.UserName != nil {
		if existing, err := s.userRepo.FindByUserName(*req.UserName); err == nil && existing.ID != userID {
			return nil, apperrors.ErrUserNameAlreadyExists
		}
		fields["user_name"] = *req.UserName
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if existing, err := s.userRepo.FindByEmail(email); err == nil && existing.ID != userID {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		fields["email"] = email
	}
	if req.ProfileImage != nil {
		fields["profile_image"] = *req.ProfileImage
	}

	if err := s.userRepo.UpdateProfile(userID, fields); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetProfile(userID)
}
