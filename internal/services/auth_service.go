package services

import (
	"strings"
	"time"

	"fittrack_backend/internal/auth"
	"fittrack_backend/internal/logger"
	"fittrack_backend/internal/models"
	"fittrack_backend/internal/pkg/email"
	"fittrack_backend/internal/repositories"
	"fittrack_backend/internal/services/dto"
	"fittrack_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(token string) error
	VerifyEmail(token string) error
	ResendVerification(email string) (bool, error)
	RequestPasswordReset(email string) (bool, error)
	ResetPassword(userID, newPassword string) error
	ChangePassword(userID, token, oldPassword, newPassword string) error
	CompleteOnboarding(userID string) error
}

// AuthConfig - сроки жизни учетных артефактов
type AuthConfig struct {
	RegisterTokenTTL   time.Duration // короткий токен после регистрации
	VerificationTTL    time.Duration
	TempPasswordTTL    time.Duration
	BlacklistRetention time.Duration // должно быть >= TTL сессии
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	revokedRepo repositories.RevokedTokenRepository
	hasher      *auth.Hasher
	tokens      *auth.TokenManager
	sender      email.Sender
	cfg         AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepository,
	revokedRepo repositories.RevokedTokenRepository,
	hasher *auth.Hasher,
	tokens *auth.TokenManager,
	sender email.Sender,
	cfg AuthConfig,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		revokedRepo: revokedRepo,
		hasher:      hasher,
		tokens:      tokens,
		sender:      sender,
		cfg:         cfg,
	}
}

// Register - регистрация нового пользователя
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if len(req.Password) < 6 {
		return nil, apperrors.ErrWeakPassword
	}

	req.Email = normalizeEmail(req.Email)

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.userRepo.FindByUserName(req.UserName); err == nil {
		return nil, apperrors.ErrUserNameAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	// Хеширование до записи; при сбое пользователь не создается
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	verificationToken, err := auth.NewVerificationToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	expires := time.Now().Add(s.cfg.VerificationTTL)

	user := &models.User{
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		UserName:                 req.UserName,
		Email:                    req.Email,
		PasswordHash:             hash,
		IsVerified:               false,
		VerificationToken:        verificationToken,
		VerificationTokenExpires: &expires,
	}

	if err := s.userRepo.Create(user); err != nil {
		// Гонка двух регистраций: проверки выше прошли, но уникальный
		// индекс сработал на вставке
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			if _, findErr := s.userRepo.FindByEmail(user.Email); findErr == nil {
				return nil, apperrors.ErrEmailAlreadyExists
			}
			return nil, apperrors.ErrUserNameAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Письмо best-effort: неудача меняет только текст ответа
	emailSent := s.sendVerificationEmail(user, verificationToken)

	token, err := s.tokens.IssueWithTTL(user.ID, user.Email, s.cfg.RegisterTokenTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RegisterResponse{
		Token:     token,
		User:      buildUserDTO(user),
		EmailSent: emailSent,
	}, nil
}

// Login - аутентификация пользователя
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	// Проверка верификации до пароля: клиент может предложить
	// повторную отправку письма, не зная валидности пароля
	if !user.IsVerified {
		notVerified := *apperrors.ErrUserNotVerified
		return nil, notVerified.WithDetails(map[string]interface{}{
			"needs_verification": true,
			"email":              user.Email,
		})
	}

	// Сначала пробуем временный пароль, если он выдан и не просрочен
	if s.tryTempPassword(user, req.Password) {
		if err := s.userRepo.ConsumeTempPassword(user.ID, user.TempPasswordHash); err != nil {
			if apperrors.Is(err, repositories.ErrTokenNotFound) {
				// Конкурентный вход уже погасил временный пароль
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, apperrors.InternalError(err)
		}
		user.TempPasswordHash = ""
		user.TempPasswordExpires = nil
		return s.issueSession(user)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueSession(user)
}

// Logout заносит предъявленный токен в черный список.
// Валидность токена не проверяется: просроченный тоже можно отозвать.
func (s *AuthServiceImpl) Logout(token string) error {
	if err := s.revokedRepo.Revoke(token, time.Now().Add(s.cfg.BlacklistRetention)); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// VerifyEmail - подтверждение email одним условным UPDATE
func (s *AuthServiceImpl) VerifyEmail(token string) error {
	if token == "" {
		return apperrors.ErrInvalidToken
	}
	if err := s.userRepo.ConsumeVerificationToken(token); err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ResendVerification - повторная выдача токена подтверждения
func (s *AuthServiceImpl) ResendVerification(emailAddr string) (bool, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(emailAddr))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return false, apperrors.ErrUserNotFound
		}
		return false, apperrors.InternalError(err)
	}

	if user.IsVerified {
		return false, apperrors.ErrAlreadyVerified
	}

	verificationToken, err := auth.NewVerificationToken()
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	if err := s.userRepo.SetVerificationToken(user.ID, verificationToken, time.Now().Add(s.cfg.VerificationTTL)); err != nil {
		return false, apperrors.InternalError(err)
	}

	return s.sendVerificationEmail(user, verificationToken), nil
}

// RequestPasswordReset выдает временный пароль и шлет его на почту
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) (bool, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(emailAddr))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return false, apperrors.ErrUserNotFound
		}
		return false, apperrors.InternalError(err)
	}

	tempPassword, err := auth.NewTempPassword()
	if err != nil {
		return false, apperrors.InternalError(err)
	}

	// В базе только хеш, открытый текст уходит в письмо
	hash, err := s.hasher.Hash(tempPassword)
	if err != nil {
		return false, apperrors.InternalError(err)
	}

	if err := s.userRepo.SetTempPassword(user.ID, hash, time.Now().Add(s.cfg.TempPasswordTTL)); err != nil {
		return false, apperrors.InternalError(err)
	}

	sent := true
	if s.sender == nil {
		sent = false
	} else if err := s.sender.SendTempPassword(user.Email, user.FirstName, tempPassword); err != nil {
		logger.Error("failed to send temp password email", "error", err, "email", user.Email)
		sent = false
	}
	return sent, nil
}

// ResetPassword - установка постоянного пароля после входа по временному
func (s *AuthServiceImpl) ResetPassword(userID, newPassword string) error {
	if len(newPassword) < 6 {
		return apperrors.ErrWeakPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(userID, hash); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ChangePassword - смена пароля со знанием текущего.
// Предъявленный токен отзывается, клиент логинится заново.
func (s *AuthServiceImpl) ChangePassword(userID, token, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if !s.hasher.Verify(oldPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if len(newPassword) < 6 {
		return apperrors.ErrWeakPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(userID, hash); err != nil {
		return apperrors.InternalError(err)
	}

	if token != "" {
		if err := s.revokedRepo.Revoke(token, time.Now().Add(s.cfg.BlacklistRetention)); err != nil {
			logger.Error("failed to revoke token after password change", "error", err)
		}
	}
	return nil
}

// CompleteOnboarding помечает онбординг пройденным
func (s *AuthServiceImpl) CompleteOnboarding(userID string) error {
	if err := s.userRepo.CompleteOnboarding(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Helper functions ---

// normalizeEmail приводит email к каноническому виду:
// адрес регистронезависимый, храним и сравниваем в нижнем регистре
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// tryTempPassword сообщает, совпал ли пароль с действующим временным
func (s *AuthServiceImpl) tryTempPassword(user *models.User, password string) bool {
	if user.TempPasswordHash == "" || user.TempPasswordExpires == nil {
		return false
	}
	if time.Now().After(*user.TempPasswordExpires) {
		return false
	}
	return s.hasher.Verify(password, user.TempPasswordHash)
}

func (s *AuthServiceImpl) issueSession(user *models.User) (*dto.LoginResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  buildUserDTO(user),
	}, nil
}

func (s *AuthServiceImpl) sendVerificationEmail(user *models.User, token string) bool {
	if s.sender == nil {
		return false
	}
	if err := s.sender.SendVerification(user.Email, user.FirstName, token); err != nil {
		logger.Error("failed to send verification email", "error", err, "email", user.Email)
		return false
	}
	return true
}

func buildUserDTO(user *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:                     user.ID,
		FirstName:              user.FirstName,
		LastName:               user.LastName,
		UserName:               user.UserName,
		Email:                  user.Email,
		Profile:                user.Profile,
		IsVerified:             user.IsVerified,
		HasCompletedOnboarding: user.HasCompletedOnboarding,
		NeedsPasswordReset:     user.NeedsPasswordReset,
	}
}
