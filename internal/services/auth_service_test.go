package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"fittrack_backend/internal/auth"
	"fittrack_backend/internal/models"
	"fittrack_backend/internal/pkg/email"
	"fittrack_backend/internal/repositories"
	"fittrack_backend/internal/services/dto"
	"fittrack_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- In-memory фейки ---

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUserName(userName string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.UserName == userName {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// уникальные индексы email и user_name
	for _, u := range r.users {
		if u.Email == user.Email || u.UserName == user.UserName {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) SetVerificationToken(userID, token string, expires time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.VerificationToken = token
	u.VerificationTokenExpires = &expires
	return nil
}

func (r *fakeUserRepo) ConsumeVerificationToken(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.VerificationToken == token && token != "" &&
			u.VerificationTokenExpires != nil && u.VerificationTokenExpires.After(time.Now()) {
			u.IsVerified = true
			u.VerificationToken = ""
			u.VerificationTokenExpires = nil
			return nil
		}
	}
	return repositories.ErrTokenNotFound
}

func (r *fakeUserRepo) SetTempPassword(userID, hash string, expires time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.TempPasswordHash = hash
	u.TempPasswordExpires = &expires
	u.NeedsPasswordReset = true
	return nil
}

func (r *fakeUserRepo) ConsumeTempPassword(userID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrTokenNotFound
	}
	if u.TempPasswordHash != hash || u.TempPasswordExpires == nil ||
		!u.TempPasswordExpires.After(time.Now()) {
		return repositories.ErrTokenNotFound
	}
	u.TempPasswordHash = ""
	u.TempPasswordExpires = nil
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.PasswordHash = hash
	u.TempPasswordHash = ""
	u.TempPasswordExpires = nil
	u.NeedsPasswordReset = false
	return nil
}

func (r *fakeUserRepo) UpdateProfile(userID string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	return nil
}

func (r *fakeUserRepo) CompleteOnboarding(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.HasCompletedOnboarding = true
	return nil
}

type fakeRevokedRepo struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

func newFakeRevokedRepo() *fakeRevokedRepo {
	return &fakeRevokedRepo{tokens: make(map[string]time.Time)}
}

func (r *fakeRevokedRepo) Revoke(token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tokens[token]; !exists {
		r.tokens[token] = expiresAt
	}
	return nil
}

func (r *fakeRevokedRepo) IsRevoked(token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tokens[token]
	return ok, nil
}

func (r *fakeRevokedRepo) PurgeExpired() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var purged int64
	now := time.Now()
	for token, expires := range r.tokens {
		if expires.Before(now) {
			delete(r.tokens, token)
			purged++
		}
	}
	return purged, nil
}

type fakeSender struct {
	mu            sync.Mutex
	verifications []string // последние отправленные токены подтверждения
	tempPasswords []string // последние временные пароли
	failNext      bool
}

func (s *fakeSender) Send(e *email.Email) error { return nil }

func (s *fakeSender) SendVerification(to, name, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext {
		s.failNext = false
		return errors.New("smtp unavailable")
	}
	s.verifications = append(s.verifications, token)
	return nil
}

func (s *fakeSender) SendTempPassword(to, name, tempPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext {
		s.failNext = false
		return errors.New("smtp unavailable")
	}
	s.tempPasswords = append(s.tempPasswords, tempPassword)
	return nil
}

func (s *fakeSender) lastVerificationToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.verifications) == 0 {
		return ""
	}
	return s.verifications[len(s.verifications)-1]
}

func (s *fakeSender) lastTempPassword() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tempPasswords) == 0 {
		return ""
	}
	return s.tempPasswords[len(s.tempPasswords)-1]
}

// --- Тестовая сборка ---

type authFixture struct {
	service     AuthService
	userRepo    *fakeUserRepo
	revokedRepo *fakeRevokedRepo
	sender      *fakeSender
	tokens      *auth.TokenManager
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	tokens, err := auth.NewTokenManager("test-secret", 24*time.Hour)
	require.NoError(t, err)

	userRepo := newFakeUserRepo()
	revokedRepo := newFakeRevokedRepo()
	sender := &fakeSender{}

	cfg := AuthConfig{
		RegisterTokenTTL:   time.Hour,
		VerificationTTL:    24 * time.Hour,
		TempPasswordTTL:    24 * time.Hour,
		BlacklistRetention: 7 * 24 * time.Hour,
	}

	return &authFixture{
		service:     NewAuthService(userRepo, revokedRepo, auth.NewHasher(bcrypt.MinCost), tokens, sender, cfg),
		userRepo:    userRepo,
		revokedRepo: revokedRepo,
		sender:      sender,
		tokens:      tokens,
	}
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FirstName: "Aidana",
		LastName:  "Seitova",
		UserName:  "aidana",
		Email:     "aidana@test.com",
		Password:  "super_password123",
	}
}

func (f *authFixture) registerAndVerify(t *testing.T) *dto.RegisterResponse {
	t.Helper()
	resp, err := f.service.Register(registerRequest())
	require.NoError(t, err)
	require.NoError(t, f.service.VerifyEmail(f.sender.lastVerificationToken()))
	return resp
}

// --- Тесты ---

func TestRegister_Success(t *testing.T) {
	f := newAuthFixture(t)

	resp, err := f.service.Register(registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.EmailSent)
	assert.False(t, resp.User.IsVerified)
	assert.NotEmpty(t, resp.User.ID)

	// короткоживущий токен, не сессионный
	claims, err := f.tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)

	// пароль не хранится открытым текстом
	stored, err := f.userRepo.FindByEmail("aidana@test.com")
	require.NoError(t, err)
	assert.NotEqual(t, "super_password123", stored.PasswordHash)
	assert.NotEmpty(t, stored.VerificationToken)
}

func TestRegister_WeakPassword(t *testing.T) {
	f := newAuthFixture(t)

	req := registerRequest()
	req.Password = "12345"

	_, err := f.service.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.UserName = "another"
	_, err = f.service.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_DuplicateUserName(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Email = "other@test.com"
	_, err = f.service.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrUserNameAlreadyExists)
}

func TestRegister_EmailNormalized(t *testing.T) {
	f := newAuthFixture(t)

	req := registerRequest()
	req.Email = "  Aidana@Test.com "

	resp, err := f.service.Register(req)
	require.NoError(t, err)
	assert.Equal(t, "aidana@test.com", resp.User.Email)

	stored, err := f.userRepo.FindByEmail("aidana@test.com")
	require.NoError(t, err)
	assert.Equal(t, "aidana@test.com", stored.Email)
}

func TestRegister_DuplicateEmailDifferentCase(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Email = "AIDANA@test.com"
	req.UserName = "aidana2"
	_, err = f.service.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

// racingUserRepo имитирует гонку двух регистраций: предварительная
// проверка email не видит пользователя, но уникальный индекс на
// вставке срабатывает
type racingUserRepo struct {
	*fakeUserRepo
	missFirstFind bool
}

func (r *racingUserRepo) FindByEmail(email string) (*models.User, error) {
	if r.missFirstFind {
		r.missFirstFind = false
		return nil, repositories.ErrUserNotFound
	}
	return r.fakeUserRepo.FindByEmail(email)
}

func TestRegister_ConcurrentDuplicateMapsToConflict(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.userRepo.Create(&models.User{
		UserName: "aidana",
		Email:    "aidana@test.com",
	}))

	racing := &racingUserRepo{fakeUserRepo: f.userRepo, missFirstFind: true}
	svc := NewAuthService(racing, f.revokedRepo, auth.NewHasher(bcrypt.MinCost), f.tokens, f.sender, AuthConfig{
		RegisterTokenTTL:   time.Hour,
		VerificationTTL:    24 * time.Hour,
		TempPasswordTTL:    24 * time.Hour,
		BlacklistRetention: 7 * 24 * time.Hour,
	})

	req := registerRequest()
	req.UserName = "aidana2"
	_, err := svc.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_EmailFailureDoesNotBlock(t *testing.T) {
	f := newAuthFixture(t)
	f.sender.failNext = true

	resp, err := f.service.Register(registerRequest())
	require.NoError(t, err)

	assert.False(t, resp.EmailSent)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_Unverified(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(registerRequest())
	require.NoError(t, err)

	_, err = f.service.Login(&dto.LoginRequest{Email: "aidana@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotVerified)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	details, ok := appErr.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, details["needs_verification"])
}

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture(t)
	f.registerAndVerify(t)

	resp, err := f.service.Login(&dto.LoginRequest{Email: "aidana@test.com", Password: "super_password123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.User.IsVerified)
	assert.False(t, resp.User.NeedsPasswordReset)

	claims, err := f.tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	f := newAuthFixture(t)

	req := registerRequest()
	req.Email = "Aidana@Test.com"
	_, err := f.service.Register(req)
	require.NoError(t, err)
	require.NoError(t, f.service.VerifyEmail(f.sender.lastVerificationToken()))

	_, err = f.service.Login(&dto.LoginRequest{Email: "aidana@test.com", Password: "super_password123"})
	assert.NoError(t, err)

	_, err = f.service.Login(&dto.LoginRequest{Email: " AIDANA@TEST.COM ", Password: "super_password123"})
	assert.NoError(t, err)
}

func TestResendAndReset_EmailCaseInsensitive(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(registerRequest())
	require.NoError(t, err)

	sent, err := f.service.ResendVerification("AIDANA@TEST.COM")
	require.NoError(t, err)
	assert.True(t, sent)
	require.NoError(t, f.service.VerifyEmail(f.sender.lastVerificationToken()))

	sent, err = f.service.RequestPasswordReset("Aidana@Test.com")
	require.NoError(t, err)
	assert.True(t, sent)
}

func TestLogin_BadPassword(t *testing.T) {
	f := newAuthFixture(t)
	f.registerAndVerify(t)

	_, err := f.service.Login(&dto.LoginRequest{Email: "aidana@test.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Login(&dto.LoginRequest{Email: "ghost@test.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestVerifyEmail_TokenConsumedOnce(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(registerRequest())
	require.NoError(t, err)
	token := f.sender.lastVerificationToken()

	require.NoError(t, f.service.VerifyEmail(token))

	// повторное использование того же токена
	err = f.service.VerifyEmail(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	user, err := f.userRepo.FindByEmail("aidana@test.com")
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
}

func TestVerifyEmail_UnknownToken(t *testing.T) {
	f := newAuthFixture(t)

	assert.ErrorIs(t, f.service.VerifyEmail("deadbeef"), apperrors.ErrInvalidToken)
	assert.ErrorIs(t, f.service.VerifyEmail(""), apperrors.ErrInvalidToken)
}

func TestVerifyEmail_ExpiredToken(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(registerRequest())
	require.NoError(t, err)
	token := f.sender.lastVerificationToken()

	user, err := f.userRepo.FindByEmail("aidana@test.com")
	require.NoError(t, err)
	expired := time.Now().Add(-time.Minute)
	require.NoError(t, f.userRepo.SetVerificationToken(user.ID, token, expired))

	assert.ErrorIs(t, f.service.VerifyEmail(token), apperrors.ErrInvalidToken)
}

func TestResendVerification(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(registerRequest())
	require.NoError(t, err)
	firstToken := f.sender.lastVerificationToken()

	sent, err := f.service.ResendVerification("aidana@test.com")
	require.NoError(t, err)
	assert.True(t, sent)

	secondToken := f.sender.lastVerificationToken()
	assert.NotEqual(t, firstToken, secondToken)

	// старый токен вытеснен новым
	assert.ErrorIs(t, f.service.VerifyEmail(firstToken), apperrors.ErrInvalidToken)
	assert.NoError(t, f.service.VerifyEmail(secondToken))
}

func TestResendVerification_AlreadyVerified(t *testing.T) {
	f := newAuthFixture(t)
	f.registerAndVerify(t)

	_, err := f.service.ResendVerification("aidana@test.com")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyVerified)
}

func TestLogout_RevokesToken(t *testing.T) {
	f := newAuthFixture(t)
	f.registerAndVerify(t)

	resp, err := f.service.Login(&dto.LoginRequest{Email: "aidana@test.com", Password: "super_password123"})
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(resp.Token))

	revoked, err := f.revokedRepo.IsRevoked(resp.Token)
	require.NoError(t, err)
	assert.True(t, revoked)

	// повторный logout - no-op
	assert.NoError(t, f.service.Logout(resp.Token))
}

func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.RequestPasswordReset("ghost@test.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestPasswordResetFlow(t *testing.T) {
	f := newAuthFixture(t)
	f.registerAndVerify(t)

	sent, err := f.service.RequestPasswordReset("aidana@test.com")
	require.NoError(t, err)
	assert.True(t, sent)

	tempPassword := f.sender.lastTempPassword()
	require.Len(t, tempPassword, 8)

	// вход по временному паролю
	resp, err := f.service.Login(&dto.LoginRequest{Email: "aidana@test.com", Password: tempPassword})
	require.NoError(t, err)
	assert.True(t, resp.User.NeedsPasswordReset)

	// временный пароль одноразовый
	_, err = f.service.Login(&dto.LoginRequest{Email: "aidana@test.com", Password: tempPassword})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// постоянный пароль продолжает работать
	_, err = f.service.Login(&dto.LoginRequest{Email: "aidana@test.com", Password: "super_password123"})
	assert.NoError(t, err)

	// установка нового постоянного пароля снимает флаг
	require.NoError(t, f.service.ResetPassword(resp.User.ID, "brand_new_password"))

	after, err := f.service.Login(&dto.LoginRequest{Email: "aidana@test.com", Password: "brand_new_password"})
	require.NoError(t, err)
	assert.False(t, after.User.NeedsPasswordReset)
}

func TestLogin_ExpiredTempPassword(t *testing.T) {
	f := newAuthFixture(t)
	f.registerAndVerify(t)

	sent, err := f.service.RequestPasswordReset("aidana@test.com")
	require.NoError(t, err)
	require.True(t, sent)
	tempPassword := f.sender.lastTempPassword()

	user, err := f.userRepo.FindByEmail("aidana@test.com")
	require.NoError(t, err)
	expired := time.Now().Add(-time.Minute)
	require.NoError(t, f.userRepo.SetTempPassword(user.ID, user.TempPasswordHash, expired))

	_, err = f.service.Login(&dto.LoginRequest{Email: "aidana@test.com", Password: tempPassword})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestResetPassword_WeakPassword(t *testing.T) {
	f := newAuthFixture(t)
	resp := f.registerAndVerify(t)

	err := f.service.ResetPassword(resp.User.ID, "123")
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	f.registerAndVerify(t)

	resp, err := f.service.Login(&dto.LoginRequest{Email: "aidana@test.com", Password: "super_password123"})
	require.NoError(t, err)

	err = f.service.ChangePassword(resp.User.ID, resp.Token, "super_password123", "another_password")
	require.NoError(t, err)

	// предъявленный токен отозван
	revoked, err := f.revokedRepo.IsRevoked(resp.Token)
	require.NoError(t, err)
	assert.True(t, revoked)

	_, err = f.service.Login(&dto.LoginRequest{Email: "aidana@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = f.service.Login(&dto.LoginRequest{Email: "aidana@test.com", Password: "another_password"})
	assert.NoError(t, err)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	f := newAuthFixture(t)
	resp := f.registerAndVerify(t)

	err := f.service.ChangePassword(resp.User.ID, "", "wrong_old", "another_password")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestCompleteOnboarding(t *testing.T) {
	f := newAuthFixture(t)
	resp := f.registerAndVerify(t)

	require.NoError(t, f.service.CompleteOnboarding(resp.User.ID))

	user, err := f.userRepo.FindByID(resp.User.ID)
	require.NoError(t, err)
	assert.True(t, user.HasCompletedOnboarding)

	assert.ErrorIs(t, f.service.CompleteOnboarding("missing-id"), apperrors.ErrUserNotFound)
}
