package handlers

import (
	"net/http"

	"fittrack_backend/internal/middleware"
	"fittrack_backend/internal/services"
	"fittrack_backend/internal/services/dto"
	"fittrack_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes регистрирует маршруты аутентификации.
// authRequired - цепочка для защищенных операций.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/verify-email", h.VerifyEmail)
		auth.POST("/verify-email", h.VerifyEmailJSON)
		auth.POST("/resend-verification", h.ResendVerification)
		auth.POST("/forgot-password", h.ForgotPassword)
	}

	protected := rg.Group("/auth")
	protected.Use(authRequired)
	{
		protected.POST("/reset-password", h.ResetPassword)
		protected.POST("/change-password", h.ChangePassword)
		protected.POST("/complete-onboarding", h.CompleteOnboarding)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := "Registration successful. Please check your email to verify your account."
	if !resp.EmailSent {
		message = "Registration successful but verification email could not be sent."
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		"data":    resp,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout отзывает предъявленный токен; валидность не требуется
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.ExtractBearerToken(c)
	if token == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("No token provided"))
		return
	}

	if err := h.authService.Logout(token); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
	})
}

// VerifyEmail - подтверждение по ссылке из письма
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	h.verifyEmail(c, c.Query("token"))
}

// VerifyEmailJSON - то же для клиентов, шлющих токен в теле
func (h *AuthHandler) VerifyEmailJSON(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	h.verifyEmail(c, req.Token)
}

func (h *AuthHandler) verifyEmail(c *gin.Context, token string) {
	if err := h.authService.VerifyEmail(token); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email verified successfully. You can now log in.",
	})
}

func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	sent, err := h.authService.ResendVerification(req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := "Verification email has been sent."
	if !sent {
		message = "Could not send verification email. Please try again later."
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.PasswordResetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	sent, err := h.authService.RequestPasswordReset(req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := "A temporary password has been sent to your email."
	if !sent {
		message = "Could not send the temporary password email. Please try again later."
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

// ResetPassword - установка постоянного пароля после входа по временному
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(userID, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password successfully reset",
	})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	token := middleware.GetToken(c)
	if err := h.authService.ChangePassword(userID, token, req.OldPassword, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated successfully. Please login again.",
	})
}

func (h *AuthHandler) CompleteOnboarding(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.authService.CompleteOnboarding(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Completed onboarding",
	})
}
