package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/application/user/usecases"
	"github.com/civicdesk/civicdesk/internal/interfaces/dto"
	"github.com/civicdesk/civicdesk/internal/shared/constants"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/utils"
)

const (
	oauthStateCookie = "oauth_state"
	oauthStateMaxAge = 600
)

// AuthUseCases groups the executors behind AuthHandler. Google executors are nil
// when Google login is not configured.
type AuthUseCases struct {
	Register       usecases.RegisterExecutor
	Login          usecases.LoginExecutor
	Refresh        usecases.RefreshTokenExecutor
	Logout         usecases.LogoutExecutor
	Me             usecases.GetCurrentUserExecutor
	GoogleAuthURL  usecases.GoogleAuthURLExecutor
	GoogleCallback usecases.GoogleCallbackExecutor
}

type AuthHandler struct {
	ucs          AuthUseCases
	frontendURL  string
	secureCookie bool
	logger       logger.Interface
}

func NewAuthHandler(ucs AuthUseCases, frontendURL string, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		ucs:          ucs,
		frontendURL:  strings.TrimRight(frontendURL, "/"),
		secureCookie: strings.HasPrefix(frontendURL, "https://"),
		logger:       logger,
	}
}

// Register godoc
// @Summary Register a citizen account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.ucs.Register.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Registration successful")
}

// Login godoc
// @Summary Obtain a token pair with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.ucs.Login.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Refresh godoc
// @Summary Rotate a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/token/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.ucs.Refresh.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.Refresh,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Logout godoc
// @Summary Revoke the session of a refresh token
// @Security Bearer
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LogoutRequest true "Refresh token"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	err := h.ucs.Logout.Execute(c.Request.Context(), usecases.LogoutCommand{
		UserID:       utils.CurrentUserID(c),
		SessionID:    c.GetString(constants.ContextKeySessionID),
		RefreshToken: req.Refresh,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Me godoc
// @Summary Current account
// @Security Bearer
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	result, err := h.ucs.Me.Execute(c.Request.Context(), usecases.GetCurrentUserQuery{
		UserID: utils.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GoogleLogin godoc
// @Summary Start Google sign-in
// @Tags auth
// @Success 302
// @Failure 400 {object} utils.APIResponse
// @Router /auth/google [get]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	if h.ucs.GoogleAuthURL == nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Google login is not configured."))
		return
	}

	result, err := h.ucs.GoogleAuthURL.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, result.State, oauthStateMaxAge, "/", "", h.secureCookie, true)
	c.Redirect(http.StatusFound, result.AuthURL)
}

// GoogleCallback godoc
// @Summary Complete Google sign-in
// @Description Redirects to the frontend with access and refresh query parameters, or to /login?error=<code>.
// @Tags auth
// @Param code query string false "Authorization code"
// @Param state query string false "State"
// @Param error query string false "Provider error"
// @Success 302
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if h.ucs.GoogleCallback == nil {
		h.redirectLoginError(c, usecases.GoogleErrorAuthFailed)
		return
	}

	state := c.Query("state")
	cookieState, _ := c.Cookie(oauthStateCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookie, true)

	if c.Query("error") == "" && c.Query("code") != "" && (cookieState == "" || cookieState != state) {
		h.logger.Warnw("google callback state does not match cookie")
		h.redirectLoginError(c, usecases.GoogleErrorBadState)
		return
	}

	result, err := h.ucs.GoogleCallback.Execute(c.Request.Context(), usecases.GoogleCallbackCommand{
		Code:  c.Query("code"),
		State: state,
		Error: c.Query("error"),
	})
	if err != nil {
		h.logger.Errorw("google callback failed", "error", err)
		h.redirectLoginError(c, usecases.GoogleErrorAuthFailed)
		return
	}
	if result.ErrorCode != "" {
		h.redirectLoginError(c, result.ErrorCode)
		return
	}

	q := url.Values{}
	q.Set("access", result.Auth.Access)
	q.Set("refresh", result.Auth.Refresh)
	if result.IsNewUser {
		q.Set("new_user", "1")
	}
	c.Redirect(http.StatusFound, h.frontendURL+"/auth/callback?"+q.Encode())
}

func (h *AuthHandler) redirectLoginError(c *gin.Context, code string) {
	c.Redirect(http.StatusFound, h.frontendURL+"/login?error="+url.QueryEscape(code))
}
