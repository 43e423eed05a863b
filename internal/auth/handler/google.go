package handler

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/ivanausecha/tidytask-backend/config"
	"github.com/ivanausecha/tidytask-backend/internal/auth/service"
)

const (
	oauthStateCookie  = "oauth_state"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// GoogleHandler drives the OAuth2 authorization-code flow for federated login.
// Both legs redirect back to the front-end: the callback embeds the bearer
// token in the URL on success and an error code on failure.
type GoogleHandler struct {
	userService *service.UserService
	oauth       *oauth2.Config
	frontendURL string
	logger      *slog.Logger
}

type googleUserInfo struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

func NewGoogleHandler(userService *service.UserService, cfg *config.Config, logger *slog.Logger) *GoogleHandler {
	var oauthCfg *oauth2.Config
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		}
	}

	return &GoogleHandler{
		userService: userService,
		oauth:       oauthCfg,
		frontendURL: cfg.FrontendURL,
		logger:      logger,
	}
}

func (h *GoogleHandler) Login(c *fiber.Ctx) error {
	if h.oauth == nil {
		return h.redirectWithError(c, "google_login_disabled")
	}

	state, err := randomState()
	if err != nil {
		return h.redirectWithError(c, "google_auth_failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
	})

	return c.Redirect(h.oauth.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

func (h *GoogleHandler) Callback(c *fiber.Ctx) error {
	if h.oauth == nil {
		return h.redirectWithError(c, "google_login_disabled")
	}

	state := c.Query("state")
	if state == "" || state != c.Cookies(oauthStateCookie) {
		return h.redirectWithError(c, "invalid_state")
	}
	c.ClearCookie(oauthStateCookie)

	code := c.Query("code")
	if code == "" {
		return h.redirectWithError(c, "google_auth_failed")
	}

	token, err := h.oauth.Exchange(c.Context(), code)
	if err != nil {
		h.logger.Error("google code exchange failed", slog.String("error", err.Error()))
		return h.redirectWithError(c, "google_auth_failed")
	}

	info, err := h.fetchUserInfo(c, token)
	if err != nil {
		h.logger.Error("google userinfo fetch failed", slog.String("error", err.Error()))
		return h.redirectWithError(c, "google_auth_failed")
	}

	resp, err := h.userService.LoginWithGoogle(c.Context(), info.ID, info.Email, info.GivenName, info.FamilyName)
	if err != nil {
		h.logger.Error("google login failed", slog.String("error", err.Error()))
		return h.redirectWithError(c, "google_auth_failed")
	}

	return c.Redirect(h.frontendURL+"/auth/callback?token="+resp.Token, fiber.StatusTemporaryRedirect)
}

func (h *GoogleHandler) fetchUserInfo(c *fiber.Ctx, token *oauth2.Token) (*googleUserInfo, error) {
	client := h.oauth.Client(c.Context(), token)
	res, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(res.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (h *GoogleHandler) redirectWithError(c *fiber.Ctx, code string) error {
	return c.Redirect(h.frontendURL+"/login?error="+code, fiber.StatusTemporaryRedirect)
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
