package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/irisalmeida/registra-ai/internal/config"
	"github.com/irisalmeida/registra-ai/internal/ledger"
	"github.com/irisalmeida/registra-ai/internal/middleware"
	"github.com/irisalmeida/registra-ai/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	stateCookie = "rai_oauth_state"
	userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// AuthHandler runs the Google login flow. It is the only place that talks
// to the identity provider; everything past the callback works with the
// resolved user id.
type AuthHandler struct {
	Directory *ledger.Directory
	OAuth     *oauth2.Config
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthHandler(directory *ledger.Directory, oauthCfg config.OAuthConfig, jwtCfg config.JWTConfig) *AuthHandler {
	ttlHours := jwtCfg.ExpireHours
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		Directory: directory,
		OAuth: &oauth2.Config{
			ClientID:     oauthCfg.ClientID,
			ClientSecret: oauthCfg.ClientSecret,
			RedirectURL:  oauthCfg.RedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
		JWTSecret: jwtCfg.Secret,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

// googleProfile is the subset of the userinfo payload we keep.
type googleProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// Login starts the flow: store a one-shot state nonce and redirect to the
// provider's consent page.
func (h *AuthHandler) Login(c *gin.Context) {
	state := uuid.NewString()
	c.SetCookie(stateCookie, state, int((10 * time.Minute).Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, h.OAuth.AuthCodeURL(state))
}

// Callback finishes the flow: verify state, exchange the code, fetch the
// profile, get-or-create the user and issue a session JWT.
func (h *AuthHandler) Callback(c *gin.Context) {
	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		util.Error(c, http.StatusBadRequest, "invalid_oauth_state")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		util.Error(c, http.StatusBadRequest, "missing_oauth_code")
		return
	}

	ctx := c.Request.Context()
	token, err := h.OAuth.Exchange(ctx, code)
	if err != nil {
		util.Error(c, http.StatusUnauthorized, "oauth_exchange_failed")
		return
	}

	profile, err := h.fetchProfile(ctx, token)
	if err != nil {
		util.Error(c, http.StatusBadGateway, "oauth_userinfo_failed")
		return
	}

	user, err := h.Directory.GetOrCreate(ctx, profile.ID, profile.Name, profile.Email, profile.Picture)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "storage_failure")
		return
	}

	sessionToken, err := util.GenerateToken(h.JWTSecret, user.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "token_generation_failed")
		return
	}

	c.SetCookie(middleware.CookieName, sessionToken, int(h.TokenTTL.Seconds()), "/", "", false, true)
	util.Success(c, util.Response{
		"token": sessionToken,
		"user":  user,
	})
}

func (h *AuthHandler) fetchProfile(ctx context.Context, token *oauth2.Token) (*googleProfile, error) {
	resp, err := h.OAuth.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("get userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("userinfo missing subject id")
	}
	return &profile, nil
}
