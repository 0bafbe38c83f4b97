package http

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"clipstream/infrastructure/configuration"
	"clipstream/usecase"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type IGoogleOAuthHandler interface {
	GetAuthURL(ctx *gin.Context)
	HandleCallback(ctx *gin.Context)
}

type GoogleOAuthHandler struct {
	oauth2Config *oauth2.Config
	userUsecase  usecase.IUserUsecase
}

func NewGoogleOAuthHandler(userUsecase usecase.IUserUsecase) IGoogleOAuthHandler {
	cfg := configuration.C.OAuth.Google
	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
	return &GoogleOAuthHandler{oauth2Config: oauth2Config, userUsecase: userUsecase}
}

// GetAuthURL handles GET /auth/google
func (h *GoogleOAuthHandler) GetAuthURL(ctx *gin.Context) {
	state := generateRandomState()
	ctx.SetCookie("oauth_state", state, 600, "/", "", false, true)

	authURL := h.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOffline)
	ctx.JSON(http.StatusOK, gin.H{
		"auth_url": authURL,
	})
}

// HandleCallback handles GET /auth/google/callback
func (h *GoogleOAuthHandler) HandleCallback(ctx *gin.Context) {
	if errorParam := ctx.Query("error"); errorParam != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":       "OAuth error: " + errorParam,
			"description": ctx.Query("error_description"),
		})
		return
	}

	state := ctx.Query("state")
	stored, err := ctx.Cookie("oauth_state")
	if state == "" || err != nil || stored != state {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  "State parameter missing or mismatched",
			"action": "Visit /auth/google to start over",
		})
		return
	}

	code := ctx.Query("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Authorization code not found",
		})
		return
	}

	token, err := h.oauth2Config.Exchange(ctx.Request.Context(), code)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to exchange code for token",
			"message": err.Error(),
		})
		return
	}

	client := h.oauth2Config.Client(ctx.Request.Context(), token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch user info",
			"message": err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	var info struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to decode user info",
		})
		return
	}

	ctx.SetCookie("oauth_state", "", -1, "/", "", false, true)

	res := h.userUsecase.LoginWithProvider(ctx.Request.Context(), "google", info.Email, info.Name)
	ctx.JSON(http.StatusOK, res)
}

// generateRandomState generates a random state parameter for OAuth2
func generateRandomState() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}
