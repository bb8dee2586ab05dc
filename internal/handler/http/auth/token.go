package auth

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"post-scheduler/internal/handler/http/requestid"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long issued tokens stay valid.
const TokenTTL = time.Hour

type loginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"your_password"`
}

type tokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// TokenHandler authenticates the operator against ADMIN_USER /
// ADMIN_USER_PASSWORD and issues a signed JWT with the admin role.
//
// @Summary      JWT トークン取得
// @Description  ユーザー名とパスワードで認証し、JWT トークンを発行します
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "ログイン情報"
// @Success      200 {object} tokenResponse "JWT トークン"
// @Failure      400 {string} string "リクエストが不正"
// @Failure      401 {string} string "認証失敗"
// @Failure      500 {string} string "トークン生成失敗"
// @Router       /auth/token [post]
func TokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := requestid.FromContext(r.Context())
		logger := slog.With(slog.String("request_id", requestID))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("unknown", "failure")
			RecordAuthDuration("unknown", time.Since(start).Seconds())
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if !credentialsMatch(req.Username, req.Password) {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_credentials"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("unknown", "failure")
			RecordAuthDuration("unknown", time.Since(start).Seconds())
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		secret := []byte(os.Getenv("JWT_SECRET"))
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  req.Username,
			"role": "admin",
			"exp":  time.Now().Add(TokenTTL).Unix(),
		})

		signed, err := token.SignedString(secret)
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("admin", "failure")
			RecordAuthDuration("admin", time.Since(start).Seconds())
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		logger.Info("authentication successful",
			slog.String("user", req.Username),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordAuthRequest("admin", "success")
		RecordAuthDuration("admin", time.Since(start).Seconds())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tokenResponse{Token: signed}); err != nil {
			logger.Error("failed to encode token response",
				slog.String("error", err.Error()))
		}
	}
}

// ValidateAdminCredentials checks that the admin credentials are configured
// and not trivially weak. Called at startup so the server refuses to boot
// with an unusable login.
func ValidateAdminCredentials() error {
	adminUser := os.Getenv("ADMIN_USER")
	adminPass := os.Getenv("ADMIN_USER_PASSWORD")

	if adminUser == "" {
		return errors.New("ADMIN_USER must be set")
	}
	if adminPass == "" {
		return errors.New("ADMIN_USER_PASSWORD must be set")
	}
	if len(adminPass) < 12 {
		return errors.New("ADMIN_USER_PASSWORD must be at least 12 characters")
	}

	weakPasswords := []string{"password", "123456", "admin", "test", "secret"}
	for _, weak := range weakPasswords {
		if adminPass == weak || adminPass == weak+"123" {
			return fmt.Errorf("ADMIN_USER_PASSWORD must not be a common weak value")
		}
	}
	return nil
}

// credentialsMatch compares against the environment in constant time so the
// comparison leaks nothing about how much of the credential matched.
func credentialsMatch(username, password string) bool {
	if username == "" || password == "" {
		return false
	}
	adminUser := os.Getenv("ADMIN_USER")
	adminPass := os.Getenv("ADMIN_USER_PASSWORD")
	if adminUser == "" || adminPass == "" {
		return false
	}

	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(adminUser)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(adminPass)) == 1
	return userMatch && passMatch
}
