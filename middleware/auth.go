package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"catdistribution/backend/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Define context keys
type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
)

// tokenVerifier is the part of the Firebase auth client the middleware needs
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

var (
	firebaseAuth tokenVerifier
	// devUserID is injected into every request while firebaseAuth is nil
	devUserID = "admin"
)

// Swapped out in tests so no connection to Google is attempted
var (
	firebaseInitApp = firebase.NewApp
	firebaseGetAuth = func(app *firebase.App, ctx context.Context) (*auth.Client, error) {
		return app.Auth(ctx)
	}
)

// InitializeFirebase initializes the Firebase Admin SDK. Without credentials
// the middleware runs in development mode and authenticates every request
// as the configured dev user.
func InitializeFirebase(ctx context.Context, cfg config.FirebaseConfig) error {
	if cfg.DevUserID != "" {
		devUserID = cfg.DevUserID
	}

	if cfg.CredentialsJSON == "" {
		firebaseAuth = nil
		zap.L().Warn("No Firebase credentials found, running with auth checks disabled",
			zap.String("devUser", devUserID))
		return nil
	}

	opt := option.WithCredentialsJSON([]byte(cfg.CredentialsJSON))
	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebaseInitApp(ctx, fbConfig, opt)
	if err != nil {
		return fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := firebaseGetAuth(app, ctx)
	if err != nil {
		return fmt.Errorf("error getting Firebase Auth client: %w", err)
	}

	firebaseAuth = client
	zap.L().Info("Firebase Admin SDK initialized", zap.String("project", cfg.ProjectID))
	return nil
}

// AuthMiddleware verifies Firebase JWT tokens from the Authorization header
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip auth for OPTIONS requests (CORS preflight)
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		if firebaseAuth == nil {
			ctx := context.WithValue(r.Context(), UserIDKey, devUserID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		idToken := extractToken(r.Header.Get("Authorization"))
		if idToken == "" {
			http.Error(w, "Unauthorized: No token provided", http.StatusUnauthorized)
			return
		}

		token, err := verifyToken(r.Context(), idToken)
		if err != nil {
			zap.L().Warn("Error verifying token", zap.Error(err))
			http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			ctx = context.WithValue(ctx, UserEmailKey, email)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken gets the token from the Authorization header
func extractToken(authHeader string) string {
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// verifyToken verifies the Firebase JWT token
func verifyToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if firebaseAuth == nil {
		return nil, errors.New("Firebase auth client not initialized")
	}

	token, err := firebaseAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("error verifying ID token: %w", err)
	}
	return token, nil
}

// GetUserIDFromContext retrieves the user ID from the request context
func GetUserIDFromContext(r *http.Request) string {
	userID, _ := r.Context().Value(UserIDKey).(string)
	return userID
}

// GetUserEmailFromContext retrieves the verified email, if the token carried one
func GetUserEmailFromContext(r *http.Request) string {
	email, _ := r.Context().Value(UserEmailKey).(string)
	return email
}
