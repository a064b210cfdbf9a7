package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/rehan-adi/Blog-Backend/models"
)

type contextKey string

const userIDKey contextKey = "userID"

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Request: %s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func authMiddleware(next http.Handler, config models.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authToken := r.Header.Get("Authorization")
		if authToken == "" {
			writeJSON(w, http.StatusUnauthorized, models.Response{
				Success: false,
				Message: "Authorization Header Required",
			})
			return
		}
		authToken = strings.TrimPrefix(authToken, "Bearer ")
		userID, err := ValidateToken(authToken, config)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, models.Response{
				Success: false,
				Message: "Invalid/Expired Authorization Token",
			})
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// callerID returns the authenticated user id, or "" when the request never
// passed through authMiddleware.
func callerID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}
