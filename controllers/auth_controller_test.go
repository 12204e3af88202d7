package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Successful login",
			body:           map[string]string{"username": "admin", "password": "laundry123"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Wrong password",
			body:           map[string]string{"username": "admin", "password": "wrong"},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "INVALID_CREDENTIALS",
		},
		{
			name:           "Unknown username",
			body:           map[string]string{"username": "root", "password": "laundry123"},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "INVALID_CREDENTIALS",
		},
		{
			name:           "Missing password",
			body:           map[string]string{"username": "admin"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name:           "Missing username",
			body:           map[string]string{"password": "laundry123"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupControllerTestDB(t)

			router := setupTestRouter()
			router.POST("/admin/login", Login)

			w := performJSON(router, http.MethodPost, "/admin/login", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code, "Response body: %s", w.Body.String())
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestLoginReturnsVerifiableToken(t *testing.T) {
	setupControllerTestDB(t)

	router := setupTestRouter()
	router.POST("/admin/login", Login)

	w := performJSON(router, http.MethodPost, "/admin/login",
		map[string]string{"username": "admin", "password": "laundry123"})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Login successful", data["message"])

	tokenString := data["token"].(string)
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "administrator", claims["role"])
}
