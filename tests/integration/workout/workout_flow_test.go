//go:build integration
// +build integration

package workout_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	userhandler "strength-api/internal/handler/user"
	testcfg "strength-api/tests/integration/config"
)

// loginAs регистрирует пользователя, подтверждает его email напрямую в БД
// и возвращает access-токен.
func loginAs(t *testing.T, router http.Handler, email string, admin bool) string {
	t.Helper()

	registerBody := `{"email":"` + email + `","password":"Password123!","confirmPassword":"Password123!"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(registerBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	testcfg.VerifyUserEmailForTests(t, email)
	if admin {
		testcfg.GrantAdminForTests(t, email)
	}

	loginBody := `{"email":"` + email + `","password":"Password123!"}`
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(loginBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loginResp userhandler.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	return loginResp.Token
}

// TestWorkout_CreateLinks_RenameMuscle проверяет админский сценарий:
// создание связей мышца-упражнение, отказ на дубликат и переименование мышцы.
func TestWorkout_CreateLinks_RenameMuscle(t *testing.T) {
	router := testcfg.NewTestRouter(t)
	token := loginAs(t, router, "admin1@example.com", true)

	// 1. Создание упражнения со связями; мышцы создаются по ходу.
	createBody := `{"exerciseName":"Bench Press","exerciseDescription":"Barbell press on a flat bench","muscleNames":["Chest","Triceps"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/muscle-exercise", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 2. Повторное создание тех же связей отклоняется.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/muscle-exercise", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// 3. Переименование мышцы.
	muscleID := testcfg.MuscleIDForTests(t, "Chest")
	renameBody := `{"id":"` + muscleID + `","name":"Pectorals"}`
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/muscle", strings.NewReader(renameBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Мышца доступна под новым именем.
	require.Equal(t, muscleID, testcfg.MuscleIDForTests(t, "Pectorals"))
}

// TestWorkout_AdminRoutes_Authorization проверяет границы доступа:
// без токена 401, с токеном обычного пользователя 403.
func TestWorkout_AdminRoutes_Authorization(t *testing.T) {
	router := testcfg.NewTestRouter(t)

	createBody := `{"exerciseName":"Squat","muscleNames":["Quadriceps"]}`

	// Без токена.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/muscle-exercise", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())

	// С токеном пользователя без роли admin.
	token := loginAs(t, router, "member1@example.com", false)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/muscle-exercise", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
}
