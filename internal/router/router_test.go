package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fc-admin/internal/auth"
	"fc-admin/internal/config"
	"fc-admin/internal/middleware"
	"fc-admin/internal/models"
	"fc-admin/internal/supabase"
	"fc-admin/internal/supabase/supabasetest"
)

type testEnv struct {
	t        *testing.T
	h        http.Handler
	backend  *supabasetest.Server
	missions *fakeMissions
	cards    *fakeCards
}

func newTestEnv(t *testing.T, withData bool) *testEnv {
	return newTestEnvConfig(t, withData, config.Config{Origin: "http://localhost:3000"})
}

func newTestEnvConfig(t *testing.T, withData bool, cfg config.Config) *testEnv {
	backend := supabasetest.NewServer(t)
	admin := backend.AddUser("admin@fc.test", "admin-pw")
	backend.AddUser("guest@fc.test", "guest-pw")

	e := &testEnv{t: t, backend: backend}
	d := Deps{Auth: auth.New(backend.Client(t, supabase.WithPersistSession(false)))}
	if withData {
		e.missions = newFakeMissions()
		e.cards = &fakeCards{
			cards: map[string]*models.MissionCard{
				"c1": {ID: "c1", MissionID: "m1", SectionType: models.SectionTransport, CardType: models.CardUserSpecific, Title: "Flight", IsActive: true},
				"c2": {ID: "c2", MissionID: "m1", SectionType: models.SectionCulture, CardType: models.CardShared, Title: "Museum"},
			},
			userCards: []models.UserSpecificCard{{ID: "uc1", CardID: "c1", UserID: "traveller-1"}},
		}
		d.Admins = fakeAdmins{admin.ID: {ID: admin.ID, Email: admin.Email, Role: models.RoleAdmin}}
		d.Users = &fakeUsers{users: []models.AppUser{{ID: "traveller-1", Email: "t1@fc.test"}}}
		d.Missions = e.missions
		d.Cards = e.cards
	}
	e.h = New(zerolog.Nop(), cfg, d)
	return e
}

func (e *testEnv) do(method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.h.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(email, password string) *http.Cookie {
	rec := e.do(http.MethodPost, "/api/auth/login", `{"email":"`+email+`","password":"`+password+`"}`, nil)
	require.Equal(e.t, http.StatusOK, rec.Code, rec.Body.String())
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	e.t.Fatal("no session cookie")
	return nil
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m), rec.Body.String())
	return m
}

func TestHealthAndTheme(t *testing.T) {
	e := newTestEnv(t, false)

	rec := e.do(http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "disabled", decode(t, rec)["database"])

	rec = e.do(http.MethodGet, "/api/theme?key=primary.DEFAULT", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "#003E71", decode(t, rec)["value"])

	rec = e.do(http.MethodGet, "/api/theme?key=primary.neon", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = e.do(http.MethodGet, "/api/theme", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	colors := decode(t, rec)["colors"].(map[string]any)
	require.Equal(t, "#111827", colors["gray.900"])
}

func TestLoginMeLogout(t *testing.T) {
	e := newTestEnv(t, false)

	rec := e.do(http.MethodGet, "/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = e.do(http.MethodPost, "/api/auth/login", `{"email":"admin@fc.test","password":"nope"}`, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid login credentials", decode(t, rec)["error"])

	rec = e.do(http.MethodPost, "/api/auth/login", `not json`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	cookie := e.login("admin@fc.test", "admin-pw")
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	rec = e.do(http.MethodGet, "/api/auth/me", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "admin@fc.test", decode(t, rec)["email"])

	rec = e.do(http.MethodPost, "/api/auth/logout", "", cookie)
	require.Equal(t, http.StatusNoContent, rec.Code)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	require.Equal(t, -1, cleared[0].MaxAge)
	require.Equal(t, 0, e.backend.ActiveTokens())

	// the old token was revoked by the backend
	rec = e.do(http.MethodGet, "/api/auth/me", "", cookie)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = e.do(http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDataRoutesNeedDatabase(t *testing.T) {
	e := newTestEnv(t, false)
	cookie := e.login("admin@fc.test", "admin-pw")

	rec := e.do(http.MethodGet, "/api/missions", "", cookie)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDataRoutesNeedAdmin(t *testing.T) {
	e := newTestEnv(t, true)

	rec := e.do(http.MethodGet, "/api/missions", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	guest := e.login("guest@fc.test", "guest-pw")
	rec = e.do(http.MethodGet, "/api/missions", "", guest)
	require.Equal(t, http.StatusForbidden, rec.Code)

	admin := e.login("admin@fc.test", "admin-pw")
	rec = e.do(http.MethodGet, "/api/admins/me", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "admin", decode(t, rec)["role"])
}

func TestMissions(t *testing.T) {
	e := newTestEnv(t, true)
	admin := e.login("admin@fc.test", "admin-pw")

	rec := e.do(http.MethodGet, "/api/missions?status=archived", "", admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(http.MethodPost, "/api/missions", `{"country":"DE"}`, admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(http.MethodPost, "/api/missions", `{"name":"Anuga 2025","country":"DE","city":"Cologne","end_date":"2025-10-08"}`, admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "start_date is required", decode(t, rec)["error"])

	rec = e.do(http.MethodPost, "/api/missions", `{"name":"Anuga 2025","country":"DE","city":" ","start_date":"2025-10-04","end_date":"2025-10-08"}`, admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "city is required", decode(t, rec)["error"])
	require.Empty(t, e.missions.missions)

	rec = e.do(http.MethodPost, "/api/missions",
		`{"name":"Anuga 2025","country":"DE","city":"Cologne","start_date":"2025-10-04","end_date":"2025-10-08","exchange_rate":1.08}`, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	require.Equal(t, "draft", created["status"])
	require.Equal(t, 1.08, created["exchange_rate"])
	require.NotContains(t, created, "timezone")
	id := created["id"].(string)

	rec = e.do(http.MethodGet, "/api/missions?status=active&limit=5&offset=10", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 0, decode(t, rec)["total"])
	require.Equal(t, listCall{models.MissionActive, 5, 10}, e.missions.lastList)

	rec = e.do(http.MethodPatch, "/api/missions/"+id+"/status", `{"status":"active"}`, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "active", decode(t, rec)["status"])

	rec = e.do(http.MethodPatch, "/api/missions/"+id+"/status", `{"status":"paused"}`, admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(http.MethodPatch, "/api/missions/missing/status", `{"status":"active"}`, admin)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = e.do(http.MethodGet, "/api/missions/"+id, "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Cologne", decode(t, rec)["city"])

	rec = e.do(http.MethodGet, "/api/missions/missing", "", admin)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssignments(t *testing.T) {
	e := newTestEnv(t, true)
	admin := e.login("admin@fc.test", "admin-pw")

	rec := e.do(http.MethodPost, "/api/missions/m1/users", `{}`, admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(http.MethodPost, "/api/missions/m1/users", `{"user_id":"traveller-1"}`, admin)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "m1", decode(t, rec)["mission_id"])

	rec = e.do(http.MethodGet, "/api/missions/m1/users", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode(t, rec)["items"], 1)

	rec = e.do(http.MethodDelete, "/api/missions/m1/users/traveller-1", "", admin)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = e.do(http.MethodDelete, "/api/missions/m1/users/traveller-1", "", admin)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCards(t *testing.T) {
	e := newTestEnv(t, true)
	admin := e.login("admin@fc.test", "admin-pw")

	rec := e.do(http.MethodGet, "/api/missions/m1/cards", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode(t, rec)["items"], 2)

	rec = e.do(http.MethodGet, "/api/missions/m1/cards?active=true", "", admin)
	require.Len(t, decode(t, rec)["items"], 1)

	rec = e.do(http.MethodGet, "/api/missions/m1/cards?section=food", "", admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(http.MethodPost, "/api/missions/m1/cards", `{"section_type":"activity","title":"Tour","display_order":2}`, admin)
	require.Equal(t, http.StatusCreated, rec.Code)
	card := decode(t, rec)
	require.Equal(t, "m1", card["mission_id"])
	require.Equal(t, "shared", card["card_type"])

	rec = e.do(http.MethodPost, "/api/missions/m1/cards", `{"section_type":"spa","title":"Spa"}`, admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(http.MethodPatch, "/api/cards/c2/active", `{}`, admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(http.MethodPatch, "/api/cards/c2/active", `{"active":true}`, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, decode(t, rec)["is_active"])

	rec = e.do(http.MethodGet, "/api/cards/c1", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user_specific", decode(t, rec)["card_type"])

	rec = e.do(http.MethodGet, "/api/cards/c1/users", "", admin)
	require.Len(t, decode(t, rec)["items"], 1)

	rec = e.do(http.MethodGet, "/api/users/traveller-1/cards", "", admin)
	require.Len(t, decode(t, rec)["items"], 1)
}

func TestUsers(t *testing.T) {
	e := newTestEnv(t, true)
	admin := e.login("admin@fc.test", "admin-pw")

	rec := e.do(http.MethodGet, "/api/users", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 1, decode(t, rec)["total"])

	rec = e.do(http.MethodGet, "/api/users/traveller-1", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "t1@fc.test", decode(t, rec)["email"])

	rec = e.do(http.MethodGet, "/api/users/nobody", "", admin)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDataRoutesRateLimited(t *testing.T) {
	e := newTestEnvConfig(t, true, config.Config{Origin: "http://localhost:3000", RateLimit: 3})
	admin := e.login("admin@fc.test", "admin-pw")

	for i := 0; i < 3; i++ {
		rec := e.do(http.MethodGet, "/api/missions", "", admin)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}
	rec := e.do(http.MethodGet, "/api/missions", "", admin)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	// the auth routes are outside the limited group
	for i := 0; i < 5; i++ {
		rec = e.do(http.MethodGet, "/api/auth/me", "", admin)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec = e.do(http.MethodPost, "/api/auth/login", `{"email":"admin@fc.test","password":"admin-pw"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
