package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkcm/employee-dashboard/internal/dashboard"
	"github.com/openkcm/employee-dashboard/internal/employee"
	employeemock "github.com/openkcm/employee-dashboard/internal/employee/mock"
	"github.com/openkcm/employee-dashboard/internal/kvstore"
	kvstoremock "github.com/openkcm/employee-dashboard/internal/kvstore/mock"
	"github.com/openkcm/employee-dashboard/internal/middleware/responsewriter"
	"github.com/openkcm/employee-dashboard/internal/openapi"
	"github.com/openkcm/employee-dashboard/internal/serviceerr"
	"github.com/openkcm/employee-dashboard/internal/session"
	"github.com/openkcm/employee-dashboard/pkg/csrf"
)

var testRecords = []employee.Record{
	{ID: "5421", Name: "Tiger Nixon", City: "Edinburgh", Salary: 320800, Age: employee.DeriveAge("5421")},
	{ID: "8422", Name: "Garrett Winters", City: "Tokyo", Salary: 170750, Age: employee.DeriveAge("8422")},
	{ID: "1562", Name: "Ashton Cox", City: "London", Salary: 86000, Age: employee.DeriveAge("1562")},
}

type testEnv struct {
	handler  http.Handler
	registry *dashboard.Registry
	backend  *kvstoremock.Backend
	source   *employeemock.Source
}

func newTestRegistry(t *testing.T, backend *kvstoremock.Backend, source *employeemock.Source) *dashboard.Registry {
	t.Helper()

	registry := dashboard.NewRegistry(func(ctx context.Context, clientID string) *dashboard.App {
		return dashboard.New(ctx,
			kvstore.NewAdapter(kvstore.WithPrefix(backend, "client/"+clientID+"/")),
			source,
			dashboard.Config{
				Credentials:    session.Credentials{Username: "testuser", Password: "Test123"},
				SearchDebounce: time.Hour,
			},
			dashboard.WithNavigator(NewHeaderNavigator()),
		)
	}, time.Hour)
	t.Cleanup(registry.Close)

	return registry
}

func newTestEnv(t *testing.T, sourceOpts ...employeemock.SourceOption) *testEnv {
	t.Helper()

	if len(sourceOpts) == 0 {
		sourceOpts = []employeemock.SourceOption{employeemock.WithRecords(testRecords...)}
	}

	env := &testEnv{
		backend: kvstoremock.NewInMemBackend(),
		source:  employeemock.NewSource(sourceOpts...),
	}
	env.registry = newTestRegistry(t, env.backend, env.source)

	cfg := testConfig(":0")
	env.handler = newHandler(cfg, newClients(env.registry, cfg.Clients, testCSRFSecret), nil)

	return env
}

// testClient replays the cookies it was given and echoes the csrf cookie
// the way the dashboard frontend does.
type testClient struct {
	t       *testing.T
	env     *testEnv
	cookies map[string]*http.Cookie

	skipCSRF bool
}

// browser is a client that has not talked to the API yet.
func (e *testEnv) browser(t *testing.T) *testClient {
	return &testClient{t: t, env: e, cookies: map[string]*http.Cookie{}}
}

// client is a client with issued cookies, logged in when authenticated.
func (e *testEnv) client(t *testing.T, authenticated bool) *testClient {
	t.Helper()

	id := uuid.NewString()
	if authenticated {
		require.NoError(t, e.backend.Set(t.Context(), "client/"+id+"/"+session.AuthKey, "true"))
	}
	token, err := csrf.NewToken(id, testCSRFSecret)
	require.NoError(t, err)

	c := e.browser(t)
	c.cookies[sessionCookieName] = &http.Cookie{Name: sessionCookieName, Value: id}
	c.cookies[csrfCookieName] = &http.Cookie{Name: csrfCookieName, Value: token}

	return c
}

func (c *testClient) id() string {
	return c.cookies[sessionCookieName].Value
}

func (c *testClient) app() *dashboard.App {
	return c.env.registry.Get(c.t.Context(), c.id())
}

func (c *testClient) do(method, target, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
	if token, ok := c.cookies[csrfCookieName]; ok && !c.skipCSRF {
		req.Header.Set(headerCSRFToken, token.Value)
	}

	w := httptest.NewRecorder()
	c.env.handler.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		c.cookies[cookie.Name] = cookie
	}

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

func TestAPI_ProtectedRoutesRedirectToLogin(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t, false)

	tests := []struct {
		method string
		target string
		from   string
	}{
		{http.MethodGet, "/api/employees", "/list"},
		{http.MethodPost, "/api/employees/refresh", "/list"},
		{http.MethodGet, "/api/employees/5421", "/details/5421"},
		{http.MethodGet, "/api/employees/last", "/list"},
		{http.MethodGet, "/api/search", "/list"},
		{http.MethodPut, "/api/search", "/list"},
		{http.MethodGet, "/api/chart", "/chart"},
		{http.MethodGet, "/api/map", "/map"},
		{http.MethodGet, "/api/export", "/list"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			body := ""
			if tt.method == http.MethodPut {
				body = `{"query":"x"}`
			}
			w := c.do(tt.method, tt.target, body)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "/login", w.Header().Get("Location"))
			assert.Equal(t, "true", w.Header().Get("X-Navigate-Replace"))
			assert.Equal(t, tt.from, w.Header().Get("X-Navigate-From"))
			assert.Equal(t, "unauthorized", decode[openapi.ErrorModel](t, w).Error)
		})
	}

	assert.Zero(t, env.source.Calls())
}

func TestAPI_LoginFlow(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t, false)

	w := c.do(http.MethodPost, "/api/login", `{"username":"testuser","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode[openapi.ErrorModel](t, w)
	assert.Equal(t, "unauthorized", body.Error)
	require.NotNil(t, body.ErrorDescription)
	assert.Equal(t, "Invalid username or password.", *body.ErrorDescription)

	w = c.do(http.MethodPost, "/api/login", `{"username":" testuser ","password":"Test123","from":"/map"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/map", w.Header().Get("Location"))
	assert.JSONEq(t, `{"authenticated":true,"redirect":{"path":"/map","replace":true}}`, w.Body.String())

	w = c.do(http.MethodGet, "/api/session", "")
	assert.JSONEq(t, `{"authenticated":true}`, w.Body.String())

	w = c.do(http.MethodGet, "/api/map", "")
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[openapi.MapView](t, w)
	assert.Equal(t, "ready", view.State)
	assert.Len(t, view.Points, 3)

	w = c.do(http.MethodPost, "/api/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Equal(t, "true", w.Header().Get("X-Navigate-Replace"))
	assert.JSONEq(t, `{"authenticated":false,"redirect":{"path":"/login","replace":true}}`, w.Body.String())

	w = c.do(http.MethodGet, "/api/notifications", "")
	assert.JSONEq(t, `[{"message":"You have been logged out.","level":"info"}]`, w.Body.String())

	w = c.do(http.MethodGet, "/api/notifications", "")
	assert.JSONEq(t, `[]`, w.Body.String())

	w = c.do(http.MethodGet, "/api/employees", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	assert.Equal(t, 1, env.source.Calls())
}

func TestAPI_LoginBadBody(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t, false)

	for _, body := range []string{"", "not json", `{"username":`} {
		w := c.do(http.MethodPost, "/api/login", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "invalid_request", decode[openapi.ErrorModel](t, w).Error)
	}

	w := c.do(http.MethodPost, "/api/login", `{"user":"testuser"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_ClientsAreIsolated(t *testing.T) {
	env := newTestEnv(t)
	alice := env.browser(t)
	bob := env.browser(t)

	w := alice.do(http.MethodGet, "/api/session", "")
	require.Equal(t, http.StatusOK, w.Code)
	w = bob.do(http.MethodGet, "/api/session", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEqual(t, alice.id(), bob.id())

	w = alice.do(http.MethodPost, "/api/login", `{"username":"testuser","password":"Test123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = alice.do(http.MethodPost, "/api/preferences/theme/toggle", "")
	require.JSONEq(t, `{"theme":"dark"}`, w.Body.String())

	w = bob.do(http.MethodGet, "/api/employees", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = bob.do(http.MethodGet, "/api/session", "")
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
	w = bob.do(http.MethodGet, "/api/preferences/theme", "")
	assert.JSONEq(t, `{"theme":"light"}`, w.Body.String())

	w = alice.do(http.MethodGet, "/api/employees", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, env.registry.Len())
}

func TestAPI_ClientCookies(t *testing.T) {
	env := newTestEnv(t)

	t.Run("Issued on the first request", func(t *testing.T) {
		c := env.browser(t)

		w := c.do(http.MethodGet, "/api/session", "")
		require.Equal(t, http.StatusOK, w.Code)

		sessionCookie := c.cookies[sessionCookieName]
		require.NotNil(t, sessionCookie)
		_, err := uuid.Parse(sessionCookie.Value)
		require.NoError(t, err)
		assert.True(t, sessionCookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, sessionCookie.SameSite)

		csrfCookie := c.cookies[csrfCookieName]
		require.NotNil(t, csrfCookie)
		assert.False(t, csrfCookie.HttpOnly)
		assert.True(t, csrf.Validate(csrfCookie.Value, sessionCookie.Value, testCSRFSecret))

		w = c.do(http.MethodGet, "/api/session", "")
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("Malformed session cookie starts a new client", func(t *testing.T) {
		c := env.browser(t)
		c.cookies[sessionCookieName] = &http.Cookie{Name: sessionCookieName, Value: "not-a-uuid"}

		c.do(http.MethodGet, "/api/session", "")

		assert.NotEqual(t, "not-a-uuid", c.id())
		_, err := uuid.Parse(c.id())
		assert.NoError(t, err)
	})

	t.Run("Missing csrf cookie is issued again", func(t *testing.T) {
		c := env.client(t, false)
		id := c.id()
		delete(c.cookies, csrfCookieName)

		w := c.do(http.MethodGet, "/api/session", "")
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, id, c.id())
		require.Contains(t, c.cookies, csrfCookieName)
		assert.True(t, csrf.Validate(c.cookies[csrfCookieName].Value, id, testCSRFSecret))
	})

	t.Run("Known client keeps its instance", func(t *testing.T) {
		c := env.client(t, true)

		w := c.do(http.MethodGet, "/api/session", "")
		assert.JSONEq(t, `{"authenticated":true}`, w.Body.String())
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestAPI_CSRF(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name     string
		token    func(c *testClient) string
		wantCode int
	}{
		{
			name:     "Missing token",
			token:    func(*testClient) string { return "" },
			wantCode: http.StatusForbidden,
		},
		{
			name:     "Garbage token",
			token:    func(*testClient) string { return "abc.def" },
			wantCode: http.StatusForbidden,
		},
		{
			name: "Token of another client",
			token: func(*testClient) string {
				token, err := csrf.NewToken(uuid.NewString(), testCSRFSecret)
				require.NoError(t, err)
				return token
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "Token signed with another secret",
			token: func(c *testClient) string {
				token, err := csrf.NewToken(c.id(), []byte("fedcba9876543210fedcba9876543210"))
				require.NoError(t, err)
				return token
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "Valid token",
			token:    func(c *testClient) string { return c.cookies[csrfCookieName].Value },
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := env.client(t, false)
			c.skipCSRF = true

			req := httptest.NewRequest(http.MethodPost, "/api/preferences/theme/toggle", nil)
			req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: c.id()})
			if token := tt.token(c); token != "" {
				req.Header.Set(headerCSRFToken, token)
			}
			w := httptest.NewRecorder()
			env.handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusForbidden {
				assert.Equal(t, "invalid_csrf_token", decode[openapi.ErrorModel](t, w).Error)
				assert.Equal(t, "light", string(c.app().Preferences.Theme()))
			}
		})
	}

	t.Run("Safe methods need no token", func(t *testing.T) {
		c := env.client(t, false)
		c.skipCSRF = true

		w := c.do(http.MethodGet, "/api/preferences/theme", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Rejected logout keeps the session", func(t *testing.T) {
		c := env.client(t, true)
		c.skipCSRF = true

		w := c.do(http.MethodPost, "/api/logout", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.True(t, c.app().Session.IsAuthenticated())
	})
}

func TestAPI_Employees(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t, true)

	w := c.do(http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[openapi.ListView](t, w)
	assert.Equal(t, 3, list.Total)
	assert.Len(t, list.Employees, 3)
	assert.Equal(t, "ready", list.State)
	assert.NotNil(t, list.UpdatedAt)
	assert.Nil(t, list.Error)

	w = c.do(http.MethodGet, "/api/employees?q=tokyo", "")
	list = decode[openapi.ListView](t, w)
	assert.Equal(t, "tokyo", list.Query)
	assert.Equal(t, []openapi.Employee{toEmployee(testRecords[1])}, list.Employees)

	w = c.do(http.MethodGet, "/api/employees?q=nobody", "")
	assert.JSONEq(t, `[]`, string(decode[map[string]json.RawMessage](t, w)["employees"]))

	w = c.do(http.MethodGet, "/api/employees/1562", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, toEmployee(testRecords[2]), decode[openapi.DetailView](t, w).Employee)

	w = c.do(http.MethodGet, "/api/employees/last", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, toEmployee(testRecords[2]), decode[openapi.DetailView](t, w).Employee)

	w = c.do(http.MethodGet, "/api/employees/0000", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", decode[openapi.ErrorModel](t, w).Error)

	w = c.do(http.MethodPost, "/api/employees/refresh", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ready", decode[openapi.FetchStatus](t, w).State)

	assert.Equal(t, 2, env.source.Calls())
}

func TestAPI_Search(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t, true)

	w := c.do(http.MethodPut, "/api/search", `{"query":"edin"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"input":"edin","applied":""}`, w.Body.String())

	c.app().Search.Flush()

	w = c.do(http.MethodGet, "/api/search", "")
	assert.JSONEq(t, `{"input":"edin","applied":"edin"}`, w.Body.String())

	w = c.do(http.MethodGet, "/api/employees", "")
	list := decode[openapi.ListView](t, w)
	assert.Equal(t, "edin", list.Query)
	assert.Equal(t, []openapi.Employee{toEmployee(testRecords[0])}, list.Employees)

	stored, _ := env.backend.Value("client/" + c.id() + "/employee_search_query")
	assert.Equal(t, "edin", stored)
}

func TestAPI_Chart(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t, true)

	w := c.do(http.MethodGet, "/api/chart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[openapi.ChartView](t, w).Bars, 3)

	w = c.do(http.MethodGet, "/api/chart?limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	bars := decode[openapi.ChartView](t, w).Bars
	require.Len(t, bars, 1)
	assert.Equal(t, openapi.SalaryBar{Name: "Tiger Nixon", Salary: 320800}, bars[0])

	for _, limit := range []string{"0", "-3", "ten"} {
		w = c.do(http.MethodGet, "/api/chart?limit="+limit, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, limit)
		assert.Equal(t, "invalid_request", decode[openapi.ErrorModel](t, w).Error, limit)
	}
}

func TestAPI_Export(t *testing.T) {
	t.Run("CSV attachment", func(t *testing.T) {
		env := newTestEnv(t)
		c := env.client(t, true)

		w := c.do(http.MethodGet, "/api/export", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="employees.csv"`, w.Header().Get("Content-Disposition"))
		assert.True(t, strings.HasPrefix(w.Body.String(), "ID,Name,Salary,City,Age\r\n5421,Tiger Nixon,320800,Edinburgh,"))
		assert.False(t, strings.HasSuffix(w.Body.String(), "\r\n"))
	})

	t.Run("Nothing to export", func(t *testing.T) {
		env := newTestEnv(t, employeemock.WithRecords())
		c := env.client(t, true)

		w := c.do(http.MethodGet, "/api/export", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Zero(t, w.Body.Len())
	})
}

func TestAPI_FailedFetch(t *testing.T) {
	env := newTestEnv(t, employeemock.WithError(employee.ErrFetch))
	c := env.client(t, true)

	w := c.do(http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[openapi.ListView](t, w)
	assert.Equal(t, "failed", list.State)
	require.NotNil(t, list.Error)
	assert.Equal(t, "Failed to fetch employees", *list.Error)

	w = c.do(http.MethodGet, "/api/employees/5421", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAPI_Theme(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t, false)

	w := c.do(http.MethodGet, "/api/preferences/theme", "")
	assert.JSONEq(t, `{"theme":"light"}`, w.Body.String())

	w = c.do(http.MethodPost, "/api/preferences/theme/toggle", "")
	assert.JSONEq(t, `{"theme":"dark"}`, w.Body.String())

	w = c.do(http.MethodPut, "/api/preferences/theme", `{"theme":"light"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"theme":"light"}`, w.Body.String())

	w = c.do(http.MethodPut, "/api/preferences/theme", `{"theme":"neon"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpenAPIServer_WithoutClient(t *testing.T) {
	server := newOpenAPIServer()

	resp, err := server.GetSession(t.Context(), openapi.GetSessionRequestObject{})
	require.NoError(t, err)
	assert.Equal(t, openapi.GetSessiondefaultJSONResponse{
		Body:       openapi.ErrorModel{Error: "unknown", ErrorDescription: optional("unknown error")},
		StatusCode: http.StatusInternalServerError,
	}, resp)
}

func TestToErrorModel(t *testing.T) {
	body, status := toErrorModel(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, openapi.ErrorModel{Error: "unknown", ErrorDescription: optional("unknown error")}, body)

	body, status = toErrorModel(serviceerr.ErrInvalidRequest)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Nil(t, body.ErrorDescription)
}

func TestHeaderNavigator_OutsideRequest(t *testing.T) {
	assert.NotPanics(t, func() {
		NewHeaderNavigator().Navigate(t.Context(), session.Intent{Path: "/login"})
	})
}

func TestHeaderNavigator(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set(headerNavigateFrom, "/stale")
	ctx := responsewriter.WithWriter(t.Context(), rec)

	NewHeaderNavigator().Navigate(ctx, session.Intent{Path: "/list", Replace: true})

	assert.Equal(t, "/list", rec.Header().Get(headerLocation))
	assert.Equal(t, "true", rec.Header().Get(headerNavigateReplace))
	assert.Empty(t, rec.Header().Get(headerNavigateFrom))

	NewHeaderNavigator().Navigate(ctx, session.Intent{Path: "/login", From: "/chart"})

	assert.Equal(t, "/login", rec.Header().Get(headerLocation))
	assert.Equal(t, "false", rec.Header().Get(headerNavigateReplace))
	assert.Equal(t, "/chart", rec.Header().Get(headerNavigateFrom))
}
