package config

// Defaults are handed to commoncfg.LoadConfig and apply to every key the
// config file leaves out.
func Defaults() map[string]any {
	return map[string]any{
		"http.address":                   ":8080",
		"http.shutdownTimeout":           "5s",
		"storage.backend":                string(StorageMemory),
		"migrate.source":                 MigrateSourceEmbedded,
		"dataSource.endpoint":            "https://backend.jotish.in/backend_dev/gettabledata.php",
		"dataSource.username":            "test",
		"dataSource.password.source":     "embedded",
		"dataSource.password.value":      "123456",
		"dataSource.clientAuth.type":     string(ClientAuthNone),
		"session.username":               "testuser",
		"session.password.source":        "embedded",
		"session.password.value":         "Test123",
		"clients.idleTimeout":            "30m",
		"clients.sessionCookie.name":     "dashboard_session",
		"clients.sessionCookie.maxAge":   2592000,
		"clients.sessionCookie.path":     "/",
		"clients.sessionCookie.httpOnly": true,
		"clients.sessionCookie.sameSite": string(CookieSameSiteLax),
		"clients.csrfCookie.name":        "dashboard_csrf",
		"clients.csrfCookie.maxAge":      2592000,
		"clients.csrfCookie.path":        "/",
		"clients.csrfCookie.sameSite":    string(CookieSameSiteStrict),
		"clients.csrfSecret.source":      "embedded",
		"clients.csrfSecret.value":       "employee-dashboard-development-csrf-secret",
		"search.debounce":                "250ms",
		"chart.limit":                    10,
	}
}
