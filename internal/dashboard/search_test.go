package dashboard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openkcm/employee-dashboard/internal/dashboard"
	"github.com/openkcm/employee-dashboard/internal/kvstore"
	kvstoremock "github.com/openkcm/employee-dashboard/internal/kvstore/mock"
	"github.com/openkcm/employee-dashboard/internal/preferences"
)

func TestSearch_DebouncedApply(t *testing.T) {
	backend := kvstoremock.NewInMemBackend()
	prefs := preferences.New(t.Context(), kvstore.NewAdapter(backend))
	s := dashboard.NewSearch(t.Context(), prefs, 20*time.Millisecond)
	t.Cleanup(s.Close)

	s.Input("l")
	s.Input("lo")
	s.Input("lon")
	assert.Equal(t, "", s.State().Applied)

	assert.Eventually(t, func() bool { return s.State().Applied == "lon" }, time.Second, 5*time.Millisecond)
	stored, _ := backend.Value(preferences.SearchKey)
	assert.Equal(t, "lon", stored)

	s.Input("  ")
	assert.Eventually(t, func() bool { return s.State().Applied == "  " }, time.Second, 5*time.Millisecond)
	_, ok := backend.Value(preferences.SearchKey)
	assert.False(t, ok)
}

func TestNotifications_Drain(t *testing.T) {
	n := dashboard.NewNotifications()
	assert.NotNil(t, n.Drain())
	assert.Empty(t, n.Drain())
}
