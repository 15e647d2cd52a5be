package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCountries(t *testing.T) {
	server := newBackend(t, map[string]string{
		"/api/countries": `{
			"_embedded": {
				"countries": [
					{"id": 1, "code": "TZ", "name": "Tanzania"},
					{"id": 2, "code": "US", "name": "United States"}
				]
			}
		}`,
	})
	defer server.Close()

	sut := NewFormsClient(server.URL, server.Client())
	countries, err := sut.GetCountries(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "TZ", countries[0].Code)
	assert.Equal(t, "Tanzania", countries[0].Name)
}

func TestGetStates_FiltersByCountryCode(t *testing.T) {
	var gotCode string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCode = r.URL.Query().Get("code")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_embedded": {"states": [{"id": 10, "name": "Arusha"}]}}`))
	}))
	defer server.Close()

	sut := NewFormsClient(server.URL, server.Client())
	states, err := sut.GetStates(context.Background(), "TZ")
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "Arusha", states[0].Name)
	assert.Equal(t, "TZ", gotCode)
}
