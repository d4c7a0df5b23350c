package servicecatalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func TestClient_GetAdditionalServices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/facilities/f-1/services", r.URL.Path)
		assert.Equal(t, "s-1,s-2", r.URL.Query().Get("ids"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"services":[{"id":"s-1","name":"Cleaning","price":150},{"id":"s-2","name":"Projector","price":75.5}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", time.Second, testLogger{})

	services, err := client.GetAdditionalServices(context.Background(), "f-1", []string{"s-1", "s-2"})
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, Service{ID: "s-2", Name: "Projector", Price: 75.5}, services[1])
}

func TestClient_GetAdditionalServices_EmptyIDs(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, testLogger{})

	services, err := client.GetAdditionalServices(context.Background(), "f-1", nil)
	require.NoError(t, err)
	assert.Empty(t, services)
}

func TestClient_GracefulDegradation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/internal/facilities/missing/services" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, testLogger{})

	_, err := client.GetAdditionalServicesWithGracefulDegradation(context.Background(), "missing", []string{"s-1"})
	assert.ErrorIs(t, err, ErrFacilityNotFound)

	_, err = client.GetAdditionalServicesWithGracefulDegradation(context.Background(), "f-1", []string{"s-1"})
	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestClient_NotConfiguredIsDegraded(t *testing.T) {
	client := NewClient("", time.Second, testLogger{})

	_, err := client.GetAdditionalServicesWithGracefulDegradation(context.Background(), "f-1", []string{"s-1"})
	assert.ErrorIs(t, err, ErrServiceDegraded)
}
