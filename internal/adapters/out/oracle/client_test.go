package oracle_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"parcelroute/internal/adapters/out/oracle"
	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"
	"parcelroute/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, baseURL string) *oracle.Client {
	t.Helper()

	client, err := oracle.NewClient(oracle.Config{BaseURL: baseURL})
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("base URL is required", func(t *testing.T) {
		_, err := oracle.NewClient(oracle.Config{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("trailing slash is trimmed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/pickup/all-completed", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]bool{"completed": true})
		}))
		defer server.Close()

		client := newClient(t, server.URL+"/")

		completed, err := client.AllPickupsCompleted(t.Context())
		require.NoError(t, err)
		assert.True(t, completed)
	})
}

func TestClient_NextStop_Pickup(t *testing.T) {
	driverID := kernel.NewUUID()
	targetID := kernel.NewUUID()

	t.Run("successful recommendation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/pickup/next/"+driverID.String(), r.URL.Path)
			fmt.Fprintf(w, `{"status":"success","next_destination":{"parcel_id":%q}}`, targetID.String())
		}))
		defer server.Close()

		stop, err := newClient(t, server.URL).NextStop(t.Context(), parcel.LifecyclePickup, driverID, "")

		require.NoError(t, err)
		require.NotNil(t, stop)
		assert.True(t, targetID.IsEqual(stop.ParcelID))
	})

	t.Run("no recommendation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"status":"empty"}`)
		}))
		defer server.Close()

		stop, err := newClient(t, server.URL).NextStop(t.Context(), parcel.LifecyclePickup, driverID, "")

		require.NoError(t, err)
		assert.Nil(t, stop)
	})

	t.Run("unparseable parcel id is no recommendation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"status":"success","next_destination":{"parcel_id":"not-a-uuid"}}`)
		}))
		defer server.Close()

		stop, err := newClient(t, server.URL).NextStop(t.Context(), parcel.LifecyclePickup, driverID, "")

		require.NoError(t, err)
		assert.Nil(t, stop)
	})

	t.Run("non-2xx is oracle unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newClient(t, server.URL).NextStop(t.Context(), parcel.LifecyclePickup, driverID, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrOracleUnavailable)
	})

	t.Run("unreachable host is oracle unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		_, err := newClient(t, server.URL).NextStop(t.Context(), parcel.LifecyclePickup, driverID, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrOracleUnavailable)
	})
}

func TestClient_NextStop_Delivery(t *testing.T) {
	driverID := kernel.NewUUID()
	targetID := kernel.NewUUID()

	t.Run("forwards the credential verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/delivery/next", r.URL.Path)
			assert.Equal(t, "Bearer driver-token", r.Header.Get("Authorization"))
			fmt.Fprintf(w, `{"status":"success","next_destination":{"delivery_id":%q}}`, targetID.String())
		}))
		defer server.Close()

		stop, err := newClient(t, server.URL).
			NextStop(t.Context(), parcel.LifecycleDelivery, driverID, "Bearer driver-token")

		require.NoError(t, err)
		require.NotNil(t, stop)
		assert.True(t, targetID.IsEqual(stop.ParcelID))
	})

	t.Run("missing credential fails before any request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("no request expected")
		}))
		defer server.Close()

		_, err := newClient(t, server.URL).NextStop(t.Context(), parcel.LifecycleDelivery, driverID, "  ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrMissingCredential)
	})
}

func TestClient_NotifyCompletion(t *testing.T) {
	parcelID := kernel.NewUUID()

	t.Run("posts the parcel id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/pickup/complete", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, parcelID.String(), body["parcelId"])
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		err := newClient(t, server.URL).NotifyCompletion(t.Context(), parcel.LifecyclePickup, parcelID)

		require.NoError(t, err)
	})

	t.Run("delivery lifecycle uses the delivery path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/delivery/complete", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		err := newClient(t, server.URL).NotifyCompletion(t.Context(), parcel.LifecycleDelivery, parcelID)

		require.NoError(t, err)
	})

	t.Run("non-2xx is oracle unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", http.StatusBadGateway)
		}))
		defer server.Close()

		err := newClient(t, server.URL).NotifyCompletion(t.Context(), parcel.LifecyclePickup, parcelID)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrOracleUnavailable)
	})

	t.Run("zero parcel id is rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("no request expected")
		}))
		defer server.Close()

		err := newClient(t, server.URL).NotifyCompletion(t.Context(), parcel.LifecyclePickup, kernel.UUID{})

		require.Error(t, err)
	})
}

func TestClient_AllPickupsCompleted(t *testing.T) {
	t.Run("decodes the completion flag", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"completed":true}`)
		}))
		defer server.Close()

		completed, err := newClient(t, server.URL).AllPickupsCompleted(t.Context())

		require.NoError(t, err)
		assert.True(t, completed)
	})

	t.Run("malformed body is oracle unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{`)
		}))
		defer server.Close()

		_, err := newClient(t, server.URL).AllPickupsCompleted(t.Context())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrOracleUnavailable)
	})
}
