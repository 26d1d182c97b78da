package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-marketing-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRelay(cfg *config.Config, endpoint string) *RelaySender {
	s := NewRelaySender(cfg)
	s.endpoint = endpoint
	s.client = &http.Client{Timeout: 2 * time.Second}
	return s
}

func relayConfig() *config.Config {
	return &config.Config{
		RelayServiceID:  "service_1",
		RelayTemplateID: "template_1",
		RelayPublicKey:  "public_abc",
		RelayOrigin:     "https://example.com",
	}
}

func TestRelaySenderConfigured(t *testing.T) {
	assert.True(t, NewRelaySender(relayConfig()).Configured())

	partial := relayConfig()
	partial.RelayPublicKey = ""
	assert.False(t, NewRelaySender(partial).Configured())

	assert.False(t, NewRelaySender(&config.Config{}).Configured())
}

func TestRelaySenderSend(t *testing.T) {
	t.Run("posts template params and accepts 200", func(t *testing.T) {
		var got map[string]any
		var origin string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin = r.Header.Get("Origin")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		s := newTestRelay(relayConfig(), srv.URL)
		err := s.Send(context.Background(), Message{
			Name:    "Ann Lee",
			Service: "Consulting",
			Email:   "ann@x.com",
			Time:    "2026-01-02 10:00:00 UTC",
			Body:    "Interested in your offering please",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", origin)
		assert.Equal(t, "service_1", got["service_id"])
		assert.Equal(t, "template_1", got["template_id"])
		assert.Equal(t, "public_abc", got["user_id"])

		params, ok := got["template_params"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Ann Lee", params["name"])
		assert.Equal(t, "Consulting", params["service"])
		assert.Equal(t, "ann@x.com", params["email"])
		assert.Equal(t, "Interested in your offering please", params["message"])
	})

	t.Run("202 counts as success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		s := newTestRelay(relayConfig(), srv.URL)
		assert.NoError(t, s.Send(context.Background(), sampleMsg()))
	})

	t.Run("non-success status carries code and body as diagnostic", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("bad public key"))
		}))
		defer srv.Close()

		s := newTestRelay(relayConfig(), srv.URL)
		err := s.Send(context.Background(), sampleMsg())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
		assert.Contains(t, err.Error(), "bad public key")
	})

	t.Run("access token is only sent when configured", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		s := newTestRelay(relayConfig(), srv.URL)
		require.NoError(t, s.Send(context.Background(), sampleMsg()))
		_, present := got["accessToken"]
		assert.False(t, present)

		cfg := relayConfig()
		cfg.RelayAccessToken = "secret"
		s = newTestRelay(cfg, srv.URL)
		require.NoError(t, s.Send(context.Background(), sampleMsg()))
		assert.Equal(t, "secret", got["accessToken"])
	})
}
