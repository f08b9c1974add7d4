package coincap

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	etl_errors "cryptoetl/internal"

	"github.com/stretchr/testify/require"
)

const assetsBody = `{
	"data": [
		{
			"id": "bitcoin",
			"rank": "1",
			"symbol": "BTC",
			"name": "Bitcoin",
			"supply": "19000000",
			"maxSupply": "21000000",
			"marketCapUsd": "1.2e12",
			"volumeUsd24Hr": "3e10",
			"priceUsd": "65000.0",
			"changePercent24Hr": "1.5",
			"vwap24Hr": "64000.0",
			"explorer": "https://blockchain.info"
		},
		{
			"id": "tether",
			"symbol": "USDT",
			"name": "Tether",
			"supply": 110000000000,
			"maxSupply": null,
			"marketCapUsd": "110000000000",
			"volumeUsd24Hr": "50000000000",
			"priceUsd": "1.0001",
			"changePercent24Hr": "0.01",
			"vwap24Hr": null,
			"explorer": "https://www.omniexplorer.info/asset/31"
		}
	],
	"timestamp": 1714737600000
}`

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	captured := &http.Request{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = *r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func TestClient_GetAssets(t *testing.T) {
	t.Run("parses data envelope", func(t *testing.T) {
		server, captured := newTestServer(t, http.StatusOK, assetsBody)
		c := Client{HttpClient: server.Client(), BaseURL: server.URL + "/v3/assets", ApiKey: "token"}

		out, err := c.GetAssets(context.Background())
		require.NoError(t, err)
		require.Len(t, out.Assets, 2)
		require.Equal(t, "Bearer token", captured.Header.Get("Authorization"))
		require.Equal(t, "/v3/assets", captured.URL.Path)
		require.Equal(t, http.MethodGet, captured.Method)

		id, ok := out.Assets[0].Text("id")
		require.True(t, ok)
		require.Equal(t, "bitcoin", id)

		supply, ok := out.Assets[1].Text("supply")
		require.True(t, ok)
		require.Equal(t, "110000000000", supply)
		require.Equal(t, json.Number("110000000000"), out.Assets[1]["supply"])

		_, ok = out.Assets[1].Text("vwap24Hr")
		require.False(t, ok)
		require.Equal(t, assetsBody, string(out.Raw))
	})

	t.Run("missing data key", func(t *testing.T) {
		server, _ := newTestServer(t, http.StatusOK, `{"timestamp": 1}`)
		c := Client{HttpClient: server.Client(), BaseURL: server.URL}

		out, err := c.GetAssets(context.Background())
		require.NoError(t, err)
		require.Empty(t, out.Assets)
	})

	t.Run("server error", func(t *testing.T) {
		server, _ := newTestServer(t, http.StatusInternalServerError, `{"error": "boom"}`)
		c := Client{HttpClient: server.Client(), BaseURL: server.URL}

		out, err := c.GetAssets(context.Background())
		require.Nil(t, out)

		var statusErr etl_errors.ErrUnexpectedStatus
		require.True(t, errors.As(err, &statusErr))
		require.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
		require.Equal(t, `{"error": "boom"}`, statusErr.Body)
	})

	t.Run("non 200 success codes are failures too", func(t *testing.T) {
		server, _ := newTestServer(t, http.StatusNoContent, "")
		c := Client{HttpClient: server.Client(), BaseURL: server.URL}

		_, err := c.GetAssets(context.Background())
		require.EqualError(t, err, "unexpected api status 204")
	})

	t.Run("long error bodies are truncated", func(t *testing.T) {
		server, _ := newTestServer(t, http.StatusBadGateway, strings.Repeat("x", 2000))
		c := Client{HttpClient: server.Client(), BaseURL: server.URL}

		_, err := c.GetAssets(context.Background())
		var statusErr etl_errors.ErrUnexpectedStatus
		require.True(t, errors.As(err, &statusErr))
		require.Len(t, statusErr.Body, maxErrorBody)
	})

	t.Run("invalid json", func(t *testing.T) {
		server, _ := newTestServer(t, http.StatusOK, `{"data": [`)
		c := Client{HttpClient: server.Client(), BaseURL: server.URL}

		_, err := c.GetAssets(context.Background())
		require.ErrorContains(t, err, "failed to decode coincap response")
	})
}
