package coincap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	etl_errors "cryptoetl/internal"
	"cryptoetl/internal/domain"
)

// bodies of failed responses are cut to this many bytes in errors
const maxErrorBody = 512

type Client struct {
	HttpClient *http.Client
	BaseURL    string
	ApiKey     string
}

type AssetsResponse struct {
	Assets []domain.Asset
	// Raw is the body as received, kept for archiving
	Raw []byte
}

type assetsEnvelope struct {
	Data []domain.Asset `json:"data"`
}

// GetAssets performs a single authenticated GET against BaseURL. Anything
// other than a 200 is returned as ErrUnexpectedStatus.
func (c Client) GetAssets(ctx context.Context) (*AssetsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build coincap request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.ApiKey)
	req.Header.Set("Accept", "application/json")

	httpClient := c.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	response, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coincap request failed: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read coincap response: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		body := responseBytes
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, etl_errors.ErrUnexpectedStatus{
			StatusCode: response.StatusCode,
			Body:       string(bytes.TrimSpace(body)),
		}
	}

	assets, err := decodeAssets(responseBytes)
	if err != nil {
		return nil, err
	}

	return &AssetsResponse{
		Assets: assets,
		Raw:    responseBytes,
	}, nil
}

func decodeAssets(body []byte) ([]domain.Asset, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	// keep numbers exact until they are parsed as decimals
	decoder.UseNumber()

	var envelope assetsEnvelope
	if err := decoder.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode coincap response: %w", err)
	}
	if envelope.Data == nil {
		return []domain.Asset{}, nil
	}
	return envelope.Data, nil
}
