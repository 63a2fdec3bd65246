package imagesearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/recruai/platform-api/internal/application/service"
	"github.com/recruai/platform-api/internal/config"
	"github.com/recruai/platform-api/pkg/logger"
)

const unsplashBaseURL = "https://api.unsplash.com"

// unsplashAdapter resolves keyword strings to one stock photo URL. With no
// API key configured every search is a miss, never an error.
type unsplashAdapter struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

func NewUnsplashAdapter(cfg config.Config, log logger.Logger) service.ImageSearch {
	return &unsplashAdapter{
		apiKey:  cfg.Unsplash.ApiKey,
		baseURL: unsplashBaseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		log: log,
	}
}

type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

func (a *unsplashAdapter) Search(ctx context.Context, keywords string) (string, error) {
	if a.apiKey == "" {
		return "", nil
	}

	params := url.Values{}
	params.Set("query", keywords)
	params.Set("per_page", "1")
	params.Set("order_by", "relevant")
	params.Set("client_id", a.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		a.baseURL+"/search/photos?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("cannot build unsplash request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("unsplash request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsplash returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("cannot decode unsplash response: %w", err)
	}

	if len(payload.Results) == 0 {
		return "", nil
	}
	return payload.Results[0].URLs.Regular, nil
}
