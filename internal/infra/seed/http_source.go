package seed

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"orderpad/internal/domain/entity"
	"orderpad/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultFetchTimeout = 10 * time.Second

// httpSource fetches the seed catalog document over a plain GET request,
// the way the original UI fetched its products.json.
type httpSource struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPSource creates a SeedSource that retrieves the catalog document
// from a URL.
func NewHTTPSource(url string, timeout time.Duration, logger *slog.Logger) service.SeedSource {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	return &httpSource{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (s *httpSource) Fetch(ctx context.Context) ([]*entity.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build seed request")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch seed catalog")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("seed catalog fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read seed response")
	}

	products, err := decodeDocument(body)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Seed catalog fetched",
		slog.String("url", s.url),
		slog.Int("products", len(products)),
	)

	return products, nil
}

// decodeDocument converts the seed document into Product records. The
// document is a JSON array of product objects.
func decodeDocument(data []byte) ([]*entity.Product, error) {
	var products []*entity.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, errors.Wrap(err, "decode seed document")
	}

	return products, nil
}
