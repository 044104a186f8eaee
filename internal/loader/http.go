package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/coffeetab/coffeetab/internal/domain"
	"github.com/coffeetab/coffeetab/pkg/clients"
	"go.uber.org/zap"
)

// HTTPLoader fetches the three input datasets from an HTTP source, one
// endpoint per dataset: <base>/payments, <base>/products, <base>/orders.
// Each endpoint serves the same JSON array shape the file loader reads.
type HTTPLoader struct {
	baseURL string
	client  clients.HTTPClientI
}

func NewHTTP(baseURL string, client clients.HTTPClientI) *HTTPLoader {
	return &HTTPLoader{
		baseURL: baseURL,
		client:  client,
	}
}

func (l *HTTPLoader) Payments(ctx context.Context) ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := l.fetch(ctx, "/payments", &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (l *HTTPLoader) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := l.fetch(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (l *HTTPLoader) Orders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := l.fetch(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (l *HTTPLoader) fetch(ctx context.Context, path string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	url := l.baseURL + path
	statusCode, body, err := l.client.Get(url, nil)
	if err != nil {
		return fmt.Errorf("can't fetch %s: %w", url, err)
	}

	switch statusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrSourceMissing, url)
	default:
		return fmt.Errorf("unexpected status %d fetching %s", statusCode, url)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		zap.L().Error("can't decode input source", zap.String("url", url), zap.Error(err))
		return fmt.Errorf("%w: %s", ErrMalformedSource, url)
	}

	return nil
}
