package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/coffeetab/coffeetab/internal/domain"
	"go.uber.org/zap"
)

var (
	ErrSourceMissing   = errors.New("input source missing")
	ErrMalformedSource = errors.New("input source malformed")
)

// FileLoader reads the three input datasets from JSON files, each an array
// of records.
type FileLoader struct {
	paymentsPath string
	productsPath string
	ordersPath   string
}

func New(paymentsPath, productsPath, ordersPath string) *FileLoader {
	return &FileLoader{
		paymentsPath: paymentsPath,
		productsPath: productsPath,
		ordersPath:   ordersPath,
	}
}

func (l *FileLoader) Payments(ctx context.Context) ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := l.read(ctx, l.paymentsPath, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (l *FileLoader) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := l.read(ctx, l.productsPath, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (l *FileLoader) Orders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := l.read(ctx, l.ordersPath, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (l *FileLoader) read(ctx context.Context, path string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return fmt.Errorf("can't read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		zap.L().Error("can't decode input source", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %s", ErrMalformedSource, path)
	}

	return nil
}
