package pricingservice

import (
	"errors"
	"fmt"

	"github.com/coffeetab/coffeetab/internal/domain"
	"github.com/coffeetab/coffeetab/pkg/money"
	"go.uber.org/zap"
)

var (
	ErrUnknownProduct = errors.New("unknown product")
	ErrUnknownSize    = errors.New("unknown size for product")
)

// Service owns the price table: drink name -> size label -> price in cents.
type Service struct {
	prices map[string]map[string]int64
}

func New() *Service {
	return &Service{
		prices: make(map[string]map[string]int64),
	}
}

// RecordProduct folds one product definition into the price table. Only the
// labels in domain.SizeLabels are kept; anything else in sizePrices is
// dropped on purpose, not reported. A product whose prices carry no
// recognized label still gets an entry, just an empty one.
func (s *Service) RecordProduct(name string, sizePrices map[string]float64) {
	entry := make(map[string]int64)
	for _, size := range domain.SizeLabels {
		if units, ok := sizePrices[size]; ok {
			entry[size] = money.ToCents(units)
		}
	}
	s.prices[name] = entry
}

// PriceFor resolves the cents price of a drink at a size. A miss on either
// key is a data-integrity error for the caller, never a default price.
func (s *Service) PriceFor(drink, size string) (int64, error) {
	entry, ok := s.prices[drink]
	if !ok {
		zap.L().Error("unknown product in lookup", zap.String("drink", drink))
		return 0, fmt.Errorf("%w: %s", ErrUnknownProduct, drink)
	}
	price, ok := entry[size]
	if !ok {
		zap.L().Error("unknown size in lookup", zap.String("drink", drink), zap.String("size", size))
		return 0, fmt.Errorf("%w: %s/%s", ErrUnknownSize, drink, size)
	}
	return price, nil
}
