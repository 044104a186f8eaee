package service

import (
	"github.com/coffeetab/coffeetab/internal/service/ledgerservice"
	"github.com/coffeetab/coffeetab/internal/service/pricingservice"
)

type Services struct {
	PricingService *pricingservice.Service
	LedgerService  *ledgerservice.Service
}

func New() *Services {
	pricingService := pricingservice.New()
	ledgerService := ledgerservice.New(pricingService)

	return &Services{
		PricingService: pricingService,
		LedgerService:  ledgerService,
	}
}
