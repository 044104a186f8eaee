package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/coffeetab/coffeetab/internal/domain"
	"github.com/coffeetab/coffeetab/internal/loader"
	"github.com/coffeetab/coffeetab/internal/service/pricingservice"
	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
	ldr *MockLoader
	out *bytes.Buffer
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ldr = NewMockLoader(ctrl)
	s.out = &bytes.Buffer{}
	s.app = New()
	s.app.ldr = s.ldr
	s.app.out = s.out
}

func (s *ApplicationSuite) TestRun_FullPipeline() {
	ctx := context.Background()
	s.ldr.EXPECT().Payments(ctx).Return([]domain.Payment{
		{User: "a", Amount: 3},
	}, nil)
	s.ldr.EXPECT().Products(ctx).Return([]domain.Product{
		{DrinkName: "latte", Prices: map[string]float64{"small": 3.5, "medium": 4.0}},
	}, nil)
	s.ldr.EXPECT().Orders(ctx).Return([]domain.Order{
		{User: "a", Drink: "latte", Size: "medium"},
	}, nil)

	err := s.app.run(ctx)

	s.Require().NoError(err)
	s.Equal("a has paid  : 300\na owes : 100\n", s.out.String())
}

func (s *ApplicationSuite) TestRun_OrderOnlyAndOverpaidUsers() {
	ctx := context.Background()
	s.ldr.EXPECT().Payments(ctx).Return([]domain.Payment{
		{User: "rich", Amount: 10},
	}, nil)
	s.ldr.EXPECT().Products(ctx).Return([]domain.Product{
		{DrinkName: "latte", Prices: map[string]float64{"medium": 4.0}},
	}, nil)
	s.ldr.EXPECT().Orders(ctx).Return([]domain.Order{
		{User: "rich", Drink: "latte", Size: "medium"},
		{User: "broke", Drink: "latte", Size: "medium"},
	}, nil)

	err := s.app.run(ctx)

	s.Require().NoError(err)
	s.Equal("rich has paid  : 1000\nbroke has paid  : 0\nrich owes : 0\nbroke owes : 400\n", s.out.String())
}

func (s *ApplicationSuite) TestRun_LoadFailureHaltsBeforeFolding() {
	ctx := context.Background()
	s.ldr.EXPECT().Payments(ctx).Return(nil, loader.ErrSourceMissing)

	err := s.app.run(ctx)

	s.Require().Error(err)
	s.ErrorIs(err, loader.ErrSourceMissing)
	s.Empty(s.out.String())
}

func (s *ApplicationSuite) TestRun_ProductsLoadFailure() {
	ctx := context.Background()
	s.ldr.EXPECT().Payments(ctx).Return([]domain.Payment{{User: "a", Amount: 3}}, nil)
	s.ldr.EXPECT().Products(ctx).Return(nil, errors.New("read error"))

	err := s.app.run(ctx)

	s.Require().Error(err)
	s.Contains(err.Error(), "can't load products")
	s.Empty(s.out.String())
}

func (s *ApplicationSuite) TestRun_UnresolvableOrderProducesNoReport() {
	ctx := context.Background()
	s.ldr.EXPECT().Payments(ctx).Return([]domain.Payment{
		{User: "a", Amount: 3},
	}, nil)
	s.ldr.EXPECT().Products(ctx).Return([]domain.Product{
		{DrinkName: "latte", Prices: map[string]float64{"small": 3.5, "medium": 4.0}},
	}, nil)
	s.ldr.EXPECT().Orders(ctx).Return([]domain.Order{
		{User: "a", Drink: "latte", Size: "large"},
	}, nil)

	err := s.app.run(ctx)

	s.Require().Error(err)
	s.ErrorIs(err, pricingservice.ErrUnknownSize)
	s.Empty(s.out.String())
}
