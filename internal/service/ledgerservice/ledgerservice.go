package ledgerservice

import (
	"github.com/coffeetab/coffeetab/pkg/money"
	"go.uber.org/zap"
)

// PriceSource resolves a drink and size to a price in cents.
type PriceSource interface {
	PriceFor(drink, size string) (int64, error)
}

// Service accumulates per-user paid and owed totals in cents. Users are
// tracked in first-seen order across payments and orders; both totals only
// ever grow.
type Service struct {
	priceSource PriceSource

	users []string
	seen  map[string]struct{}
	paid  map[string]int64
	owed  map[string]int64
}

func New(priceSource PriceSource) *Service {
	return &Service{
		priceSource: priceSource,
		seen:        make(map[string]struct{}),
		paid:        make(map[string]int64),
		owed:        make(map[string]int64),
	}
}

func (s *Service) registerUser(user string) {
	if _, ok := s.seen[user]; ok {
		return
	}
	s.seen[user] = struct{}{}
	s.users = append(s.users, user)
}

// RecordPayment folds one payment into the user's paid total. The amount is
// in whole currency units and is converted to cents by truncation.
func (s *Service) RecordPayment(user string, amountUnits float64) {
	s.registerUser(user)
	s.paid[user] += money.ToCents(amountUnits)
}

// RecordOrder folds one order into the user's owed total. An order that does
// not resolve against the price table would corrupt the ledger, so the
// lookup error propagates instead of being swallowed.
func (s *Service) RecordOrder(user, drink, size string) error {
	s.registerUser(user)

	price, err := s.priceSource.PriceFor(drink, size)
	if err != nil {
		zap.L().Error("can't resolve order price",
			zap.String("user", user),
			zap.String("drink", drink),
			zap.String("size", size),
			zap.Error(err),
		)
		return err
	}

	s.owed[user] += price
	return nil
}

// Users returns all known users in first-seen order.
func (s *Service) Users() []string {
	return s.users
}

// PaidTotal returns the user's paid total in cents, zero for a user who
// never paid.
func (s *Service) PaidTotal(user string) int64 {
	return s.paid[user]
}

// Outstanding returns owed minus paid, floored at zero. Overpayment is not
// tracked as credit.
func (s *Service) Outstanding(user string) int64 {
	owing := s.owed[user] - s.paid[user]
	if owing < 0 {
		owing = 0
	}
	return owing
}
