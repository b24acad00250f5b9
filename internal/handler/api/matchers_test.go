//go:build unit

package api_test

import (
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type decimalMatcher struct{ want decimal.Decimal }

// decimalEq compares by value so 300 and 300.00 match.
func decimalEq(want decimal.Decimal) gomock.Matcher { return decimalMatcher{want} }

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string { return "is decimal " + m.want.String() }
