package response

import (
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money renders as a bare JSON number with exactly two decimals.
type Money decimal.Decimal

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*m = Money(d)
	return nil
}

func NewMoney(d decimal.Decimal) Money {
	return Money(d)
}

func optionalMoney(d *decimal.Decimal) *Money {
	if d == nil {
		return nil
	}
	m := Money(*d)
	return &m
}

var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: Money{},
			Fn: func(src any) (any, error) {
				return Money(src.(decimal.Decimal)), nil
			},
		},
		{
			SrcType: &decimal.Decimal{},
			DstType: &Money{},
			Fn: func(src any) (any, error) {
				return optionalMoney(src.(*decimal.Decimal)), nil
			},
		},
	},
}

func copyView(dst, src any) error {
	return copier.CopyWithOption(dst, src, copyOption)
}
