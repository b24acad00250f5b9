package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidKind            = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountAmount  = errors.New("discount value cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidMinOrderValue   = errors.New("minimum order value cannot be negative")
	ErrInvalidMaxDiscount     = errors.New("maximum discount cannot be negative")
	ErrInvalidUsageLimit      = errors.New("usage limit cannot be negative")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9_-]{0,49}$`)

type Code string

// NormalizeCode applies the case-insensitive lookup rule without validating
// the format; unknown shapes simply fail to match a stored coupon.
func NormalizeCode(raw string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(raw)))
}

func NewCouponCode(raw string) (Code, error) {
	code := NormalizeCode(raw)
	if !couponCodeRegex.MatchString(string(code)) {
		return Code(""), ErrInvalidCouponCode
	}
	return code, nil
}

func (c Code) String() string {
	return string(c)
}

type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

func NewKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

func (k Kind) IsValid() bool {
	switch k {
	case KindPercentage, KindFixed:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

// Reason identifies the first failed check of an evaluation.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonInvalidCode       Reason = "invalid_code"
	ReasonInactive          Reason = "inactive"
	ReasonExpired           Reason = "expired"
	ReasonUsageLimitReached Reason = "usage_limit_reached"
	ReasonBelowMinimum      Reason = "below_minimum"
)
