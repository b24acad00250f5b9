package order

import (
	"crypto/rand"
	"fmt"
	"io"
	"regexp"
	"time"
)

const (
	numberSuffixLen = 9
	numberAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// largest multiple of len(numberAlphabet) that fits in a byte
	numberByteCutoff = 252
)

var numberPattern = regexp.MustCompile(`^ORD-\d{13}-[A-Z0-9]{9}$`)

// Number is the customer-facing order identifier, ORD-<unix millis>-<suffix>.
type Number string

func (n Number) String() string {
	return string(n)
}

func (n Number) IsWellFormed() bool {
	return numberPattern.MatchString(string(n))
}

type NumberGenerator interface {
	Next(now time.Time) (Number, error)
}

type RandomNumberGenerator struct {
	rand io.Reader
}

func NewNumberGenerator() *RandomNumberGenerator {
	return &RandomNumberGenerator{rand: rand.Reader}
}

func NewNumberGeneratorFrom(r io.Reader) *RandomNumberGenerator {
	return &RandomNumberGenerator{rand: r}
}

func (g *RandomNumberGenerator) Next(now time.Time) (Number, error) {
	suffix := make([]byte, 0, numberSuffixLen)
	buf := make([]byte, 16)
	for len(suffix) < numberSuffixLen {
		if _, err := io.ReadFull(g.rand, buf); err != nil {
			return "", fmt.Errorf("read order number entropy: %w", err)
		}
		for _, b := range buf {
			if b >= numberByteCutoff {
				continue
			}
			suffix = append(suffix, numberAlphabet[int(b)%len(numberAlphabet)])
			if len(suffix) == numberSuffixLen {
				break
			}
		}
	}
	return Number(fmt.Sprintf("ORD-%013d-%s", now.UnixMilli(), suffix)), nil
}
