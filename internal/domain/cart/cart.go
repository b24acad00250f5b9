// Package cart holds the cart value shared by the durable store and the
// replicated cache. Items are opaque JSON values owned by the storefront UI.
package cart

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrOwnerRequired = errors.New("cart owner email is required")

type Items []json.RawMessage

// Owner is the normalized user key carts are stored under.
type Owner string

func NewOwner(email string) (Owner, error) {
	o := strings.ToLower(strings.TrimSpace(email))
	if o == "" {
		return "", ErrOwnerRequired
	}
	return Owner(o), nil
}

func (o Owner) String() string {
	return string(o)
}

// Empty returns a non-nil empty cart so it encodes as [] rather than null.
func Empty() Items {
	return Items{}
}

func (i Items) Encode() ([]byte, error) {
	if i == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(i)
}

func Decode(raw []byte) (Items, error) {
	var items Items
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		return Empty(), nil
	}
	return items, nil
}

// DecodeOrEmpty degrades blank or malformed stored data to an empty cart and
// reports whether the input was usable.
func DecodeOrEmpty(raw string) (Items, bool) {
	if strings.TrimSpace(raw) == "" {
		return Empty(), true
	}
	items, err := Decode([]byte(raw))
	if err != nil {
		return Empty(), false
	}
	return items, true
}
