package request

import "encoding/json"

type SaveCartRequest struct {
	Email string            `json:"email"`
	Cart  []json.RawMessage `json:"cart"`
}
