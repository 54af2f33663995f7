package cart

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/logic"
)

// ErrMalformed wraps every reason a stored cart could not be decoded.
var ErrMalformed = errors.New("malformed cart data")

// record is the stored shape of one line: a flat JSON object, price as a JSON number.
type record struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    json.RawMessage `json:"price"`
	ImageURL string          `json:"image_url"`
	Quantity int             `json:"quantity"`
}

// Encode serializes items as a JSON array with no envelope or version tag.
func Encode(items []logic.CartItem) ([]byte, error) {
	records := make([]record, len(items))
	for i, item := range items {
		records[i] = record{
			ID:       item.ID,
			Name:     item.Name,
			Price:    json.RawMessage(item.Price.String()),
			ImageURL: item.ImageURL,
			Quantity: item.Quantity,
		}
	}
	return json.Marshal(records)
}

// Decode parses data written by Encode. Anything that is not a well-formed array of
// valid lines is reported as ErrMalformed.
func Decode(data []byte) ([]logic.CartItem, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	items := make([]logic.CartItem, len(records))
	for i, r := range records {
		price, err := decodePrice(r.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: item %q price: %v", ErrMalformed, r.ID, err)
		}
		items[i] = logic.CartItem{
			Product: logic.Product{
				ID:       r.ID,
				Name:     r.Name,
				Price:    price,
				ImageURL: r.ImageURL,
			},
			Quantity: r.Quantity,
		}
	}
	if err := logic.Validate(items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return items, nil
}

// decodePrice accepts only a bare JSON number; quoted strings, null and a missing field
// are rejected.
func decodePrice(raw json.RawMessage) (decimal.Decimal, error) {
	var n json.Number
	if len(raw) == 0 || raw[0] == '"' {
		return decimal.Decimal{}, errors.New("price must be a JSON number")
	}
	if err := json.Unmarshal(raw, &n); err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(n.String())
}
