package quote

import "errors"

var (
	ErrNegativePrice = errors.New("service price cannot be negative")
	ErrEmptyID       = errors.New("service id cannot be empty")
)

// Cart is the per-visit selection of repair services for one device.
// Membership is keyed by service id, insertion order is preserved, and the
// running total is maintained incrementally so it never drifts from the
// member set.
type Cart struct {
	items []ServiceItem
	index map[string]int
	total int64
}

func NewCart() *Cart {
	return &Cart{
		index: make(map[string]int),
	}
}

// Toggle adds the service when absent and removes it when present. Toggling
// the same service twice restores the prior state.
func (c *Cart) Toggle(item ServiceItem) error {
	if item.ID == "" {
		return ErrEmptyID
	}
	if item.Price < 0 {
		return ErrNegativePrice
	}

	if pos, ok := c.index[item.ID]; ok {
		removed := c.items[pos]
		c.items = append(c.items[:pos], c.items[pos+1:]...)
		delete(c.index, item.ID)
		for id, p := range c.index {
			if p > pos {
				c.index[id] = p - 1
			}
		}
		c.total -= removed.Price
		return nil
	}

	c.index[item.ID] = len(c.items)
	c.items = append(c.items, item)
	c.total += item.Price
	return nil
}

func (c *Cart) IsSelected(id string) bool {
	_, ok := c.index[id]
	return ok
}

func (c *Cart) Clear() {
	c.items = nil
	c.index = make(map[string]int)
	c.total = 0
}

func (c *Cart) Total() int64 {
	return c.total
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns the selection in insertion order. The slice is a copy; the
// caller cannot mutate cart state through it.
func (c *Cart) Items() []ServiceItem {
	out := make([]ServiceItem, len(c.items))
	copy(out, c.items)
	return out
}

// BuildQuotePayload snapshots the current selection for hand-off to the
// booking flow. The cart itself is left untouched; an empty selection yields
// an empty line list with a zero total, which is a valid payload.
func (c *Cart) BuildQuotePayload(deviceModel string) QuotePayload {
	if deviceModel == "" {
		deviceModel = DefaultDeviceModel
	}

	lines := make([]QuoteLine, 0, len(c.items))
	for _, item := range c.items {
		lines = append(lines, QuoteLine{
			Name:  item.Title,
			Price: item.Price,
		})
	}

	return QuotePayload{
		DeviceModel:         deviceModel,
		SelectedServices:    lines,
		TotalEstimatedPrice: c.total,
	}
}
