package quote

// DefaultDeviceModel is the placeholder used when a quote is built without a
// known device name.
const DefaultDeviceModel = "Unknown Device"

// ServiceItem is a read-only snapshot of a catalog repair service. Prices are
// whole rupees; the catalog accessor guarantees they are non-negative before
// an item reaches the domain.
type ServiceItem struct {
	ID            string
	Title         string
	Price         int64
	OriginalPrice *int64
	DiscountLabel *string
	Description   *string
	IsActive      bool
}

// QuoteLine is one service in the submission contract. The upstream inquiry
// schema uses "name" where the catalog uses "title"; the rename happens here
// and nowhere else.
type QuoteLine struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// QuotePayload is an immutable snapshot of a selection, built at hand-off
// time. TotalEstimatedPrice always equals the sum of the line prices.
type QuotePayload struct {
	DeviceModel         string      `json:"deviceModel"`
	SelectedServices    []QuoteLine `json:"selectedServices"`
	TotalEstimatedPrice int64       `json:"totalEstimatedPrice"`
}
