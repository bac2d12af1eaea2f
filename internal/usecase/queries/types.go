package queries

// View types returned to the handler layer. Formatted fields are display
// strings (en-IN rupees); the raw integers stay alongside them so clients
// never parse money out of a formatted string.

type BrandView struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

type BrandListView struct {
	Brands   []BrandView `json:"brands"`
	Degraded bool        `json:"degraded"`
}

type DeviceView struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

type DeviceListView struct {
	Devices  []DeviceView `json:"devices"`
	Degraded bool         `json:"degraded"`
}

type ServiceView struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Price          int64   `json:"price"`
	FormattedPrice string  `json:"formattedPrice"`
	OriginalPrice  *int64  `json:"originalPrice,omitempty"`
	DiscountLabel  *string `json:"discountLabel,omitempty"`
	Description    *string `json:"description,omitempty"`
	Selected       bool    `json:"selected"`
}

type ServiceListView struct {
	Services []ServiceView `json:"services"`
	Degraded bool          `json:"degraded"`
}

type SelectionItemView struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Price          int64  `json:"price"`
	FormattedPrice string `json:"formattedPrice"`
}

type SelectionView struct {
	Items          []SelectionItemView `json:"items"`
	Total          int64               `json:"total"`
	FormattedTotal string              `json:"formattedTotal"`
	Count          int                 `json:"count"`
}

type ModalView struct {
	Open      bool   `json:"open"`
	Kind      string `json:"kind"`
	Component string `json:"component,omitempty"`
	Payload   any    `json:"payload,omitempty"`
}
