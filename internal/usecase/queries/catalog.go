package queries

import (
	"context"
	"log/slog"

	"repair-storefront/internal/domain/quote"
	"repair-storefront/internal/domain/session"
	"repair-storefront/internal/infra"
	"repair-storefront/internal/infra/catalog"
	"repair-storefront/internal/pkg/currency"

	"github.com/jinzhu/copier"
)

// CatalogSource mirrors the commands-layer gateway interface; declared here
// so queries compile without importing commands.
type CatalogSource interface {
	Brands(ctx context.Context) ([]catalog.Brand, error)
	Devices(ctx context.Context, brandID string) ([]catalog.Device, error)
	Services(ctx context.Context, deviceID string) ([]quote.ServiceItem, error)
}

// CatalogQueries serves browse views. Catalog failures are non-fatal by
// policy: the view degrades to an empty list with a flag instead of an error,
// and the page renders its "no results" state.
type CatalogQueries interface {
	Brands(ctx context.Context) BrandListView
	Devices(ctx context.Context, brandID string) DeviceListView
	Services(ctx context.Context, deviceID string, sess *session.Session) ServiceListView
}

type catalogQueriesImpl struct {
	source CatalogSource
	logger *slog.Logger
}

func NewCatalogQueries(source CatalogSource, logger *slog.Logger) CatalogQueries {
	return &catalogQueriesImpl{
		source: source,
		logger: logger,
	}
}

func (q *catalogQueriesImpl) Brands(ctx context.Context) BrandListView {
	brands, err := q.source.Brands(ctx)
	if err != nil {
		return BrandListView{Brands: []BrandView{}, Degraded: q.degraded("brands", err)}
	}

	views := make([]BrandView, 0, len(brands))
	if err := copier.Copy(&views, &brands); err != nil {
		q.logger.Error("brand view mapping failed", "error", err)
		return BrandListView{Brands: []BrandView{}, Degraded: true}
	}
	return BrandListView{Brands: views}
}

func (q *catalogQueriesImpl) Devices(ctx context.Context, brandID string) DeviceListView {
	devices, err := q.source.Devices(ctx, brandID)
	if err != nil {
		return DeviceListView{Devices: []DeviceView{}, Degraded: q.degraded("devices", err)}
	}

	views := make([]DeviceView, 0, len(devices))
	if err := copier.Copy(&views, &devices); err != nil {
		q.logger.Error("device view mapping failed", "error", err)
		return DeviceListView{Devices: []DeviceView{}, Degraded: true}
	}
	return DeviceListView{Devices: views}
}

func (q *catalogQueriesImpl) Services(ctx context.Context, deviceID string, sess *session.Session) ServiceListView {
	items, err := q.source.Services(ctx, deviceID)
	if err != nil {
		return ServiceListView{Services: []ServiceView{}, Degraded: q.degraded("services", err)}
	}

	views := make([]ServiceView, 0, len(items))
	for _, item := range items {
		views = append(views, ServiceView{
			ID:             item.ID,
			Title:          item.Title,
			Price:          item.Price,
			FormattedPrice: currency.FormatINR(item.Price),
			OriginalPrice:  item.OriginalPrice,
			DiscountLabel:  item.DiscountLabel,
			Description:    item.Description,
			Selected:       sess != nil && sess.IsSelected(item.ID),
		})
	}
	return ServiceListView{Services: views}
}

// degraded classifies a gateway failure: an unknown id is an ordinary empty
// result, everything else flags the view as degraded.
func (q *catalogQueriesImpl) degraded(what string, err error) bool {
	if infra.IsKind(err, infra.KindNotFound) {
		return false
	}
	q.logger.Warn("catalog degraded, serving empty "+what, "error", err)
	return true
}
