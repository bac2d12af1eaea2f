package components

import (
	"log/slog"

	"repair-storefront/internal/infra/catalog"
	"repair-storefront/internal/infra/inquiry"
	"repair-storefront/internal/pkg/config"
	"repair-storefront/internal/usecase/commands"
	"repair-storefront/internal/usecase/queries"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewCatalogGateway,
			fx.As(new(commands.CatalogGateway)),
		),
		fx.Annotate(
			NewCatalogGateway,
			fx.As(new(queries.CatalogSource)),
		),
		fx.Annotate(
			NewInquiryGateway,
			fx.As(new(commands.InquiryGateway)),
		),
	),
)

func NewCatalogGateway(cfg config.Config, rdb *redis.Client, logger *slog.Logger) *catalog.CachedGateway {
	client := catalog.NewClient(cfg.Catalog, logger)
	return catalog.NewCachedGateway(client, rdb, cfg.Catalog.CacheTTL, logger)
}

func NewInquiryGateway(cfg config.Config, logger *slog.Logger) *inquiry.Client {
	return inquiry.NewClient(cfg.Inquiry, logger)
}
