package commands

import (
	"context"

	"repair-storefront/internal/domain/quote"
	"repair-storefront/internal/infra/catalog"
	"repair-storefront/internal/infra/inquiry"
)

// CatalogGateway is the read-only catalog accessor. Both the plain client and
// the cached gateway satisfy it.
type CatalogGateway interface {
	Brands(ctx context.Context) ([]catalog.Brand, error)
	Devices(ctx context.Context, brandID string) ([]catalog.Device, error)
	Services(ctx context.Context, deviceID string) ([]quote.ServiceItem, error)
}

// InquiryGateway submits finalized booking inquiries to the upstream.
type InquiryGateway interface {
	CreateInquiry(ctx context.Context, sub inquiry.Submission) (inquiry.Result, error)
}
