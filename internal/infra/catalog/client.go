package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"repair-storefront/internal/domain/quote"
	"repair-storefront/internal/infra"
	"repair-storefront/internal/pkg/config"
)

// Brand and Device are read-only snapshots from the upstream catalog API.
type Brand struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

type Device struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

// serviceRecord is the upstream wire shape for a repair service. Field names
// follow the catalog contract; "discount" is a display label, not a rate.
type serviceRecord struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Price         int64   `json:"price"`
	OriginalPrice *int64  `json:"originalPrice,omitempty"`
	Discount      *string `json:"discount,omitempty"`
	Description   *string `json:"description,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.CatalogConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

func (c *Client) Brands(ctx context.Context) ([]Brand, error) {
	var brands []Brand
	if err := c.get(ctx, "/catalog/brands", &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (c *Client) Devices(ctx context.Context, brandID string) ([]Device, error) {
	var devices []Device
	path := fmt.Sprintf("/catalog/brands/%s/devices", url.PathEscape(brandID))
	if err := c.get(ctx, path, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// Services fetches the repair services for a device and sanitizes them at the
// boundary: negative prices and inactive entries never reach the quote
// engine, whose total invariant assumes non-negative integers.
func (c *Client) Services(ctx context.Context, deviceID string) ([]quote.ServiceItem, error) {
	var records []serviceRecord
	path := fmt.Sprintf("/catalog/devices/%s/services", url.PathEscape(deviceID))
	if err := c.get(ctx, path, &records); err != nil {
		return nil, err
	}

	items := make([]quote.ServiceItem, 0, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			continue
		}
		if rec.Price < 0 {
			c.logger.Warn("dropping catalog service with negative price",
				"service_id", rec.ID, "price", rec.Price)
			continue
		}
		if rec.IsActive != nil && !*rec.IsActive {
			continue
		}
		items = append(items, quote.ServiceItem{
			ID:            rec.ID,
			Title:         rec.Title,
			Price:         rec.Price,
			OriginalPrice: rec.OriginalPrice,
			DiscountLabel: rec.Discount,
			Description:   rec.Description,
			IsActive:      true,
		})
	}
	return items, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "build catalog request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return infra.WrapGatewayErr(c.logger, infra.KindTimeout, "catalog request timed out", err)
		}
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "catalog unreachable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return infra.WrapGatewayErr(c.logger, infra.KindNotFound, "catalog entity not found", nil)
	case resp.StatusCode != http.StatusOK:
		return infra.WrapGatewayErr(c.logger, infra.KindBadResponse,
			fmt.Sprintf("catalog returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "decode catalog response", err)
	}
	return nil
}
