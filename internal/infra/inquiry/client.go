package inquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"repair-storefront/internal/domain/quote"
	"repair-storefront/internal/infra"
	"repair-storefront/internal/pkg/config"
)

// Submission is the booking inquiry wire object. Field names are part of the
// upstream contract and must not change without coordinating with the
// receiving service.
type Submission struct {
	Name                string            `json:"name"`
	MobileNumber        string            `json:"mobileNumber"`
	DeviceModel         string            `json:"deviceModel"`
	SelectedServices    []quote.QuoteLine `json:"selectedServices"`
	TotalEstimatedPrice int64             `json:"totalEstimatedPrice"`
}

type Result struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference,omitempty"`
	Message   string `json:"message,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.InquiryConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// CreateInquiry posts the submission to the booking upstream. A transport
// failure, a timeout, and an explicit success:false response are distinct
// outcomes; callers map all three to recoverable user-facing state.
func (c *Client) CreateInquiry(ctx context.Context, sub Submission) (Result, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return Result{}, infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "encode inquiry", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/inquiries", bytes.NewReader(body))
	if err != nil {
		return Result{}, infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "build inquiry request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{}, infra.WrapGatewayErr(c.logger, infra.KindTimeout, "inquiry request timed out", err)
		}
		return Result{}, infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "inquiry service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, infra.WrapGatewayErr(c.logger, infra.KindBadResponse,
			fmt.Sprintf("inquiry service returned status %d", resp.StatusCode), nil)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "decode inquiry response", err)
	}

	if !result.Success {
		return result, infra.WrapGatewayErr(c.logger, infra.KindRejected, "inquiry rejected by upstream", nil)
	}
	return result, nil
}
