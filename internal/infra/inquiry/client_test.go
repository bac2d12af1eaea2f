//go:build unit

package inquiry_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"repair-storefront/internal/domain/quote"
	"repair-storefront/internal/infra"
	"repair-storefront/internal/infra/inquiry"
	"repair-storefront/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, baseURL string, timeout time.Duration) *inquiry.Client {
	t.Helper()
	return inquiry.NewClient(config.InquiryConfig{
		BaseURL: baseURL,
		Timeout: timeout,
	}, slog.Default())
}

func submission() inquiry.Submission {
	return inquiry.Submission{
		Name:         "Asha Rao",
		MobileNumber: "9876543210",
		DeviceModel:  "iPhone 16",
		SelectedServices: []quote.QuoteLine{
			{Name: "Battery Issue", Price: 7990},
			{Name: "Charging Issue", Price: 7600},
		},
		TotalEstimatedPrice: 15590,
	}
}

func TestCreateInquiry(t *testing.T) {
	t.Run("success: posts the wire payload and returns the reference", func(t *testing.T) {
		var received map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/inquiries", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			_, _ = w.Write([]byte(`{"success": true, "reference": "INQ-77"}`))
		}))
		defer srv.Close()

		result, err := newClient(t, srv.URL, time.Second).CreateInquiry(context.Background(), submission())
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "INQ-77", result.Reference)

		// Field names are the upstream contract.
		assert.Equal(t, "Asha Rao", received["name"])
		assert.Equal(t, "9876543210", received["mobileNumber"])
		assert.Equal(t, "iPhone 16", received["deviceModel"])
		assert.Equal(t, float64(15590), received["totalEstimatedPrice"])
		services, ok := received["selectedServices"].([]any)
		require.True(t, ok)
		require.Len(t, services, 2)
		first, ok := services[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Battery Issue", first["name"])
		assert.Equal(t, float64(7990), first["price"])
	})

	t.Run("success false classifies as rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success": false, "message": "duplicate inquiry"}`))
		}))
		defer srv.Close()

		result, err := newClient(t, srv.URL, time.Second).CreateInquiry(context.Background(), submission())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindRejected))
		assert.Equal(t, "duplicate inquiry", result.Message)
	})

	t.Run("non-2xx classifies as bad response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := newClient(t, srv.URL, time.Second).CreateInquiry(context.Background(), submission())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindBadResponse))
	})

	t.Run("slow upstream classifies as timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		_, err := newClient(t, srv.URL, 20*time.Millisecond).CreateInquiry(context.Background(), submission())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindTimeout))
	})

	t.Run("dead upstream classifies as unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		_, err := newClient(t, srv.URL, time.Second).CreateInquiry(context.Background(), submission())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnavailable))
	})
}
