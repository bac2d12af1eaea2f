//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"repair-storefront/internal/domain/modal"
	"repair-storefront/internal/domain/session"
	"repair-storefront/internal/handler/api"
	"repair-storefront/internal/handler/middleware"
	"repair-storefront/internal/pkg/errs"
	"repair-storefront/internal/usecase/queries"
	"repair-storefront/tests/common/httptest"
	"repair-storefront/tests/common/testutil"
	commandsmock "repair-storefront/tests/mock/commands"
	queriesmock "repair-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockQuoteCommands
	mockQuoteQueries *queriesmock.MockQuoteQueries
	mockModalQueries *queriesmock.MockModalQueries
	handler          *api.QuoteHandler
	sess             *session.Session
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQuoteCommands(s.mockCtrl)
	s.mockQuoteQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.mockModalQueries = queriesmock.NewMockModalQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockCommands, s.mockQuoteQueries, s.mockModalQueries)

	s.sess = session.New(uuid.New(), time.Now())
	bindSession := func(c *gin.Context) {
		middleware.SetSessionForTest(c, s.sess)
	}

	s.router.GET("/quote", bindSession, s.handler.GetSelection)
	s.router.POST("/quote/toggle", bindSession, s.handler.ToggleService)
	s.router.POST("/quote/clear", bindSession, s.handler.ClearSelection)
	s.router.POST("/quote/request", bindSession, s.handler.RequestQuote)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func (s *QuoteHandlerTestSuite) TestToggleService() {
	url := "/quote/toggle"

	reqBody := map[string]any{
		"device_id":    "dev-1",
		"device_model": "iPhone 13",
		"service_id":   "svc-battery",
	}
	selection := queries.SelectionView{
		Items: []queries.SelectionItemView{
			{ID: "svc-battery", Title: "Battery Replacement", Price: 7990, FormattedPrice: "₹7,990"},
		},
		Total:          7990,
		FormattedTotal: "₹7,990",
		Count:          1,
	}

	s.Run("success: returns the updated selection", func() {
		s.mockCommands.EXPECT().
			ToggleService(gomock.Any(), s.sess, "dev-1", "iPhone 13", "svc-battery").
			Return(nil).Times(1)
		s.mockQuoteQueries.EXPECT().Selection(s.sess).Return(selection).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response queries.SelectionView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(7990), response.Total)
		s.Equal("₹7,990", response.FormattedTotal)
		s.Equal(1, response.Count)
	})

	s.Run("error: 404 when the service is not in the catalog", func() {
		s.mockCommands.EXPECT().
			ToggleService(gomock.Any(), s.sess, "dev-1", "iPhone 13", "svc-battery").
			Return(errs.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 503 when the catalog is unreachable", func() {
		s.mockCommands.EXPECT().
			ToggleService(gomock.Any(), s.sess, "dev-1", "iPhone 13", "svc-battery").
			Return(errs.ErrCatalogDegraded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "unavailable")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: device_id (required)", mutate: testutil.Field("device_id", nil)},
			{name: "missing field: service_id (required)", mutate: testutil.Field("service_id", nil)},
			{name: "empty device_id", mutate: testutil.Field("device_id", "")},
			{name: "empty service_id", mutate: testutil.Field("service_id", "")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *QuoteHandlerTestSuite) TestGetSelection() {
	s.Run("success: empty selection renders zero totals", func() {
		s.mockQuoteQueries.EXPECT().Selection(s.sess).Return(queries.SelectionView{
			Items:          []queries.SelectionItemView{},
			FormattedTotal: "₹0",
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quote", nil)

		var response queries.SelectionView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Zero(response.Total)
		s.Empty(response.Items)
	})
}

func (s *QuoteHandlerTestSuite) TestClearSelection() {
	s.Run("success: clears and returns the empty selection", func() {
		s.mockCommands.EXPECT().ClearSelection(s.sess).Times(1)
		s.mockQuoteQueries.EXPECT().Selection(s.sess).Return(queries.SelectionView{
			Items:          []queries.SelectionItemView{},
			FormattedTotal: "₹0",
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quote/clear", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *QuoteHandlerTestSuite) TestRequestQuote() {
	url := "/quote/request"
	reqBody := map[string]any{"device_model": "iPhone 13"}

	s.Run("success: opens the booking modal and returns it", func() {
		s.mockCommands.EXPECT().
			RequestQuote(s.sess, "iPhone 13").
			Return(modal.State{Kind: modal.KindBooking}, nil).Times(1)
		s.mockModalQueries.EXPECT().Active(s.sess).Return(queries.ModalView{
			Open:      true,
			Kind:      string(modal.KindBooking),
			Component: "BookingModal",
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response queries.ModalView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Open)
		s.Equal("booking", response.Kind)
	})

	s.Run("success: unauthenticated callers get the login modal", func() {
		s.mockCommands.EXPECT().
			RequestQuote(s.sess, "iPhone 13").
			Return(modal.State{Kind: modal.KindLogin}, nil).Times(1)
		s.mockModalQueries.EXPECT().Active(s.sess).Return(queries.ModalView{
			Open:      true,
			Kind:      string(modal.KindLogin),
			Component: "LoginModal",
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response queries.ModalView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("login", response.Kind)
	})
}
