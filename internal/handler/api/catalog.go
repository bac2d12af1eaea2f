package api

import (
	"net/http"

	"repair-storefront/internal/handler/middleware"
	"repair-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List brands
// @Description List repair brands; degrades to an empty list when the catalog is down
// @Tags catalog
// @Produce json
// @Success 200 {object} queries.BrandListView
// @Router /catalog/brands [get]
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	view := h.catalogQueries.Brands(c.Request.Context())
	c.JSON(http.StatusOK, view)
}

// @Summary List devices for a brand
// @Tags catalog
// @Produce json
// @Param brandId path string true "Brand ID"
// @Success 200 {object} queries.DeviceListView
// @Router /catalog/brands/{brandId}/devices [get]
func (h *CatalogHandler) ListDevices(c *gin.Context) {
	view := h.catalogQueries.Devices(c.Request.Context(), c.Param("brandId"))
	c.JSON(http.StatusOK, view)
}

// @Summary List repair services for a device
// @Description Services carry the caller's current selection state
// @Tags catalog
// @Produce json
// @Param deviceId path string true "Device ID"
// @Success 200 {object} queries.ServiceListView
// @Router /catalog/devices/{deviceId}/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	view := h.catalogQueries.Services(c.Request.Context(), c.Param("deviceId"), sess)
	c.JSON(http.StatusOK, view)
}
