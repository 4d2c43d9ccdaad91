package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrilink/pkg/catalog"
)

type CatalogCtrl struct{ cat *catalog.Catalog }

func New(cat *catalog.Catalog) *CatalogCtrl { return &CatalogCtrl{cat: cat} }

func (h *CatalogCtrl) Crops(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"crops": h.cat.Crops})
}

func (h *CatalogCtrl) Equipment(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"equipment": h.cat.Equipment})
}
