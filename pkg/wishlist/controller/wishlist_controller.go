package controller

import "github.com/labstack/echo/v4"

type WishlistController interface {
	Check(c echo.Context) error
	Toggle(c echo.Context) error
}
