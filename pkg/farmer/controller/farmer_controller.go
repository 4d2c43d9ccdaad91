package controller

import "github.com/labstack/echo/v4"

type FarmerController interface {
	Contact(c echo.Context) error
	Dashboard(c echo.Context) error
}
