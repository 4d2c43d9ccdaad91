package controller

import "github.com/labstack/echo/v4"

type BookingController interface {
	Create(c echo.Context) error
	UpdateStatus(c echo.Context) error
	List(c echo.Context) error
}
