package controller

import "github.com/labstack/echo/v4"

type MessageController interface {
	Send(c echo.Context) error
	List(c echo.Context) error
	Conversations(c echo.Context) error
}
