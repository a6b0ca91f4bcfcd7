package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/secretswap/router/domain"
	"github.com/secretswap/router/domain/mvc"
	"github.com/secretswap/router/log"
	"github.com/secretswap/router/router/types"
)

// RouterHandler  represent the httphandler for the router
type RouterHandler struct {
	RUsecase mvc.RouterUsecase
	logger   log.Logger
}

const routerResource = "/router"

func formatRouterResource(resource string) string {
	return routerResource + resource
}

// NewRouterHandler will initialize the router/ resources endpoint
func NewRouterHandler(e *echo.Echo, us mvc.RouterUsecase, logger log.Logger) {
	handler := &RouterHandler{
		RUsecase: us,
		logger:   logger,
	}
	e.GET(formatRouterResource("/quote"), handler.GetQuote)
	e.GET(formatRouterResource("/routes"), handler.GetCandidatePaths)
}

// GetQuote returns the best quote it can compute for the given
// tokenIn, tokenOut and amountIn (display units).
func (a *RouterHandler) GetQuote(c echo.Context) error {
	ctx := c.Request().Context()

	tokenIn, tokenOut, err := getValidTokenPair(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	amountIn, err := osmomath.NewDecFromStr(c.QueryParam("amountIn"))
	if err != nil || !amountIn.IsPositive() {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: types.ErrAmountInNotValid.Error()})
	}

	quote, err := a.RUsecase.GetQuote(ctx, tokenIn, tokenOut, osmomath.BigDecFromDec(amountIn))
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, quote)
}

// GetCandidatePaths returns the enumerated candidate paths between the
// given tokens without simulating them.
func (a *RouterHandler) GetCandidatePaths(c echo.Context) error {
	ctx := c.Request().Context()

	tokenIn, tokenOut, err := getValidTokenPair(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	paths, err := a.RUsecase.GetCandidatePaths(ctx, tokenIn, tokenOut)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, paths)
}

func getValidTokenPair(c echo.Context) (tokenIn, tokenOut string, err error) {
	tokenIn = c.QueryParam("tokenIn")
	tokenOut = c.QueryParam("tokenOut")

	if tokenIn == "" {
		return "", "", types.ErrTokenInNotSpecified
	}
	if tokenOut == "" {
		return "", "", types.ErrTokenOutNotSpecified
	}
	if tokenIn == tokenOut {
		return "", "", types.ErrSameToken
	}

	return tokenIn, tokenOut, nil
}
