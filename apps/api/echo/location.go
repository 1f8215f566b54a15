package echoapi

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/eneo/core"
	"github.com/trezcool/eneo/core/location"
)

type locationAPI struct {
	svc location.Service
}

func registerLocationAPI(g *echo.Group, svc location.Service) {
	api := &locationAPI{svc: svc}

	lg := g.Group("/locations")
	lg.GET("", api.table)
	lg.GET("/provinces", api.provinces)
	lg.GET("/provinces/:province/districts", api.districts)
	lg.GET("/provinces/:province/districts/:district/sectors", api.sectors)
	lg.POST("/districts", api.districtsOfAny)
	lg.POST("/sectors", api.sectorsOfAny)
	lg.POST("/validate", api.validate)
	lg.GET("/check", api.check)
}

// pathParam returns the decoded value of a path parameter. The router matches on the decoded path
// unless the request carries a RawPath, in which case the parameter is still escaped and decoded once here.
func pathParam(ctx echo.Context, name string) string {
	val := ctx.Param(name)
	if ctx.Request().URL.RawPath == "" {
		return val
	}
	if unescaped, err := url.PathUnescape(val); err == nil {
		return unescaped
	}
	return val
}

// asBadRequest reports lookup errors on submitted bodies against field: they are not missing resources.
func asBadRequest(err error, field string) error {
	if lookupErr, ok := location.AsLookupError(err); ok {
		return core.NewFieldValidationError(field, lookupErr)
	}
	return err
}

func (api *locationAPI) table(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Table())
}

func (api *locationAPI) provinces(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Provinces())
}

func (api *locationAPI) districts(ctx echo.Context) error {
	districts, err := api.svc.Districts(pathParam(ctx, "province"))
	if err != nil {
		return errors.Wrap(err, "listing districts")
	}
	return ctx.JSON(http.StatusOK, districts)
}

func (api *locationAPI) sectors(ctx echo.Context) error {
	sectors, err := api.svc.Sectors(pathParam(ctx, "province"), pathParam(ctx, "district"))
	if err != nil {
		return errors.Wrap(err, "listing sectors")
	}
	return ctx.JSON(http.StatusOK, sectors)
}

func (api *locationAPI) districtsOfAny(ctx echo.Context) error {
	var data location.DistrictQuery
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding data")
	}

	districts, err := api.svc.DistrictsOfAny(data)
	if err != nil {
		return asBadRequest(err, "provinces")
	}
	return ctx.JSON(http.StatusOK, districts)
}

func (api *locationAPI) sectorsOfAny(ctx echo.Context) error {
	var data location.SectorQuery
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding data")
	}

	sectors, err := api.svc.SectorsOfAny(data)
	if err != nil {
		return asBadRequest(err, "districts")
	}
	return ctx.JSON(http.StatusOK, sectors)
}

func (api *locationAPI) validate(ctx echo.Context) error {
	var data location.Address
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding data")
	}

	addr, err := api.svc.Validate(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, addr)
}

func (api *locationAPI) check(ctx echo.Context) error {
	addr := location.Address{
		Province: ctx.QueryParam("province"),
		District: ctx.QueryParam("district"),
		Sector:   ctx.QueryParam("sector"),
	}
	return ctx.JSON(http.StatusOK, location.CheckResult{Valid: api.svc.IsValid(addr)})
}
