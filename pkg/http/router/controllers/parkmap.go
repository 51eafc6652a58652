package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/parkmap/pkg"
	helper "github.com/lintang-b-s/parkmap/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type parkmapAPI struct {
	parkmapService ParkMapService
	log            *zap.Logger
}

func New(parkmapService ParkMapService, log *zap.Logger) *parkmapAPI {
	return &parkmapAPI{
		parkmapService: parkmapService,
		log:            log,
	}

}

func (api *parkmapAPI) Routes(group *helper.RouteGroup) {
	group.GET("/map", api.renderMap)
	group.GET("/routes", api.sampleRoutes)
	group.POST("/parking/upload", api.uploadParkingData)
}

// routeCount reads the route count query/form value, defaulting when absent,
// validating the 1-5 range.
func (api *parkmapAPI) routeCount(raw string) (int, error) {
	if raw == "" {
		return pkg.DEFAULT_ROUTE_COUNT, nil
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("count must be a valid integer")
	}

	request := sampleRoutesRequest{Count: count}
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return 0, fmt.Errorf("validation error: %v", vvString)
	}
	return count, nil
}

// renderMap GET /api/map?routes=N. writes the interactive map artifact with
// N random routes and no parking markers.
func (api *parkmapAPI) renderMap(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	count, err := api.routeCount(r.URL.Query().Get("routes"))
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	warnings, err := api.parkmapService.RenderMap(w, count, nil)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	for _, warning := range warnings {
		api.log.Warn(warning)
	}
}

// sampleRoutes GET /api/routes?count=N. returns N random shortest-path routes
// as encoded polylines.
func (api *parkmapAPI) sampleRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	count, err := api.routeCount(r.URL.Query().Get("count"))
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	routes, warnings, err := api.parkmapService.SampleRoutes(count)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	if warnings == nil {
		warnings = []string{}
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{
		"data":     NewSampledRoutesResponse(routes),
		"warnings": warnings,
	}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// uploadParkingData POST /api/parking/upload. multipart CSV under "file".
// returns classification counts; with ?render=true the rendered map (markers
// + routes) comes back instead.
func (api *parkmapAPI) uploadParkingData(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	file, _, err := r.FormFile("file")
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("multipart field 'file' with a CSV upload is required"))
		return
	}
	defer file.Close()

	count, err := api.routeCount(r.FormValue("routes"))
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if r.URL.Query().Get("render") == "true" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		warnings, err := api.parkmapService.RenderMap(w, count, file)
		if err != nil {
			api.getStatusCode(w, r, err)
			return
		}
		for _, warning := range warnings {
			api.log.Warn(warning)
		}
		return
	}

	classification := api.parkmapService.ClassifyUpload(file)

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{
		"data": NewUploadResponse(
			len(classification.GetCongested()),
			len(classification.GetAvailable()),
			classification.GetWarnings()),
	}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
