package controllers

import (
	"io"

	"github.com/lintang-b-s/parkmap/pkg/http/usecases"
	"github.com/lintang-b-s/parkmap/pkg/parking"
)

type ParkMapService interface {
	SampleRoutes(count int) ([]usecases.SampledRoute, []string, error)
	ClassifyUpload(upload io.Reader) parking.Classification
	RenderMap(w io.Writer, count int, upload io.Reader) ([]string, error)
}
