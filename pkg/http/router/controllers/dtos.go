package controllers

import (
	"github.com/lintang-b-s/parkmap/pkg/http/usecases"
)

type sampleRoutesRequest struct {
	Count int `json:"count" validate:"required,min=1,max=5"`
}

type sampledRouteResponse struct {
	Polyline       string  `json:"polyline"`
	DistanceMeters float64 `json:"distance_meters"`
	Color          string  `json:"color"`
	OriginLat      float64 `json:"origin_lat"`
	OriginLon      float64 `json:"origin_lon"`
	DestinationLat float64 `json:"destination_lat"`
	DestinationLon float64 `json:"destination_lon"`
}

func NewSampledRouteResponse(route usecases.SampledRoute) sampledRouteResponse {
	return sampledRouteResponse{
		Polyline:       route.Polyline,
		DistanceMeters: route.Distance,
		Color:          route.Color,
		OriginLat:      route.Origin.Lat,
		OriginLon:      route.Origin.Lon,
		DestinationLat: route.Destination.Lat,
		DestinationLon: route.Destination.Lon,
	}
}

func NewSampledRoutesResponse(routes []usecases.SampledRoute) []sampledRouteResponse {
	responses := make([]sampledRouteResponse, 0, len(routes))
	for _, route := range routes {
		responses = append(responses, NewSampledRouteResponse(route))
	}
	return responses
}

type uploadResponse struct {
	CongestedSpots int      `json:"congested_spots"`
	AvailableSpots int      `json:"available_spots"`
	Warnings       []string `json:"warnings"`
}

func NewUploadResponse(congested, available int, warnings []string) uploadResponse {
	if warnings == nil {
		warnings = []string{}
	}
	return uploadResponse{
		CongestedSpots: congested,
		AvailableSpots: available,
		Warnings:       warnings,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
