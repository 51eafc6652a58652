package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"github.com/lintang-b-s/parkmap/pkg/datastructure"
	"github.com/lintang-b-s/parkmap/pkg/graphcache"
	"github.com/lintang-b-s/parkmap/pkg/http"
	"github.com/lintang-b-s/parkmap/pkg/http/usecases"
	"github.com/lintang-b-s/parkmap/pkg/logger"
	"github.com/lintang-b-s/parkmap/pkg/provider"
	"github.com/lintang-b-s/parkmap/pkg/renderer"
	"github.com/lintang-b-s/parkmap/pkg/spatialindex"
	"github.com/lintang-b-s/parkmap/pkg/util"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	leafBoundingBoxRadius = flag.Float64("leaf_bounding_box_radius", 0.05, "leaf node (r-tree) bounding box radius in km")
	snapRadius            = flag.Float64("snap_radius", 0.5, "parking event to nearest intersection snap radius in km")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		// defaults registered by ReadConfig still apply
		logger.Warn("no config file found, running on defaults", zap.Error(err))
	}

	region := datastructure.NewRegion(
		viper.GetString("REGION_NAME"),
		viper.GetFloat64("REGION_BBOX_NORTH"),
		viper.GetFloat64("REGION_BBOX_SOUTH"),
		viper.GetFloat64("REGION_BBOX_EAST"),
		viper.GetFloat64("REGION_BBOX_WEST"),
		viper.GetFloat64("REGION_CENTER_LAT"),
		viper.GetFloat64("REGION_CENTER_LON"),
	)

	overpass := provider.NewOverpassClient(
		viper.GetString("OVERPASS_URL"),
		viper.GetDuration("OVERPASS_TIMEOUT"),
		logger,
	)

	cache := graphcache.New(afero.NewOsFs(), viper.GetString("SNAPSHOT_DIR"), overpass, logger)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	graph, err := cache.Obtain(ctx, region)
	if err != nil {
		logger.Fatal("could not obtain road network, halting", zap.Error(err))
	}
	if graph.IsDegenerate() {
		logger.Fatal("No edges found in the graph. Try a different bounding box.",
			zap.String("region", region.GetName()))
	}
	logger.Info("Graph loaded",
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, *leafBoundingBoxRadius, logger)

	mapRenderer, err := renderer.New()
	if err != nil {
		panic(err)
	}

	newRand := func() *rand.Rand {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	parkmapService := usecases.NewParkMapService(logger, graph, region, rtree,
		mapRenderer, newRand, *snapRadius)

	api := http.NewServer(logger)
	if _, err := api.Use(ctx,
		logger, false, parkmapService); err != nil {
		logger.Fatal("could not start http server", zap.Error(err))
	}

	signal := http.GracefulShutdown()

	logger.Info("parkmap server stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
