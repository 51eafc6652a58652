package provider

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lintang-b-s/parkmap/pkg/datastructure"
	"github.com/lintang-b-s/parkmap/pkg/osmparser"
	"github.com/lintang-b-s/parkmap/pkg/util"
	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

// OverpassClient remote road-network provider. One Overpass API call per
// fetch; retries are the caller's policy, not ours.
type OverpassClient struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewOverpassClient(baseURL string, timeout time.Duration, log *zap.Logger) *OverpassClient {
	return &OverpassClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// driveNetworkQuery OverpassQL for every highway-tagged way inside the region
// bounding box, plus the nodes they reference.
func driveNetworkQuery(region datastructure.Region) string {
	bb := region.GetBoundingBox()
	bbox := fmt.Sprintf("%f,%f,%f,%f",
		bb.GetMinLat(), bb.GetMinLon(), bb.GetMaxLat(), bb.GetMaxLon())

	var q strings.Builder
	q.WriteString("[out:xml][timeout:180];\n")
	q.WriteString(fmt.Sprintf("way[\"highway\"](%s);\n", bbox))
	q.WriteString("(._;>;);\n")
	q.WriteString("out body;\n")
	return q.String()
}

// FetchRoadNetwork downloads the region's drive network from the Overpass API
// and builds a routable graph out of it.
func (c *OverpassClient) FetchRoadNetwork(ctx context.Context, region datastructure.Region) (*datastructure.Graph, error) {
	query := driveNetworkQuery(region)
	c.log.Info("fetching road network from overpass",
		zap.String("region", region.GetName()), zap.String("url", c.baseURL))

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "build overpass request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "overpass request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "read overpass response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, util.WrapErrorf(
			fmt.Errorf("overpass returned status %d", resp.StatusCode),
			util.ErrInternalServerError, "overpass returned status %d", resp.StatusCode)
	}

	var data osm.OSM
	if err := xml.Unmarshal(body, &data); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "decode overpass response")
	}

	parser := osmparser.NewOsmParser()
	graph := parser.Parse(&data)

	c.log.Info("road network fetched",
		zap.String("region", region.GetName()),
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))
	return graph, nil
}
