package datastructure

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/parkmap/pkg"
	"github.com/lintang-b-s/parkmap/pkg/geo"
	"github.com/lintang-b-s/parkmap/pkg/util"
)

// snapshot format (bzip2-compressed text):
//
//	numVertices numEdges
//	one vertex per line: firstOut id lat lon osmId
//	one sentinel vertex line
//	one edge per line: edgeId head dist hwType
//	bounding box line: minLat minLon maxLat maxLon
//
// no versioning, no migration. a snapshot is either parseable or treated as a
// cache miss by the caller.

func (g *Graph) WriteGraph(w io.Writer) error {
	bz, err := bzip2.NewWriter(w, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	bw := bufio.NewWriter(bz)

	fmt.Fprintf(bw, "%d %d\n", g.NumberOfVertices(), g.NumberOfEdges())

	for vId := 0; vId < len(g.vertices); vId++ {
		v := g.vertices[vId]
		latF := strconv.FormatFloat(v.lat, 'f', -1, 64)
		lonF := strconv.FormatFloat(v.lon, 'f', -1, 64)

		fmt.Fprintf(bw, "%d %d %s %s %d\n",
			v.firstOut, v.id, latF, lonF, v.osmId)
	}

	for _, e := range g.outEdges {
		distF := strconv.FormatFloat(e.dist, 'f', -1, 64)

		fmt.Fprintf(bw, "%d %d %s %d\n",
			e.edgeId, e.head, distF, e.hwType)
	}

	minLat := strconv.FormatFloat(g.boundingBox.GetMinLat(), 'f', -1, 64)
	minLon := strconv.FormatFloat(g.boundingBox.GetMinLon(), 'f', -1, 64)
	maxLat := strconv.FormatFloat(g.boundingBox.GetMaxLat(), 'f', -1, 64)
	maxLon := strconv.FormatFloat(g.boundingBox.GetMaxLon(), 'f', -1, 64)
	fmt.Fprintf(bw, "%s %s %s %s\n", minLat, minLon, maxLat, maxLon)

	return bw.Flush()
}

func fields(s string) []string {

	return strings.Fields(s)
}

func ParseIndex(s string) (Index, error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("value %s overflows uint32", s)
	}
	return Index(u), nil
}

func ReadGraph(r io.Reader) (*Graph, error) {
	bz, err := bzip2.NewReader(r, nil)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(bz)

	line, err := util.ReadLine(br)
	if err != nil {
		return nil, err
	}

	tokens := fields(line)
	if len(tokens) != 2 {
		return nil, fmt.Errorf("expected 2 header fields, got %d", len(tokens))
	}

	numVertices, err := ParseIndex(tokens[0])
	if err != nil {
		return nil, err
	}

	numEdges, err := ParseIndex(tokens[1])
	if err != nil {
		return nil, err
	}

	vertices := make([]*Vertex, numVertices+1)

	for i := 0; i < int(numVertices)+1; i++ {
		vertexLine, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		vertices[i], err = parseVertex(vertexLine)
		if err != nil {
			return nil, err
		}
	}

	outEdges := make([]*OutEdge, numEdges)
	for i := 0; i < int(numEdges); i++ {
		outEdgeLine, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		outEdges[i], err = parseOutEdge(outEdgeLine)
		if err != nil {
			return nil, err
		}
	}

	line, err = util.ReadLine(br)
	if err != nil {
		return nil, err
	}
	tokens = fields(line)
	if len(tokens) != 4 {
		return nil, fmt.Errorf("expected 4 bounding box fields, got %d", len(tokens))
	}

	minLat, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return nil, fmt.Errorf("lat: %w", err)
	}
	minLon, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return nil, fmt.Errorf("lon: %w", err)
	}
	maxLat, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return nil, fmt.Errorf("lat: %w", err)
	}
	maxLon, err := strconv.ParseFloat(tokens[3], 64)
	if err != nil {
		return nil, fmt.Errorf("lon: %w", err)
	}

	graph := NewGraph(vertices, outEdges)
	graph.SetBoundingBox(geo.NewBoundingBox(minLat, minLon, maxLat, maxLon))
	return graph, nil
}

func parseVertex(line string) (*Vertex, error) {
	tokens := fields(line)
	if len(tokens) != 5 {
		return nil, fmt.Errorf("expected 5 fields, got %d", len(tokens))
	}
	firstOut, err := ParseIndex(tokens[0])
	if err != nil {
		return nil, err
	}

	id, err := ParseIndex(tokens[1])
	if err != nil {
		return nil, err
	}

	lat, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return nil, fmt.Errorf("lat: %w", err)
	}
	lon, err := strconv.ParseFloat(tokens[3], 64)
	if err != nil {
		return nil, fmt.Errorf("lon: %w", err)
	}

	osmId, err := strconv.ParseInt(tokens[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("osmId: %w", err)
	}

	return &Vertex{
		firstOut: firstOut,
		lat:      lat, lon: lon, id: id, osmId: osmId,
	}, nil
}

func parseOutEdge(line string) (*OutEdge, error) {
	tokens := fields(line)
	if len(tokens) != 4 {
		return nil, fmt.Errorf("expected 4 fields, got %d", len(tokens))
	}
	edgeId, err := ParseIndex(tokens[0])
	if err != nil {
		return nil, err
	}
	head, err := ParseIndex(tokens[1])
	if err != nil {
		return nil, err
	}
	dist, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return nil, err
	}

	hwType, err := strconv.ParseUint(tokens[3], 10, 8)
	if err != nil {
		return nil, err
	}

	return NewOutEdge(edgeId, head, dist, pkg.OsmHighwayType(hwType)), nil
}
