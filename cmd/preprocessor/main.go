package main

import (
	"flag"
	"os"

	"github.com/lintang-b-s/parkmap/pkg/osmparser"
)

var (
	pbfPath      = flag.String("pbf", "./data/chennai.osm.pbf", "path of the .osm.pbf region extract")
	snapshotPath = flag.String("out", "./data/chennai.graph", "output road network snapshot path")
)

// seeds the snapshot from a local extract so the server never has to hit the
// Overpass API on first start.
func main() {
	flag.Parse()

	parser := osmparser.NewOsmParser()
	graph, err := parser.ParseFile(*pbfPath)
	if err != nil {
		panic(err)
	}

	f, err := os.Create(*snapshotPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err := graph.WriteGraph(f); err != nil {
		panic(err)
	}
}
