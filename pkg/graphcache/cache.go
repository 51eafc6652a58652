package graphcache

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/lintang-b-s/parkmap/pkg"
	"github.com/lintang-b-s/parkmap/pkg/datastructure"
	"github.com/lintang-b-s/parkmap/pkg/util"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Provider interface {
	FetchRoadNetwork(ctx context.Context, region datastructure.Region) (*datastructure.Graph, error)
}

// GraphCache snapshot-first road network loader. A readable snapshot is
// trusted indefinitely (no expiry); a miss triggers a bounded retry loop
// against the remote provider, and the first successful fetch is persisted
// for the next session.
type GraphCache struct {
	fs       afero.Fs
	dir      string
	provider Provider
	log      *zap.Logger

	maxAttempts int
	backoff     time.Duration
	sleep       func(time.Duration) // injectable so tests don't wait out the backoff
}

func New(fs afero.Fs, dir string, provider Provider, log *zap.Logger) *GraphCache {
	return &GraphCache{
		fs:          fs,
		dir:         dir,
		provider:    provider,
		log:         log,
		maxAttempts: pkg.FETCH_MAX_ATTEMPTS,
		backoff:     pkg.FETCH_RETRY_BACKOFF_SECONDS * time.Second,
		sleep:       time.Sleep,
	}
}

func (c *GraphCache) SetSleep(sleep func(time.Duration)) {
	c.sleep = sleep
}

func (c *GraphCache) snapshotPath(region datastructure.Region) string {
	return filepath.Join(c.dir, fmt.Sprintf("%s.graph", region.GetName()))
}

// Obtain returns the region's road network: snapshot if one deserializes,
// otherwise a fresh fetch (persisted on success). An exhausted retry budget
// is fatal to the calling session.
func (c *GraphCache) Obtain(ctx context.Context, region datastructure.Region) (*datastructure.Graph, error) {
	if graph, err := c.readSnapshot(region); err == nil {
		c.log.Info("road network loaded from snapshot",
			zap.String("region", region.GetName()),
			zap.Int("vertices", graph.NumberOfVertices()),
			zap.Int("edges", graph.NumberOfEdges()))
		return graph, nil
	} else {
		c.log.Info("snapshot miss, fetching from provider",
			zap.String("region", region.GetName()), zap.Error(err))
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		graph, err := c.provider.FetchRoadNetwork(ctx, region)
		if err == nil {
			if err := c.writeSnapshot(region, graph); err != nil {
				// a failed persist only costs the next session a refetch
				c.log.Warn("failed to persist road network snapshot",
					zap.String("region", region.GetName()), zap.Error(err))
			}
			return graph, nil
		}

		lastErr = err
		c.log.Warn("road network fetch failed",
			zap.String("region", region.GetName()),
			zap.Int("attempt", attempt),
			zap.Int("maxAttempts", c.maxAttempts),
			zap.Error(err))
		if attempt < c.maxAttempts {
			c.sleep(c.backoff)
		}
	}

	return nil, util.WrapErrorf(lastErr, util.ErrInternalServerError,
		"road network fetch for region %q failed after %d attempts", region.GetName(), c.maxAttempts)
}

// Invalidate deletes the region's snapshot so the next Obtain refetches.
func (c *GraphCache) Invalidate(region datastructure.Region) error {
	err := c.fs.Remove(c.snapshotPath(region))
	if err != nil {
		return util.WrapErrorf(err, util.ErrNotFound, "remove snapshot for region %q", region.GetName())
	}
	return nil
}

func (c *GraphCache) readSnapshot(region datastructure.Region) (*datastructure.Graph, error) {
	f, err := c.fs.Open(c.snapshotPath(region))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return datastructure.ReadGraph(f)
}

func (c *GraphCache) writeSnapshot(region datastructure.Region, graph *datastructure.Graph) error {
	if err := c.fs.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}

	f, err := c.fs.Create(c.snapshotPath(region))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := graph.WriteGraph(f); err != nil {
		return err
	}
	c.log.Info("road network snapshot persisted",
		zap.String("region", region.GetName()),
		zap.String("path", c.snapshotPath(region)))
	return nil
}
