package util

import (
	"fmt"

	"github.com/spf13/viper"
)

// ReadConfig loads data/config.yaml and registers defaults for every knob the
// server reads. The region is fixed at deploy time, not user-selectable.
func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")

	// chennai drive network
	viper.SetDefault("REGION_NAME", "chennai")
	viper.SetDefault("REGION_BBOX_NORTH", 13.14)
	viper.SetDefault("REGION_BBOX_SOUTH", 12.97)
	viper.SetDefault("REGION_BBOX_EAST", 80.29)
	viper.SetDefault("REGION_BBOX_WEST", 80.08)
	viper.SetDefault("REGION_CENTER_LAT", 13.0827)
	viper.SetDefault("REGION_CENTER_LON", 80.2707)

	viper.SetDefault("SNAPSHOT_DIR", "./data")
	viper.SetDefault("OVERPASS_URL", "https://overpass-api.de/api/interpreter")
	viper.SetDefault("OVERPASS_TIMEOUT", "180s")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
