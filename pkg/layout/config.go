// Package layout implements spatial placement for the shared whiteboard.
//
// The engine receives a canvas snapshot and a new element's size plus
// optional hints, and deterministically resolves where the element goes and
// how it connects to existing content. There is no global layout pass:
// elements already on the canvas never move, so every decision is made
// under partial, incremental information.
//
// # Components
//
//   - [Index]: axis-aligned occupancy queries with configurable padding
//   - [DetectPattern]: classifies the arrangement as horizontal, vertical,
//     mixed or radial flow
//   - [Placer]: ordered chain of placement strategies, guaranteed to
//     terminate with a coordinate
//   - [Router]: auto-connection decisions and smart connector endpoints
//
// All tunables live in [Config]; jitter flows through an injected seeded
// generator so identical inputs produce identical coordinates.
package layout

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// Config - Centralized Tunables
// =============================================================================

// Config holds every placement tunable. Zero values mean "use default";
// call [Config.ApplyDefaults] (or start from [DefaultConfig]) before use.
type Config struct {
	// Canvas dimensions.
	CanvasWidth  float64 `toml:"canvas_width"`
	CanvasHeight float64 `toml:"canvas_height"`

	// StartX, StartY is the canonical first-element position on an empty
	// canvas. Zero or negative means "use default": the first element
	// always needs a margin, so 0 is not a meaningful start coordinate.
	StartX float64 `toml:"start_x"`
	StartY float64 `toml:"start_y"`

	// AnchorPadding is the gap between an anchor element and a newly
	// placed neighbor.
	AnchorPadding float64 `toml:"anchor_padding"`

	// FinePadding inflates boxes for fine-grained overlap checks.
	FinePadding float64 `toml:"fine_padding"`

	// CoarsePadding inflates boxes for coarse placement search.
	CoarsePadding float64 `toml:"coarse_padding"`

	// Jitter is the maximum symmetric offset applied on the perpendicular
	// axis of anchored placements, for a less mechanical look.
	Jitter float64 `toml:"jitter"`

	// FlowGap is the spacing between consecutive elements in sequential
	// flow continuation.
	FlowGap float64 `toml:"flow_gap"`

	// GridRows, GridCols partition the canvas for region search.
	GridRows int `toml:"grid_rows"`
	GridCols int `toml:"grid_cols"`

	// ScanStep is the local grid scan step inside the least-dense region.
	ScanStep float64 `toml:"scan_step"`

	// ConnectorProximity is the maximum distance from a connector endpoint
	// to an element's bounding box for the two to count as connected.
	ConnectorProximity float64 `toml:"connector_proximity"`

	// AlignTolerance is the maximum center delta on the cross axis for two
	// shapes to count as aligned.
	AlignTolerance float64 `toml:"align_tolerance"`

	// OpportunityMinDist, OpportunityMaxDist bound the gap between aligned
	// shapes suggested as connection opportunities.
	OpportunityMinDist float64 `toml:"opportunity_min_dist"`
	OpportunityMaxDist float64 `toml:"opportunity_max_dist"`

	// MaxOpportunities caps the number of suggested pairs per report.
	MaxOpportunities int `toml:"max_opportunities"`
}

// DefaultConfig returns the standard placement configuration.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:        1400,
		CanvasHeight:       1000,
		StartX:             150,
		StartY:             150,
		AnchorPadding:      90,
		FinePadding:        20,
		CoarsePadding:      60,
		Jitter:             15,
		FlowGap:            40,
		GridRows:           4,
		GridCols:           4,
		ScanStep:           30,
		ConnectorProximity: 100,
		AlignTolerance:     50,
		OpportunityMinDist: 100,
		OpportunityMaxDist: 500,
		MaxOpportunities:   4,
	}
}

// ApplyDefaults fills zero-valued fields from [DefaultConfig].
// This method is idempotent.
func (c *Config) ApplyDefaults() {
	def := DefaultConfig()
	if c.CanvasWidth <= 0 {
		c.CanvasWidth = def.CanvasWidth
	}
	if c.CanvasHeight <= 0 {
		c.CanvasHeight = def.CanvasHeight
	}
	if c.StartX <= 0 {
		c.StartX = def.StartX
	}
	if c.StartY <= 0 {
		c.StartY = def.StartY
	}
	if c.AnchorPadding <= 0 {
		c.AnchorPadding = def.AnchorPadding
	}
	if c.FinePadding <= 0 {
		c.FinePadding = def.FinePadding
	}
	if c.CoarsePadding <= 0 {
		c.CoarsePadding = def.CoarsePadding
	}
	if c.Jitter < 0 {
		c.Jitter = def.Jitter
	}
	if c.FlowGap <= 0 {
		c.FlowGap = def.FlowGap
	}
	if c.GridRows <= 0 {
		c.GridRows = def.GridRows
	}
	if c.GridCols <= 0 {
		c.GridCols = def.GridCols
	}
	if c.ScanStep <= 0 {
		c.ScanStep = def.ScanStep
	}
	if c.ConnectorProximity <= 0 {
		c.ConnectorProximity = def.ConnectorProximity
	}
	if c.AlignTolerance <= 0 {
		c.AlignTolerance = def.AlignTolerance
	}
	if c.OpportunityMinDist <= 0 {
		c.OpportunityMinDist = def.OpportunityMinDist
	}
	if c.OpportunityMaxDist <= 0 {
		c.OpportunityMaxDist = def.OpportunityMaxDist
	}
	if c.MaxOpportunities <= 0 {
		c.MaxOpportunities = def.MaxOpportunities
	}
}

// Validate checks internal consistency after defaults are applied.
func (c *Config) Validate() error {
	if c.CanvasWidth < c.StartX || c.CanvasHeight < c.StartY {
		return fmt.Errorf("canvas %gx%g smaller than start position (%g,%g)",
			c.CanvasWidth, c.CanvasHeight, c.StartX, c.StartY)
	}
	if c.OpportunityMinDist >= c.OpportunityMaxDist {
		return fmt.Errorf("opportunity_min_dist %g must be below opportunity_max_dist %g",
			c.OpportunityMinDist, c.OpportunityMaxDist)
	}
	return nil
}

// LoadConfig reads TOML overrides from path on top of the defaults.
// Unset keys keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
