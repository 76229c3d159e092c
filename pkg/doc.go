// Package pkg provides the core libraries for whiteboard diagram placement.
//
// # Overview
//
// Whiteboard turns incremental placement requests into a consistent 2-D
// diagram: each request names what to add, and the engine decides where it
// goes so the canvas stays readable without anyone supplying coordinates.
// The pkg directory is organized into four main areas:
//
//  1. [canvas] - Element model (kinds, geometry, sizing, scene files)
//  2. [layout] - Placement logic (occupancy index, pattern detection, solver, routing)
//  3. [board] - Request orchestration (shapes, connections, flowcharts, mind maps)
//  4. [session] / [cache] - Persistence backends and artifact caching
//
// # Architecture
//
// The typical data flow through the engine:
//
//	Placement Request (shape / connect / flowchart / mindmap)
//	         ↓
//	    [board] package (validate, size, orchestrate)
//	         ↓
//	    [layout] package (pattern detection + strategy chain + routing)
//	         ↓
//	    [canvas] elements appended to the [session] snapshot
//	         ↓
//	    [report] canvas description / [render] SVG, PNG, DOT output
//
// # Quick Start
//
// Place two shapes and describe the canvas:
//
//	import (
//	    "github.com/cptiwari20/ai-learning-sub000/pkg/board"
//	    "github.com/cptiwari20/ai-learning-sub000/pkg/canvas"
//	    "github.com/cptiwari20/ai-learning-sub000/pkg/layout"
//	    "github.com/cptiwari20/ai-learning-sub000/pkg/report"
//	)
//
//	// 1. Build an engine
//	engine := board.New(layout.DefaultConfig(), nil)
//
//	// 2. Place elements; each result is appended to the snapshot
//	var elements []canvas.Element
//	res, _ := engine.Place(elements, board.Request{Kind: board.KindShape, Shape: canvas.KindRectangle, Text: "API"})
//	elements = append(elements, res.Elements...)
//	res, _ = engine.Place(elements, board.Request{Kind: board.KindShape, Shape: canvas.KindEllipse, Text: "DB"})
//	elements = append(elements, res.Elements...)
//
//	// 3. Describe what is on the canvas
//	rep := report.NewReporter(engine.Config()).Describe(elements)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [canvas] - The element model: the closed set of element kinds, box
// geometry, text measurement, and the factory that fills defaults and
// assigns IDs. Scene files round-trip through this package.
//
// [layout] - Everything spatial: the occupancy index with collision
// padding, growth-pattern detection, the placement strategy chain, and
// connector routing. Deterministic for a fixed seed.
//
// [board] - Request orchestration. Translates shape, connect, flowchart,
// and mindmap requests into placed elements, auto-connecting sequential
// flows and surfacing recoverable mistakes as soft failures.
//
// [report] - Canvas context reports: density grid, connection listing,
// empty-area suggestions, and connection opportunities.
//
// ## Infrastructure
//
// [session] - Snapshot persistence. MemoryStore for testing, FileStore
// for the CLI, RedisStore and MongoStore for the API server.
//
// [cache] - Content-addressed artifact caching for rendered output.
//
// [render] - SVG, DOT, and PNG output for placed elements.
//
// [errors] - Structured errors with stable codes, plus input validation.
//
// [observability] - Optional instrumentation hooks for placement,
// session, and cache events.
package pkg
