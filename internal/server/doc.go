// Package server implements the MCP (Model Context Protocol) server for raster
// inspection tools.
//
// This package provides a JSON-RPC 2.0 server that exposes georeferenced
// raster operations through the MCP protocol. It's designed to work with
// Claude and other MCP-compatible clients, enabling AI systems to inspect and
// compare survey rasters with precision.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Raster Information:
//   - raster_info: Dimensions, geotransform, projection, band statistics
//   - raster_pixel_value: Sample band 1 at geographic coordinates
//
// Comparison Operations:
//   - raster_compare: Band-by-band pixel equality of two files
//   - raster_compare_directory: Batch comparison of two directory trees
//
// Preview Operations:
//   - raster_band_preview: False-color PNG rendering of one band
//   - raster_diff_preview: Per-pixel difference rendering of one band
//
// # Statelessness
//
// Unlike servers that cache decoded inputs, this one re-reads every raster on
// every call. Survey rasters are routinely regenerated in place during
// processing, so a cache would serve stale pixels; re-reading keeps each
// result consistent with the file at call time.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Note that two rasters comparing unequal is a successful tool result, not an
// error; only open/read failures surface as errors.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
