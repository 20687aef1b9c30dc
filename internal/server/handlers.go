package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/raster-tools-mcp/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "raster_info", "raster_compare").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Calls the appropriate raster function
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Raster Information
	case "raster_info":
		return s.handleRasterInfo(args)
	case "raster_pixel_value":
		return s.handleRasterPixelValue(args)

	// Comparison Operations
	case "raster_compare":
		return s.handleRasterCompare(args)
	case "raster_compare_directory":
		return s.handleRasterCompareDirectory(args)

	// Preview Operations
	case "raster_band_preview":
		return s.handleRasterBandPreview(args)
	case "raster_diff_preview":
		return s.handleRasterDiffPreview(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Raster Information Handlers ===

type rasterInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleRasterInfo(args json.RawMessage) (interface{}, error) {
	var a rasterInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return raster.ReadInfo(a.Path)
}

type rasterPixelValueArgs struct {
	Path   string `json:"path"`
	Points []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"points"`
}

func (s *Server) handleRasterPixelValue(args json.RawMessage) (interface{}, error) {
	var a rasterPixelValueArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	points := make([]raster.GeoPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = raster.GeoPoint{Lat: p.Lat, Lon: p.Lon}
	}
	return raster.PixelValueAt(a.Path, points)
}

// === Comparison Operation Handlers ===

type rasterCompareArgs struct {
	PathA string `json:"path_a"`
	PathB string `json:"path_b"`
}

func (s *Server) handleRasterCompare(args json.RawMessage) (interface{}, error) {
	var a rasterCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return raster.CompareRasters(a.PathA, a.PathB)
}

type rasterCompareDirectoryArgs struct {
	DirA string `json:"dir_a"`
	DirB string `json:"dir_b"`
}

// directoryCompareResult wraps the per-file entries with a summary flag so a
// client can check one field instead of scanning the list.
type directoryCompareResult struct {
	DirA     string                  `json:"dir_a"`
	DirB     string                  `json:"dir_b"`
	AllEqual bool                    `json:"all_equal"`
	Files    []raster.FileComparison `json:"files"`
}

func (s *Server) handleRasterCompareDirectory(args json.RawMessage) (interface{}, error) {
	var a rasterCompareDirectoryArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	files, err := raster.CompareDirectory(a.DirA, a.DirB)
	if err != nil {
		return nil, err
	}

	allEqual := true
	for _, f := range files {
		if !f.Equal {
			allEqual = false
			break
		}
	}
	return &directoryCompareResult{DirA: a.DirA, DirB: a.DirB, AllEqual: allEqual, Files: files}, nil
}

// === Preview Operation Handlers ===

type rasterBandPreviewArgs struct {
	Path   string `json:"path"`
	Band   int    `json:"band"`
	MaxDim *int   `json:"max_dim"`
}

func (s *Server) handleRasterBandPreview(args json.RawMessage) (interface{}, error) {
	var a rasterBandPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Band == 0 {
		a.Band = 1
	}
	maxDim := 1024
	if a.MaxDim != nil {
		maxDim = *a.MaxDim
	}
	return raster.BandPreview(a.Path, a.Band, maxDim)
}

type rasterDiffPreviewArgs struct {
	PathA string `json:"path_a"`
	PathB string `json:"path_b"`
	Band  int    `json:"band"`
}

func (s *Server) handleRasterDiffPreview(args json.RawMessage) (interface{}, error) {
	var a rasterDiffPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Band == 0 {
		a.Band = 1
	}
	return raster.DiffPreview(a.PathA, a.PathB, a.Band)
}
