package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Raster Information
		{
			Name:        "raster_info",
			Description: "Read a raster file and return its dimensions, band count, geotransform, projection, and per-band value statistics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the raster file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "raster_pixel_value",
			Description: "Sample the first band of a raster at geographic coordinates. With no points, returns the value at pixel (0,0).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the raster file",
					},
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"lat": map[string]interface{}{"type": "number", "description": "Latitude / geographic Y"},
								"lon": map[string]interface{}{"type": "number", "description": "Longitude / geographic X"},
							},
							"required": []string{"lat", "lon"},
						},
						"description": "Optional geographic points to sample. Points outside the raster extent are an error.",
					},
				},
				"required": []string{"path"},
			},
		},

		// Comparison Operations
		{
			Name:        "raster_compare",
			Description: "Compare the pixel values of two raster files band by band. Reports equality plus the location and values of the first difference. Metadata (projection, geotransform) is not compared.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path_a": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the first raster file",
					},
					"path_b": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the second raster file",
					},
				},
				"required": []string{"path_a", "path_b"},
			},
		},
		{
			Name:        "raster_compare_directory",
			Description: "Compare every raster file in one directory against the same-named file in another. Files with no counterpart are reported and skipped; the batch always runs to completion.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dir_a": map[string]interface{}{
						"type":        "string",
						"description": "Directory whose raster files drive the comparison",
					},
					"dir_b": map[string]interface{}{
						"type":        "string",
						"description": "Directory searched for same-named counterparts",
					},
				},
				"required": []string{"dir_a", "dir_b"},
			},
		},

		// Preview Operations
		{
			Name:        "raster_band_preview",
			Description: "Render one band of a raster as a false-color PNG (base64), stretched over the band's value range. Use this to eyeball a band's spatial structure.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the raster file",
					},
					"band": map[string]interface{}{
						"type":        "integer",
						"description": "1-based band index. Default 1",
						"default":     1,
					},
					"max_dim": map[string]interface{}{
						"type":        "integer",
						"description": "Downscale the preview to fit this many pixels on the longest side. Default 1024, 0 disables",
						"default":     1024,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "raster_diff_preview",
			Description: "Render the per-pixel difference of one band between two rasters as a PNG (base64). Identical regions come out black; discrepancies glow.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path_a": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the first raster file",
					},
					"path_b": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the second raster file",
					},
					"band": map[string]interface{}{
						"type":        "integer",
						"description": "1-based band index. Default 1",
						"default":     1,
					},
				},
				"required": []string{"path_a", "path_b"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
