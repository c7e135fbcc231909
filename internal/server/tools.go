package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Blob Finding
		{
			Name:        "biscuit_find",
			Description: "Find the connected blobs of an image (pixels that differ from the background color, joined horizontally or vertically) and return a PNG where each blob has its own color and the background is transparent.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background color as #RRGGBB or #RRGGBBAA. Defaults to the server background (opaque white).",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "biscuit_find_raw",
			Description: "Find blobs in a raw RGBA buffer (4 bytes per pixel, row-major, base64 encoded) and return the colorized raw buffer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width":       map[string]interface{}{"type": "integer", "description": "Width in pixels"},
					"height":      map[string]interface{}{"type": "integer", "description": "Height in pixels"},
					"rgba_base64": map[string]interface{}{"type": "string", "description": "Base64 RGBA pixels; length must be width*height*4 bytes"},
				},
				"required": []string{"width", "height", "rgba_base64"},
			},
		},
		{
			Name:        "biscuit_find_batch",
			Description: "Count the blobs in several image files. Files are processed in order and the last one becomes the session output.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"paths": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Absolute paths to the image files",
					},
				},
				"required": []string{"paths"},
			},
		},
		{
			Name:        "biscuit_threshold",
			Description: "Find blobs among the dark pixels of an image: pixels whose grayscale value is below the level are foreground. Suited to scans and photos without an exact background color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"level": map[string]interface{}{
						"type":        "integer",
						"description": "Grayscale threshold 1-255 (default 128)",
						"default":     128,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "biscuit_output",
			Description: "Return the colorized raw RGBA buffer of the last successful find, base64 encoded.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "biscuit_components",
			Description: "List the blobs of the last successful find with bounding box, pixel area and color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"min_area": map[string]interface{}{
						"type":        "integer",
						"description": "Skip blobs with fewer pixels than this (default 1)",
						"default":     1,
					},
				},
			},
		},
		{
			Name:        "biscuit_crop",
			Description: "Crop one blob's bounding box from the last colorized output and return it as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"label": map[string]interface{}{
						"type":        "integer",
						"description": "Blob label from biscuit_components",
					},
					"padding": map[string]interface{}{
						"type":        "integer",
						"description": "Extra pixels around the bounding box (default 0)",
						"default":     0,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"label"},
			},
		},
		{
			Name:        "biscuit_palette",
			Description: "Describe the session color table: each label's color as hex, RGBA and HSL, and the pair of labels whose colors are hardest to tell apart.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Describe labels 1..limit only, at most 256 (default: labels found by the last find, or the whole table)",
					},
				},
			},
		},
		{
			Name:        "biscuit_noise",
			Description: "Write a random black-and-white PNG test image. Black pixels on a white background form many small blobs.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    map[string]interface{}{"type": "string", "description": "Absolute path of the PNG to write"},
					"width":   map[string]interface{}{"type": "integer", "description": "Width in pixels"},
					"height":  map[string]interface{}{"type": "integer", "description": "Height in pixels"},
					"density": map[string]interface{}{"type": "number", "description": "Probability of a black pixel (default 0.05)", "default": 0.05},
					"seed":    map[string]interface{}{"type": "integer", "description": "Random seed (default 1)", "default": 1},
				},
				"required": []string{"path", "width", "height"},
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
