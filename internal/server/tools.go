package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// convertProperties is the shared input schema of ascii_convert and
// ascii_render.
func convertProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Path to the image file, or an s3://bucket/key URI",
		},
		"width_scale": map[string]interface{}{
			"type":        "number",
			"description": "Horizontal resize percentage (0.001-1000). Default 100",
			"default":     100,
		},
		"height_scale": map[string]interface{}{
			"type":        "number",
			"description": "Vertical resize percentage (0.001-1000). Default 100",
			"default":     100,
		},
		"charset": map[string]interface{}{
			"type":        "string",
			"description": "Glyph ramp preset: standard, detailed, simple, blocks, dots, or custom",
			"default":     "standard",
		},
		"custom_chars": map[string]interface{}{
			"type":        "string",
			"description": "Explicit dark-to-light glyph sequence used when charset is \"custom\" (minimum 2 glyphs)",
		},
		"invert": map[string]interface{}{
			"type":        "boolean",
			"description": "Reverse the glyph ramp (dark source pixels get light glyphs)",
			"default":     false,
		},
		"brightness": map[string]interface{}{
			"type":        "number",
			"description": "Signed luminance offset (-100 to 100) applied before resampling",
			"default":     0,
		},
		"crop_preset": map[string]interface{}{
			"type":        "string",
			"description": "Named crop region: center, top, bottom, left, right, or full",
		},
		"crop": map[string]interface{}{
			"type":        "object",
			"description": "Explicit crop region in percentages of the original image. Overrides crop_preset",
			"properties": map[string]interface{}{
				"start_x": map[string]interface{}{"type": "number", "description": "Left edge (0-100)"},
				"start_y": map[string]interface{}{"type": "number", "description": "Top edge (0-100)"},
				"end_x":   map[string]interface{}{"type": "number", "description": "Right edge (0-100), greater than start_x"},
				"end_y":   map[string]interface{}{"type": "number", "description": "Bottom edge (0-100), greater than start_y"},
			},
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversion
		{
			Name:        "ascii_convert",
			Description: "Convert an image to ASCII art text. Maps pixel luminance onto a glyph ramp after optional crop, brightness, and independent width/height scaling.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": convertProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name: "ascii_render",
			Description: "Convert an image to ASCII art and render the text onto a raster canvas with a monospaced font. " +
				"Returns the result as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mergeProperties(convertProperties(), map[string]interface{}{
					"font_size": map[string]interface{}{
						"type":        "integer",
						"description": "Font size in points (8-48). Default 12",
						"default":     12,
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Canvas background: black, white, transparent, or #RRGGBB",
						"default":     "black",
					},
					"text_color": map[string]interface{}{
						"type":        "string",
						"description": "Glyph color: white, black, green, or #RRGGBB",
						"default":     "white",
					},
				}),
				"required": []string{"path"},
			},
		},

		// Enumeration
		{
			Name:        "ascii_charsets",
			Description: "List the available glyph-ramp presets (name, glyphs, length) and the named crop presets.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Image information
		{
			Name:        "image_info",
			Description: "Load an image and return its dimensions, format, color depth, and alpha channel presence.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the image file, or an s3://bucket/key URI",
					},
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
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the image file, or an s3://bucket/key URI",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

func mergeProperties(base, extra map[string]interface{}) map[string]interface{} {
	for k, v := range extra {
		base[k] = v
	}
	return base
}
