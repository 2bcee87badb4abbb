package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"

	"github.com/textshade/img2ascii/internal/ascii"
	"github.com/textshade/img2ascii/internal/imaging"
	"github.com/textshade/img2ascii/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "ascii_convert").
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Conversion
	case "ascii_convert":
		return s.handleAsciiConvert(args)
	case "ascii_render":
		return s.handleAsciiRender(args)

	// Enumeration
	case "ascii_charsets":
		return s.handleAsciiCharsets(args)

	// Image information
	case "image_info":
		return s.handleImageInfo(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

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

// === Conversion Handlers ===

// convertArgs is the shared argument set of ascii_convert and ascii_render.
// The scale fields are pointers so an omitted field defaults to 100 while an
// explicit out-of-range value (including 0) still fails validation.
type convertArgs struct {
	Path        string   `json:"path"`
	WidthScale  *float64 `json:"width_scale"`
	HeightScale *float64 `json:"height_scale"`
	Charset     string   `json:"charset"`
	CustomChars string   `json:"custom_chars"`
	Invert      bool     `json:"invert"`
	Brightness  float64  `json:"brightness"`
	CropPreset  string   `json:"crop_preset"`
	Crop        *struct {
		StartX float64 `json:"start_x"`
		StartY float64 `json:"start_y"`
		EndX   float64 `json:"end_x"`
		EndY   float64 `json:"end_y"`
	} `json:"crop,omitempty"`
}

// params translates wire arguments into a validated-ready parameter
// snapshot. An explicit crop object wins over a named preset.
func (a convertArgs) params() (ascii.Params, error) {
	p := ascii.DefaultParams()
	if a.WidthScale != nil {
		p.WidthScale = *a.WidthScale
	}
	if a.HeightScale != nil {
		p.HeightScale = *a.HeightScale
	}
	if a.Charset != "" {
		p.Charset = a.Charset
	}
	p.CustomChars = a.CustomChars
	p.Invert = a.Invert
	p.Brightness = a.Brightness

	if a.Crop != nil {
		p.Crop = &ascii.CropRegion{
			StartX: a.Crop.StartX,
			StartY: a.Crop.StartY,
			EndX:   a.Crop.EndX,
			EndY:   a.Crop.EndY,
		}
	} else if a.CropPreset != "" {
		region, ok := ascii.CropPreset(a.CropPreset)
		if !ok {
			return p, fmt.Errorf("unknown crop preset: %s", a.CropPreset)
		}
		p.Crop = &region
	}
	return p, nil
}

// AsciiConvertResult contains the converted text and its glyph grid size.
type AsciiConvertResult struct {
	Text   string `json:"text"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleAsciiConvert(args json.RawMessage) (interface{}, error) {
	var a convertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := a.params()
	if err != nil {
		return nil, err
	}
	art, err := ascii.Convert(s.cache, a.Path, p)
	if err != nil {
		return nil, err
	}
	return &AsciiConvertResult{
		Text:   art.String(),
		Width:  art.Width,
		Height: art.Height,
	}, nil
}

type asciiRenderArgs struct {
	convertArgs
	FontSize   int    `json:"font_size"`
	Background string `json:"background"`
	TextColor  string `json:"text_color"`
}

// AsciiRenderResult contains the rendered art as a base64 PNG.
type AsciiRenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handleAsciiRender(args json.RawMessage) (interface{}, error) {
	var a asciiRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := a.params()
	if err != nil {
		return nil, err
	}

	opts := render.DefaultOptions()
	if a.FontSize != 0 {
		opts.FontSize = a.FontSize
	}
	if a.Background != "" {
		opts.Background = a.Background
	}
	if a.TextColor != "" {
		opts.TextColor = a.TextColor
	}

	art, err := ascii.Convert(s.cache, a.Path, p)
	if err != nil {
		return nil, err
	}

	img, err := render.Render(art, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode rendered image: %w", err)
	}

	bounds := img.Bounds()
	return &AsciiRenderResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// === Enumeration Handlers ===

// CharsetInfo describes one glyph-ramp preset.
type CharsetInfo struct {
	Name   string `json:"name"`
	Glyphs string `json:"glyphs"`
	Length int    `json:"length"`
}

// AsciiCharsetsResult lists the ramp and crop presets.
type AsciiCharsetsResult struct {
	Charsets    []CharsetInfo `json:"charsets"`
	CropPresets []string      `json:"crop_presets"`
}

func (s *Server) handleAsciiCharsets(json.RawMessage) (interface{}, error) {
	names := ascii.RampNames()
	charsets := make([]CharsetInfo, 0, len(names))
	for _, name := range names {
		ramp, _ := ascii.RampByName(name)
		charsets = append(charsets, CharsetInfo{
			Name:   name,
			Glyphs: string(ramp),
			Length: len(ramp),
		})
	}
	return &AsciiCharsetsResult{
		Charsets:    charsets,
		CropPresets: ascii.CropPresetNames(),
	}, nil
}

// === Image Information Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}
