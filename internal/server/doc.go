// Package server implements the MCP (Model Context Protocol) server for the
// ASCII art converter.
//
// This package provides a JSON-RPC 2.0 server that exposes the conversion
// pipeline through the MCP protocol, so MCP-compatible clients can turn
// images into ASCII art without linking the library.
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
// Conversion:
//   - ascii_convert: Convert an image to ASCII text
//   - ascii_render: Convert and render the result to a base64 PNG
//
// Enumeration:
//   - ascii_charsets: List the glyph-ramp presets and crop presets
//
// Image information:
//   - image_info: Load an image and get metadata
//   - image_dimensions: Get width and height
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded images keyed by path,
// reused across tool calls. Sources may be local paths or s3:// URIs. The
// cache persists for the lifetime of the server process.
package server
