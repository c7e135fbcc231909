// Package server implements the MCP (Model Context Protocol) server for blob
// finding.
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line, and
// supports the MCP methods initialize, tools/list, tools/call and ping.
//
// # Available Tools
//
// Image information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Blob finding:
//   - biscuit_find: Label the blobs of an image file and return a colorized PNG
//   - biscuit_find_raw: Label a raw base64 RGBA buffer
//   - biscuit_find_batch: Count blobs in several files
//   - biscuit_threshold: Label the dark regions of a grayscale threshold
//   - biscuit_output: Return the raw output of the last successful call
//   - biscuit_components: Bounding boxes and areas of the last result
//   - biscuit_crop: Crop one blob from the last output
//   - biscuit_palette: Describe the session color table
//   - biscuit_noise: Write a random black-and-white test image
//
// # Session State
//
// The server owns one blob-finding session. Every successful find replaces
// the session output, and blob colors stay the same from call to call until
// an image has more blobs than the color table covers. Tool calls are
// serialized around the session.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
