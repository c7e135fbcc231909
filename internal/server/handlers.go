package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/color"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/biscuit-tools-mcp/internal/config"
	"github.com/ironsheep/biscuit-tools-mcp/internal/imaging"
	"github.com/ironsheep/biscuit-tools-mcp/internal/labelling"
	"github.com/ironsheep/biscuit-tools-mcp/internal/logger"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "biscuit_find").
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
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	log := logger.Entry(ctx).WithField("tool", params.Name)
	start := time.Now()

	result, err := s.executeTool(logger.WithLogEntry(ctx, log), params.Name, params.Arguments)
	if err != nil {
		log.WithError(err).Debug("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	log.WithField("elapsed", time.Since(start)).Debug("tool finished")

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
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Blob Finding
	case "biscuit_find":
		return s.handleFind(args)
	case "biscuit_find_raw":
		return s.handleFindRaw(args)
	case "biscuit_find_batch":
		return s.handleFindBatch(ctx, args)
	case "biscuit_threshold":
		return s.handleThreshold(args)
	case "biscuit_output":
		return s.handleOutput()
	case "biscuit_components":
		return s.handleComponents(args)
	case "biscuit_crop":
		return s.handleCrop(args)
	case "biscuit_palette":
		return s.handlePalette(args)
	case "biscuit_noise":
		return s.handleNoise(args)

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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Blob Finding Handlers ===

// FindResult summarizes one find over an image file.
type FindResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Count       int    `json:"count"`
	TableSize   int    `json:"table_size"`
	ImageBase64 string `json:"image_base64,omitempty"`
	MimeType    string `json:"mime_type,omitempty"`
}

// RawResult carries a raw RGBA buffer.
type RawResult struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Count      int    `json:"count"`
	RGBABase64 string `json:"rgba_base64"`
}

// findResult renders res as a PNG result. Callers hold s.mu.
func (s *Server) findResult(res *labelling.Result) (*FindResult, error) {
	img, err := imaging.FromRGBA(res.Width, res.Height, res.Output)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePNGBase64(img)
	if err != nil {
		return nil, err
	}
	return &FindResult{
		Width:       res.Width,
		Height:      res.Height,
		Count:       res.Count,
		TableSize:   len(s.finder.Palette()),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

type findArgs struct {
	Path       string `json:"path"`
	Background string `json:"background"`
}

func (s *Server) handleFind(args json.RawMessage) (interface{}, error) {
	var a findArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	w, h, pix := imaging.ToRGBA(img)

	s.mu.Lock()
	defer s.mu.Unlock()

	var res *labelling.Result
	if a.Background == "" {
		res, err = s.finder.Process(w, h, pix)
	} else {
		bg, perr := config.ParseHexColor(a.Background)
		if perr != nil {
			return nil, perr
		}
		var mask *labelling.Mask
		mask, err = labelling.Binarize(pix, w, h, bg)
		if err == nil {
			res, err = s.finder.ProcessMask(mask)
		}
	}
	if err != nil {
		return nil, err
	}
	return s.findResult(res)
}

type findRawArgs struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	RGBABase64 string `json:"rgba_base64"`
}

func (s *Server) handleFindRaw(args json.RawMessage) (interface{}, error) {
	var a findRawArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	pix, err := base64.StdEncoding.DecodeString(a.RGBABase64)
	if err != nil {
		return nil, errors.Wrap(err, "rgba_base64")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.finder.Process(a.Width, a.Height, pix)
	if err != nil {
		return nil, err
	}
	return &RawResult{
		Width:      res.Width,
		Height:     res.Height,
		Count:      res.Count,
		RGBABase64: base64.StdEncoding.EncodeToString(res.Output),
	}, nil
}

type findBatchArgs struct {
	Paths []string `json:"paths"`
}

// BatchEntry is the outcome for one file of a batch.
type BatchEntry struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Count  int    `json:"count"`
}

// BatchResult lists batch outcomes in input order.
type BatchResult struct {
	Files     []BatchEntry `json:"files"`
	TableSize int          `json:"table_size"`
}

// handleFindBatch decodes the files concurrently, then labels them one at a
// time in input order so table growth does not depend on scheduling.
func (s *Server) handleFindBatch(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a findBatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Paths) == 0 {
		return nil, fmt.Errorf("no paths given")
	}

	type decoded struct {
		w, h int
		pix  []byte
	}
	images := make([]decoded, len(a.Paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range a.Paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			img, err := s.cache.Load(path)
			if err != nil {
				return errors.Wrap(err, path)
			}
			w, h, pix := imaging.ToRGBA(img)
			images[i] = decoded{w: w, h: h, pix: pix}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := &BatchResult{Files: make([]BatchEntry, len(images))}
	for i, d := range images {
		res, err := s.finder.Process(d.w, d.h, d.pix)
		if err != nil {
			return nil, errors.Wrap(err, a.Paths[i])
		}
		out.Files[i] = BatchEntry{Path: a.Paths[i], Width: res.Width, Height: res.Height, Count: res.Count}
	}
	out.TableSize = len(s.finder.Palette())
	logger.Entry(ctx).WithField("files", len(images)).Debug("batch labelled")
	return out, nil
}

type thresholdArgs struct {
	Path  string `json:"path"`
	Level int    `json:"level"`
}

func (s *Server) handleThreshold(args json.RawMessage) (interface{}, error) {
	var a thresholdArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Level == 0 {
		a.Level = 128
	}
	if a.Level < 1 || a.Level > 255 {
		return nil, fmt.Errorf("level %d outside 1-255", a.Level)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	mask := labelling.ThresholdMask(img, uint8(a.Level))

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.finder.ProcessMask(mask)
	if err != nil {
		return nil, err
	}
	return s.findResult(res)
}

func (s *Server) handleOutput() (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.finder.Last()
	if err != nil {
		return nil, err
	}
	return &RawResult{
		Width:      res.Width,
		Height:     res.Height,
		Count:      res.Count,
		RGBABase64: base64.StdEncoding.EncodeToString(res.Output),
	}, nil
}

type componentsArgs struct {
	MinArea int `json:"min_area"`
}

// ComponentInfo describes one blob.
type ComponentInfo struct {
	labelling.Component
	Color string `json:"color"`
}

// ComponentsResult lists the blobs of the last find.
type ComponentsResult struct {
	Components []ComponentInfo `json:"components"`
	Count      int             `json:"count"`
	Total      int             `json:"total"`
}

func (s *Server) handleComponents(args json.RawMessage) (interface{}, error) {
	var a componentsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	s.mu.Lock()
	comps, err := s.finder.Components()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	out := &ComponentsResult{Components: make([]ComponentInfo, 0, len(comps)), Total: len(comps)}
	for _, c := range comps {
		if c.Area < a.MinArea {
			continue
		}
		out.Components = append(out.Components, ComponentInfo{
			Component: c,
			Color:     fmt.Sprintf("#%02X%02X%02X", c.Color.R, c.Color.G, c.Color.B),
		})
	}
	out.Count = len(out.Components)
	return out, nil
}

type cropArgs struct {
	Label   int     `json:"label"`
	Padding int     `json:"padding"`
	Scale   float64 `json:"scale"`
}

func (s *Server) handleCrop(args json.RawMessage) (interface{}, error) {
	var a cropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if a.Padding < 0 {
		return nil, fmt.Errorf("padding %d is negative", a.Padding)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.finder.Last()
	if err != nil {
		return nil, err
	}
	if a.Label < 1 || a.Label > res.Count {
		return nil, fmt.Errorf("label %d not found: last find has labels 1-%d", a.Label, res.Count)
	}
	comps, err := s.finder.Components()
	if err != nil {
		return nil, err
	}
	img, err := imaging.FromRGBA(res.Width, res.Height, res.Output)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, comps[a.Label-1].Bounds, a.Padding, a.Scale)
}

type paletteArgs struct {
	Limit int `json:"limit"`
}

func (s *Server) handlePalette(args json.RawMessage) (interface{}, error) {
	var a paletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	s.mu.Lock()
	table := s.finder.Palette()
	if a.Limit == 0 {
		if res, err := s.finder.Last(); err == nil && res.Count > 0 {
			a.Limit = res.Count
		}
	}
	s.mu.Unlock()

	return imaging.DescribePalette(table, a.Limit), nil
}

type noiseArgs struct {
	Path    string   `json:"path"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Density *float64 `json:"density"`
	Seed    int64    `json:"seed"`
}

// NoiseResult describes a generated test image.
type NoiseResult struct {
	Path        string `json:"path"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	BlackPixels int    `json:"black_pixels"`
}

func (s *Server) handleNoise(args json.RawMessage) (interface{}, error) {
	var a noiseArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	density := 0.05
	if a.Density != nil {
		density = *a.Density
	}
	if a.Seed == 0 {
		a.Seed = 1
	}

	img, err := imaging.GenerateNoise(a.Width, a.Height, density, a.Seed)
	if err != nil {
		return nil, err
	}
	if err := imaging.SavePNG(img, a.Path); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Path)

	return &NoiseResult{
		Path:        a.Path,
		Width:       a.Width,
		Height:      a.Height,
		BlackPixels: imaging.CountColor(img, color.RGBA{A: 255}),
	}, nil
}
