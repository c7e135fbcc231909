package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/biscuit-tools-mcp/internal/config"
	"github.com/ironsheep/biscuit-tools-mcp/internal/imaging"
)

func testContext() context.Context {
	return context.Background()
}

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// createPatternImage builds an image from rows where '.' is white, '#' is
// black and 'g' is mid gray.
func createPatternImage(rows ...string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '.':
				img.Set(x, y, white)
			case 'g':
				img.Set(x, y, color.RGBA{100, 100, 100, 255})
			default:
				img.Set(x, y, black)
			}
		}
	}
	return img
}

// createTestImageFile writes img as a PNG under the test's temp dir and
// returns its path.
func createTestImageFile(t *testing.T, img image.Image) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "handler-test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// rawPixels flattens a pattern image to RGBA bytes.
func rawPixels(rows ...string) (int, int, string) {
	img := createPatternImage(rows...)
	return img.Bounds().Dx(), img.Bounds().Dy(), base64.StdEncoding.EncodeToString(img.Pix)
}

// callTool sends a tools/call request through handleRequest.
func callTool(t *testing.T, s *Server, name string, args interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{"name": name, "arguments": args}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}

	resp := s.handleRequest(testContext(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// decodeResult unpacks the JSON text of a successful tool response into v.
func decodeResult(t *testing.T, resp *MCPResponse, v interface{}) {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v (%v)", resp.Error.Message, resp.Error.Data)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatal("Result should have one content item")
	}
	text, ok := content[0]["text"].(string)
	if !ok {
		t.Fatal("content text should be a string")
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		t.Fatalf("decode result: %v", err)
	}
}

// wantToolError fails unless resp is a tool error mentioning substr.
func wantToolError(t *testing.T, resp *MCPResponse, substr string) {
	t.Helper()

	if resp.Error == nil {
		t.Fatal("Expected error response")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
	}
	data, _ := resp.Error.Data.(string)
	if !strings.Contains(data, substr) {
		t.Errorf("Error data %q does not contain %q", data, substr)
	}
}

func decodePNG(t *testing.T, b64 string) image.Image {
	t.Helper()

	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	return img
}

var twoBlobs = []string{
	"......",
	".##.#.",
	".##.#.",
	"......",
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, createPatternImage(twoBlobs...))

	var info struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Format string `json:"format"`
	}
	decodeResult(t, callTool(t, s, "image_load", map[string]interface{}{"path": path}), &info)

	if info.Width != 6 || info.Height != 4 {
		t.Errorf("size: got %dx%d, want 6x4", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
}

func TestHandleToolsCall_ImageDimensions(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, createPatternImage(twoBlobs...))

	var dims struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	decodeResult(t, callTool(t, s, "image_dimensions", map[string]interface{}{"path": path}), &dims)

	if dims.Width != 6 || dims.Height != 4 {
		t.Errorf("size: got %dx%d, want 6x4", dims.Width, dims.Height)
	}
}

func TestHandleToolsCall_NonExistentFile(t *testing.T) {
	s := newTestServer(t)
	resp := callTool(t, s, "biscuit_find", map[string]interface{}{"path": "/nonexistent/file.png"})
	wantToolError(t, resp, "")
}

func TestHandleToolsCall_Find(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, createPatternImage(twoBlobs...))

	var res FindResult
	decodeResult(t, callTool(t, s, "biscuit_find", map[string]interface{}{"path": path}), &res)

	if res.Count != 2 {
		t.Errorf("Count: got %d, want 2", res.Count)
	}
	if res.Width != 6 || res.Height != 4 {
		t.Errorf("size: got %dx%d, want 6x4", res.Width, res.Height)
	}
	if res.TableSize != 100 {
		t.Errorf("TableSize: got %d, want 100", res.TableSize)
	}
	if res.MimeType != "image/png" {
		t.Errorf("MimeType: got %s", res.MimeType)
	}

	out := decodePNG(t, res.ImageBase64)
	if _, _, _, a := out.At(0, 0).RGBA(); a != 0 {
		t.Errorf("background pixel alpha: got %d, want 0", a)
	}
	if _, _, _, a := out.At(1, 1).RGBA(); a != 0xffff {
		t.Errorf("blob pixel alpha: got %d, want opaque", a)
	}
	if c1, c2 := out.At(1, 1), out.At(2, 2); c1 != c2 {
		t.Errorf("one blob has two colors: %v and %v", c1, c2)
	}
}

func TestHandleToolsCall_Find_WithBackground(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, createPatternImage(twoBlobs...))

	// With black as background the white surround is the only blob.
	var res FindResult
	decodeResult(t, callTool(t, s, "biscuit_find", map[string]interface{}{
		"path":       path,
		"background": "#000000",
	}), &res)

	if res.Count != 1 {
		t.Errorf("Count: got %d, want 1", res.Count)
	}
}

func TestHandleToolsCall_Find_InvalidBackground(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, createPatternImage(twoBlobs...))

	resp := callTool(t, s, "biscuit_find", map[string]interface{}{"path": path, "background": "white"})
	wantToolError(t, resp, "")
}

func TestHandleToolsCall_FindRaw(t *testing.T) {
	s := newTestServer(t)
	w, h, pix := rawPixels(twoBlobs...)

	var res RawResult
	decodeResult(t, callTool(t, s, "biscuit_find_raw", map[string]interface{}{
		"width":       w,
		"height":      h,
		"rgba_base64": pix,
	}), &res)

	if res.Count != 2 {
		t.Errorf("Count: got %d, want 2", res.Count)
	}
	out, err := base64.StdEncoding.DecodeString(res.RGBABase64)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(out) != w*h*4 {
		t.Fatalf("output length: got %d, want %d", len(out), w*h*4)
	}
	if !bytes.Equal(out[0:4], []byte{0, 0, 0, 0}) {
		t.Errorf("background pixel: got %v, want transparent", out[0:4])
	}
}

func TestHandleToolsCall_FindRaw_DimensionMismatchKeepsOutput(t *testing.T) {
	s := newTestServer(t)
	w, h, pix := rawPixels(twoBlobs...)

	var first RawResult
	decodeResult(t, callTool(t, s, "biscuit_find_raw", map[string]interface{}{
		"width": w, "height": h, "rgba_base64": pix,
	}), &first)

	resp := callTool(t, s, "biscuit_find_raw", map[string]interface{}{
		"width": w + 1, "height": h, "rgba_base64": pix,
	})
	wantToolError(t, resp, "dimension mismatch")

	var last RawResult
	decodeResult(t, callTool(t, s, "biscuit_output", map[string]interface{}{}), &last)
	if diff := cmp.Diff(first, last); diff != "" {
		t.Errorf("output changed after failed call (-want +got):\n%s", diff)
	}
}

func TestHandleToolsCall_FindRaw_HugeDimensions(t *testing.T) {
	s := newTestServer(t)
	resp := callTool(t, s, "biscuit_find_raw", map[string]interface{}{
		"width": int64(1) << 61, "height": 2, "rgba_base64": "",
	})
	wantToolError(t, resp, "dimension mismatch")

	// The server stays usable after the rejected call.
	w, h, pix := rawPixels(twoBlobs...)
	var res RawResult
	decodeResult(t, callTool(t, s, "biscuit_find_raw", map[string]interface{}{
		"width": w, "height": h, "rgba_base64": pix,
	}), &res)
	if res.Count != 2 {
		t.Errorf("Count: got %d, want 2", res.Count)
	}
}

func TestHandleToolsCall_FindRaw_BadBase64(t *testing.T) {
	s := newTestServer(t)
	resp := callTool(t, s, "biscuit_find_raw", map[string]interface{}{
		"width": 1, "height": 1, "rgba_base64": "!!!",
	})
	wantToolError(t, resp, "rgba_base64")
}

func TestHandleToolsCall_Output_BeforeFind(t *testing.T) {
	s := newTestServer(t)
	wantToolError(t, callTool(t, s, "biscuit_output", map[string]interface{}{}), "no output available")
}

func TestHandleToolsCall_Components(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, createPatternImage(twoBlobs...))
	decodeResult(t, callTool(t, s, "biscuit_find", map[string]interface{}{"path": path}), &FindResult{})

	type comp struct {
		Label  uint32 `json:"label"`
		X      int    `json:"x"`
		Y      int    `json:"y"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Area   int    `json:"area"`
	}
	var res struct {
		Components []comp `json:"components"`
		Count      int    `json:"count"`
		Total      int    `json:"total"`
	}
	decodeResult(t, callTool(t, s, "biscuit_components", map[string]interface{}{}), &res)

	want := []comp{
		{Label: 1, X: 1, Y: 1, Width: 2, Height: 2, Area: 4},
		{Label: 2, X: 4, Y: 1, Width: 1, Height: 2, Area: 2},
	}
	if diff := cmp.Diff(want, res.Components); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}

	decodeResult(t, callTool(t, s, "biscuit_components", map[string]interface{}{"min_area": 3}), &res)
	if res.Count != 1 || res.Total != 2 {
		t.Errorf("min_area 3: got count %d total %d, want 1 and 2", res.Count, res.Total)
	}
}

func TestHandleToolsCall_Components_ColorMatchesOutput(t *testing.T) {
	s := newTestServer(t)
	w, h, pix := rawPixels(twoBlobs...)

	var raw RawResult
	decodeResult(t, callTool(t, s, "biscuit_find_raw", map[string]interface{}{
		"width": w, "height": h, "rgba_base64": pix,
	}), &raw)
	out, _ := base64.StdEncoding.DecodeString(raw.RGBABase64)

	var res struct {
		Components []struct {
			Label uint32 `json:"label"`
			X     int    `json:"x"`
			Y     int    `json:"y"`
			Color string `json:"color"`
		} `json:"components"`
	}
	decodeResult(t, callTool(t, s, "biscuit_components", map[string]interface{}{}), &res)

	for _, c := range res.Components {
		o := (c.Y*w + c.X) * 4
		want := strings.ToUpper(colorHex(out[o], out[o+1], out[o+2]))
		if c.Color != want {
			t.Errorf("label %d: color %s, output pixel %s", c.Label, c.Color, want)
		}
	}
}

func colorHex(r, g, b byte) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{'#',
		digits[r>>4], digits[r&15],
		digits[g>>4], digits[g&15],
		digits[b>>4], digits[b&15],
	})
}

func TestHandleToolsCall_Crop(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, createPatternImage(twoBlobs...))
	decodeResult(t, callTool(t, s, "biscuit_find", map[string]interface{}{"path": path}), &FindResult{})

	tests := []struct {
		name       string
		args       map[string]interface{}
		wantX      int
		wantWidth  int
		wantHeight int
	}{
		{"label 1", map[string]interface{}{"label": 1}, 1, 2, 2},
		{"label 2", map[string]interface{}{"label": 2}, 4, 1, 2},
		{"padding clipped", map[string]interface{}{"label": 1, "padding": 5}, 0, 6, 4},
		{"scaled", map[string]interface{}{"label": 1, "scale": 2.0}, 1, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res struct {
				X           int    `json:"x"`
				Width       int    `json:"width"`
				Height      int    `json:"height"`
				ImageBase64 string `json:"image_base64"`
			}
			decodeResult(t, callTool(t, s, "biscuit_crop", tt.args), &res)

			if res.X != tt.wantX {
				t.Errorf("X: got %d, want %d", res.X, tt.wantX)
			}
			if res.Width != tt.wantWidth || res.Height != tt.wantHeight {
				t.Errorf("size: got %dx%d, want %dx%d", res.Width, res.Height, tt.wantWidth, tt.wantHeight)
			}
			if res.ImageBase64 == "" {
				t.Error("ImageBase64 is empty")
			}
		})
	}
}

func TestHandleToolsCall_Crop_Errors(t *testing.T) {
	s := newTestServer(t)
	wantToolError(t, callTool(t, s, "biscuit_crop", map[string]interface{}{"label": 1}), "no output available")

	path := createTestImageFile(t, createPatternImage(twoBlobs...))
	decodeResult(t, callTool(t, s, "biscuit_find", map[string]interface{}{"path": path}), &FindResult{})

	wantToolError(t, callTool(t, s, "biscuit_crop", map[string]interface{}{"label": 3}), "label 3 not found")
	wantToolError(t, callTool(t, s, "biscuit_crop", map[string]interface{}{"label": 0}), "label 0 not found")
	wantToolError(t, callTool(t, s, "biscuit_crop", map[string]interface{}{"label": 1, "padding": -1}), "negative")
}

func TestHandleToolsCall_Palette(t *testing.T) {
	s := newTestServer(t)

	var res struct {
		Size    int `json:"size"`
		Entries []struct {
			Label uint32 `json:"label"`
			Hex   string `json:"hex"`
			RGBA  struct {
				A uint8 `json:"a"`
			} `json:"rgba"`
		} `json:"entries"`
	}
	decodeResult(t, callTool(t, s, "biscuit_palette", map[string]interface{}{}), &res)
	if len(res.Entries) != 99 {
		t.Errorf("entries before any find: got %d, want 99", len(res.Entries))
	}

	path := createTestImageFile(t, createPatternImage(twoBlobs...))
	decodeResult(t, callTool(t, s, "biscuit_find", map[string]interface{}{"path": path}), &FindResult{})

	decodeResult(t, callTool(t, s, "biscuit_palette", map[string]interface{}{}), &res)
	if len(res.Entries) != 2 {
		t.Fatalf("entries after find: got %d, want 2", len(res.Entries))
	}
	for i, e := range res.Entries {
		if e.Label != uint32(i+1) {
			t.Errorf("entry %d: label %d", i, e.Label)
		}
		if e.RGBA.A != 255 {
			t.Errorf("entry %d: alpha %d, want 255", i, e.RGBA.A)
		}
	}

	decodeResult(t, callTool(t, s, "biscuit_palette", map[string]interface{}{"limit": 5}), &res)
	if len(res.Entries) != 5 {
		t.Errorf("limit 5: got %d entries", len(res.Entries))
	}
}

func TestHandleToolsCall_Palette_ManyBlobs(t *testing.T) {
	s := newTestServer(t)
	path := filepath.Join(t.TempDir(), "noise.png")
	decodeResult(t, callTool(t, s, "biscuit_noise", map[string]interface{}{
		"path": path, "width": 200, "height": 200, "density": 0.1, "seed": 5,
	}), &NoiseResult{})

	var found FindResult
	decodeResult(t, callTool(t, s, "biscuit_find", map[string]interface{}{"path": path}), &found)
	if found.Count <= imaging.MaxPaletteEntries {
		t.Fatalf("noise gave only %d blobs", found.Count)
	}

	var res struct {
		Entries   []json.RawMessage `json:"entries"`
		Truncated bool              `json:"truncated"`
	}
	decodeResult(t, callTool(t, s, "biscuit_palette", map[string]interface{}{}), &res)
	if len(res.Entries) != imaging.MaxPaletteEntries || !res.Truncated {
		t.Errorf("got %d entries truncated=%v, want %d truncated", len(res.Entries), res.Truncated, imaging.MaxPaletteEntries)
	}
}

func TestHandleToolsCall_FindBatch(t *testing.T) {
	s := newTestServer(t)
	paths := []string{
		createTestImageFile(t, createPatternImage(twoBlobs...)),
		createTestImageFile(t, createPatternImage(
			"#.#.#",
			".....",
			"#.#.#",
		)),
		createTestImageFile(t, createPatternImage(".....")),
	}

	var res BatchResult
	decodeResult(t, callTool(t, s, "biscuit_find_batch", map[string]interface{}{"paths": paths}), &res)

	want := []BatchEntry{
		{Path: paths[0], Width: 6, Height: 4, Count: 2},
		{Path: paths[1], Width: 5, Height: 3, Count: 6},
		{Path: paths[2], Width: 5, Height: 1, Count: 0},
	}
	if diff := cmp.Diff(want, res.Files); diff != "" {
		t.Errorf("batch mismatch (-want +got):\n%s", diff)
	}

	// The last file becomes the session output.
	var last RawResult
	decodeResult(t, callTool(t, s, "biscuit_output", map[string]interface{}{}), &last)
	if last.Count != 0 || last.Width != 5 {
		t.Errorf("last output: got %+v", last)
	}
}

func TestHandleToolsCall_FindBatch_Errors(t *testing.T) {
	s := newTestServer(t)
	wantToolError(t, callTool(t, s, "biscuit_find_batch", map[string]interface{}{"paths": []string{}}), "no paths")

	good := createTestImageFile(t, createPatternImage(twoBlobs...))
	resp := callTool(t, s, "biscuit_find_batch", map[string]interface{}{
		"paths": []string{good, "/nonexistent/file.png"},
	})
	wantToolError(t, resp, "/nonexistent/file.png")

	// A failed decode labels nothing.
	wantToolError(t, callTool(t, s, "biscuit_output", map[string]interface{}{}), "no output available")
}

func TestHandleToolsCall_Threshold(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, createPatternImage(
		"......",
		".gg.#.",
		".gg.#.",
		"......",
	))

	tests := []struct {
		name  string
		level interface{}
		want  int
	}{
		{"default level", nil, 2},
		{"level below gray", 50, 1},
		{"level above gray", 200, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]interface{}{"path": path}
			if tt.level != nil {
				args["level"] = tt.level
			}
			var res FindResult
			decodeResult(t, callTool(t, s, "biscuit_threshold", args), &res)
			if res.Count != tt.want {
				t.Errorf("Count: got %d, want %d", res.Count, tt.want)
			}
		})
	}

	wantToolError(t, callTool(t, s, "biscuit_threshold", map[string]interface{}{"path": path, "level": 300}), "outside")
}

func TestHandleToolsCall_Noise(t *testing.T) {
	s := newTestServer(t)
	path := filepath.Join(t.TempDir(), "noise.png")

	var res NoiseResult
	decodeResult(t, callTool(t, s, "biscuit_noise", map[string]interface{}{
		"path": path, "width": 40, "height": 30, "density": 0.2, "seed": 3,
	}), &res)

	if res.Width != 40 || res.Height != 30 {
		t.Errorf("size: got %dx%d", res.Width, res.Height)
	}
	if res.BlackPixels <= 0 || res.BlackPixels >= 40*30 {
		t.Errorf("BlackPixels: got %d", res.BlackPixels)
	}

	var found FindResult
	decodeResult(t, callTool(t, s, "biscuit_find", map[string]interface{}{"path": path}), &found)
	if found.Count < 1 || found.Count > res.BlackPixels {
		t.Errorf("Count: got %d, want 1..%d", found.Count, res.BlackPixels)
	}

	var comps ComponentsResult
	decodeResult(t, callTool(t, s, "biscuit_components", map[string]interface{}{}), &comps)
	area := 0
	for _, c := range comps.Components {
		area += c.Area
	}
	if area != res.BlackPixels {
		t.Errorf("total area: got %d, want %d", area, res.BlackPixels)
	}
}

func TestHandleToolsCall_Noise_Errors(t *testing.T) {
	s := newTestServer(t)
	dir := t.TempDir()

	wantToolError(t, callTool(t, s, "biscuit_noise", map[string]interface{}{"width": 4, "height": 4}), "path is required")
	wantToolError(t, callTool(t, s, "biscuit_noise", map[string]interface{}{
		"path": filepath.Join(dir, "a.png"), "width": 0, "height": 4,
	}), "invalid noise size")
	wantToolError(t, callTool(t, s, "biscuit_noise", map[string]interface{}{
		"path": filepath.Join(dir, "b.png"), "width": 4, "height": 4, "density": 1.5,
	}), "density")
}

func TestHandleToolsCall_TableGrowth(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 7
	cfg.TableSize = 3
	log := logrus.New()
	log.SetOutput(new(bytes.Buffer))
	s := New(cfg, log)

	w, h, pix := rawPixels("#.#.#.#")
	var res FindResult
	decodeResult(t, callTool(t, s, "biscuit_find_raw", map[string]interface{}{
		"width": w, "height": h, "rgba_base64": pix,
	}), &RawResult{})

	path := createTestImageFile(t, createPatternImage("#.#"))
	decodeResult(t, callTool(t, s, "biscuit_find", map[string]interface{}{"path": path}), &res)
	if res.TableSize != 5 {
		t.Errorf("TableSize: got %d, want 5 after a 4-blob image", res.TableSize)
	}
}

func TestHandleToolsCall_InvalidTool(t *testing.T) {
	s := newTestServer(t)
	wantToolError(t, callTool(t, s, "nonexistent_tool", map[string]interface{}{}), "unknown tool")
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleRequest(testContext(), &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`{invalid json}`),
	})

	if resp.Error == nil {
		t.Fatal("Expected error for invalid params")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error code: got %d, want -32602", resp.Error.Code)
	}
}

func TestExecuteTool_MissingArguments(t *testing.T) {
	s := newTestServer(t)

	// Tools with no required arguments accept an absent arguments object.
	if _, err := s.executeTool(testContext(), "biscuit_palette", nil); err != nil {
		t.Errorf("biscuit_palette without arguments: %v", err)
	}
	if _, err := s.executeTool(testContext(), "biscuit_find", json.RawMessage(`{"path": 5}`)); err == nil {
		t.Error("expected error for wrongly typed path")
	}
}
