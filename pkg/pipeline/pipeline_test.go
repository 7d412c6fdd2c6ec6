package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/graphlift/graphlift/pkg/cache"
	"github.com/graphlift/graphlift/pkg/convert"
	"github.com/graphlift/graphlift/pkg/errors"
)

const reactDoc = `{
	"projectName": "storefront",
	"components": {
		"App": {
			"filePath": "src/App.tsx",
			"dependencies": [{"name": "Button"}],
			"children": ["Button"]
		},
		"Button": {
			"filePath": "src/Button.tsx",
			"props": [{"name": "label", "type": "string", "required": true}]
		}
	}
}`

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	r := NewRunner(fc, nil, nil)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateDirection(t *testing.T) {
	tests := []struct {
		direction string
		wantErr   bool
	}{
		{"TB", false},
		{"LR", false},
		{"BT", true},
		{"tb", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateDirection(tt.direction)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDirection(%q) error = %v, wantErr %v", tt.direction, err, tt.wantErr)
		}
	}
}

func TestRenderOptionsDefaults(t *testing.T) {
	opts := RenderOptions{}
	opts.SetDefaults()

	if opts.Format != DefaultFormat {
		t.Errorf("Format = %q, want %q", opts.Format, DefaultFormat)
	}
	if opts.Direction != DefaultDirection {
		t.Errorf("Direction = %q, want %q", opts.Direction, DefaultDirection)
	}
}

func TestRenderOptionsValidate(t *testing.T) {
	opts := RenderOptions{Format: "gif"}
	if err := opts.Validate(); err == nil {
		t.Error("invalid format should fail validation")
	}

	opts = RenderOptions{Direction: "RL"}
	if err := opts.Validate(); err == nil {
		t.Error("invalid direction should fail validation")
	}

	opts = RenderOptions{}
	if err := opts.Validate(); err != nil {
		t.Errorf("empty options should validate: %v", err)
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)

	if r.Cache == nil {
		t.Error("Cache should default to a null cache")
	}
	if r.Keyer == nil {
		t.Error("Keyer should default to the standard keyer")
	}
	if r.Logger == nil {
		t.Error("Logger should default to the package logger")
	}
}

func TestRunnerConvert(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	res, err := r.Convert(ctx, []byte(reactDoc), ConvertOptions{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if res.Format != convert.FormatReact {
		t.Errorf("Format = %q, want %q", res.Format, convert.FormatReact)
	}
	if res.CacheHit {
		t.Error("first conversion should not be a cache hit")
	}
	if len(res.Graph.Nodes) != 2 {
		t.Errorf("len(Nodes) = %d, want 2", len(res.Graph.Nodes))
	}
	if res.GraphHash == "" {
		t.Error("GraphHash should be set")
	}

	// Second conversion of the same document hits the cache.
	again, err := r.Convert(ctx, []byte(reactDoc), ConvertOptions{})
	if err != nil {
		t.Fatalf("Convert() second call error = %v", err)
	}
	if !again.CacheHit {
		t.Error("second conversion should be a cache hit")
	}
	if again.GraphHash != res.GraphHash {
		t.Errorf("GraphHash = %q, want %q", again.GraphHash, res.GraphHash)
	}
	if len(again.Graph.Nodes) != len(res.Graph.Nodes) {
		t.Errorf("cached graph has %d nodes, want %d", len(again.Graph.Nodes), len(res.Graph.Nodes))
	}
}

func TestRunnerConvertRefresh(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	if _, err := r.Convert(ctx, []byte(reactDoc), ConvertOptions{}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	res, err := r.Convert(ctx, []byte(reactDoc), ConvertOptions{Refresh: true})
	if err != nil {
		t.Fatalf("Convert() with refresh error = %v", err)
	}
	if res.CacheHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRunnerConvertPinnedFormat(t *testing.T) {
	r := newTestRunner(t)

	// A legacy per-file document would also detect as legacy; pinning
	// the format must produce the same result without detection.
	doc := `[{"fileName": "src/App.js", "exports": ["App"]}]`
	res, err := r.Convert(context.Background(), []byte(doc), ConvertOptions{Format: convert.FormatReactLegacy})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if res.Format != convert.FormatReactLegacy {
		t.Errorf("Format = %q, want %q", res.Format, convert.FormatReactLegacy)
	}
}

func TestRunnerConvertUnsupported(t *testing.T) {
	r := newTestRunner(t)

	_, err := r.Convert(context.Background(), []byte(`{"packages": ["a"]}`), ConvertOptions{})
	if err == nil {
		t.Fatal("unrecognized document should fail")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeUnsupportedFormat {
		t.Errorf("GetCode() = %q, want %q", code, errors.ErrCodeUnsupportedFormat)
	}
}

func TestRunnerConvertMalformed(t *testing.T) {
	r := newTestRunner(t)

	_, err := r.Convert(context.Background(), []byte(`{not json`), ConvertOptions{})
	if err == nil {
		t.Fatal("malformed document should fail")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidInput {
		t.Errorf("GetCode() = %q, want %q", code, errors.ErrCodeInvalidInput)
	}
}

func TestRunnerRenderDOT(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	res, err := r.Convert(ctx, []byte(reactDoc), ConvertOptions{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	art, err := r.Render(ctx, res.Graph, RenderOptions{Format: FormatDOT})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if art.CacheHit {
		t.Error("first render should not be a cache hit")
	}
	if !strings.HasPrefix(string(art.Data), "digraph") {
		t.Errorf("DOT output should start with digraph, got %q", string(art.Data[:20]))
	}

	again, err := r.Render(ctx, res.Graph, RenderOptions{Format: FormatDOT})
	if err != nil {
		t.Fatalf("Render() second call error = %v", err)
	}
	if !again.CacheHit {
		t.Error("second render should be a cache hit")
	}
	if string(again.Data) != string(art.Data) {
		t.Error("cached artifact should match the rendered one")
	}
}

func TestRunnerRenderOptionsChangeKey(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	res, err := r.Convert(ctx, []byte(reactDoc), ConvertOptions{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if _, err := r.Render(ctx, res.Graph, RenderOptions{Format: FormatDOT}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// Different direction must not hit the TB entry.
	lr, err := r.Render(ctx, res.Graph, RenderOptions{Format: FormatDOT, Direction: "LR"})
	if err != nil {
		t.Fatalf("Render() with LR error = %v", err)
	}
	if lr.CacheHit {
		t.Error("different render options should miss the cache")
	}
	if !strings.Contains(string(lr.Data), "rankdir=LR;") {
		t.Error("LR render should set rankdir=LR")
	}
}

func TestRunnerRenderInvalidFormat(t *testing.T) {
	r := newTestRunner(t)

	res, err := r.Convert(context.Background(), []byte(reactDoc), ConvertOptions{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	_, err = r.Render(context.Background(), res.Graph, RenderOptions{Format: "pdf"})
	if err == nil {
		t.Fatal("invalid render format should fail")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidFormat {
		t.Errorf("GetCode() = %q, want %q", code, errors.ErrCodeInvalidFormat)
	}
}
