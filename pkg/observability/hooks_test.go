package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "rivers.csv")
	p.OnLoadComplete(ctx, "rivers.csv", 100, time.Second, nil)
	p.OnLayoutStart(ctx, 1200, 100)
	p.OnLayoutComplete(ctx, 3400, time.Second, nil)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	a := NoopArtifactHooks{}
	a.OnArtifact(ctx, "png", 1024, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Artifact().(NoopArtifactHooks); !ok {
		t.Error("Artifact() should return NoopArtifactHooks by default")
	}

	custom := &testHooks{}
	SetPipelineHooks(custom)
	SetArtifactHooks(custom)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks should set custom hooks")
	}
	if Artifact() != custom {
		t.Error("SetArtifactHooks should set custom hooks")
	}

	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should keep existing hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)
	ctx := context.Background()

	h.OnLoadStart(ctx, "rivers.csv")
	h.OnLoadComplete(ctx, "rivers.csv", 3, time.Millisecond, errors.New("boom"))
	h.OnLayoutStart(ctx, 800, 3)
	h.OnLayoutComplete(ctx, 900, time.Millisecond, nil)
	h.OnRenderStart(ctx, []string{"svg", "png"})
	h.OnRenderComplete(ctx, []string{"svg", "png"}, time.Millisecond, nil)
	h.OnArtifact(ctx, "svg", 512, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"load start", "load complete", "boom", "layout complete", "render start", "artifact", "bytes=512"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHooks(log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}))
	h.OnLoadStart(context.Background(), "rivers.csv")
	if buf.Len() != 0 {
		t.Errorf("debug events logged at info level: %q", buf.String())
	}
}

type testHooks struct {
	NoopPipelineHooks
	NoopArtifactHooks
}
