package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. It implements both
// PipelineHooks and ArtifactHooks.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to l, or to log.Default() when l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{Logger: l.WithPrefix("hooks")}
}

func (h *LogHooks) OnLoadStart(_ context.Context, source string) {
	h.Logger.Debug("load start", "source", source)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, source string, records int, d time.Duration, err error) {
	h.Logger.Debug("load complete", "source", source, "records", records, "duration", d, "err", err)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, width float64, records int) {
	h.Logger.Debug("layout start", "width", width, "records", records)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, height float64, d time.Duration, err error) {
	h.Logger.Debug("layout complete", "height", height, "duration", d, "err", err)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.Logger.Debug("render complete", "formats", formats, "duration", d, "err", err)
}

func (h *LogHooks) OnArtifact(_ context.Context, format string, size int, d time.Duration) {
	h.Logger.Debug("artifact", "format", format, "bytes", size, "duration", d)
}
