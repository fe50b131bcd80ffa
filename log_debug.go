//go:build tesslog

package tessellator

import (
	"log/slog"
	"os"
)

// Built only with -tags tesslog, mirroring original_source's
// LOGGING_ENABLED-gated TESS_LOG calls: the default build pays nothing
// for diagnostic logging, while a build tagged in gets a structured
// trace of the sweep's major decisions.

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

func logVertex(stage string, v *Vertex) {
	logger.Debug("vertex", "stage", stage, "x", v.Point[0], "y", v.Point[1], "alpha", v.Alpha)
}

func logEdge(stage string, e *Edge) {
	logger.Debug("edge", "stage", stage,
		"topX", e.Top.Point[0], "topY", e.Top.Point[1],
		"botX", e.Bottom.Point[0], "botY", e.Bottom.Point[1],
		"winding", e.Winding)
}

func logIntersection(p Point) {
	logger.Debug("intersection", "x", p[0], "y", p[1])
}
