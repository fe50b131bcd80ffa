//go:build !tesslog

package tessellator

// Default build: diagnostic logging compiles away to nothing. Build
// with -tags tesslog to get the log/slog-backed versions in
// log_debug.go.

func logVertex(stage string, v *Vertex) {}
func logEdge(stage string, e *Edge)     {}
func logIntersection(p Point)           {}
