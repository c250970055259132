package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the command logger: "circuits" prefix, "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// queryTimer measures one merge query over a fixed number of junctions.
type queryTimer struct {
	logger    *log.Logger
	junctions int
	start     time.Time
}

func startQuery(l *log.Logger, junctions int) *queryTimer {
	return &queryTimer{logger: l, junctions: junctions, start: time.Now()}
}

// finish logs msg at info level with the junction count, the elapsed time
// and any extra key/value pairs, e.g.
//
//	circuits: Joined junctions junctions=1000 merges=999 elapsed=1.234s
func (q *queryTimer) finish(msg string, keyvals ...interface{}) {
	kv := append([]interface{}{"junctions", q.junctions}, keyvals...)
	kv = append(kv, "elapsed", time.Since(q.start).Round(time.Millisecond))
	q.logger.Info(msg, kv...)
}

type loggerKey struct{}

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger stored by withLogger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
