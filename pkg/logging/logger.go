// Package logging provides tooling for structured logging.
// With logging, you can use context to add logging details to your call stack.
package logging

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"go.llib.dev/capkit/pkg/zerokit"
)

type Logger struct {
	Out io.Writer

	MessageKey   string
	LevelKey     string
	TimestampKey string

	// Level is the logging level.
	// The default Level is LevelInfo, or the level configured through the LOG_LEVEL environment variable.
	Level Level
	// Separator is used to separate log entries from each other.
	// By default, it is the current operation system's line separator.
	Separator string
	// MarshalFunc is used to serialise the logging message event.
	// When nil it defaults to JSON format.
	MarshalFunc func(any) ([]byte, error)
	// KeyFormatter will be used to format the logging field keys.
	KeyFormatter func(string) string
	// Hijack will hijack the logging and instead of letting it logged out to the Out,
	// the logging will be done with the Hijack function.
	Hijack HijackFunc
	// TestingTB is used to mark logging methods as helper functions.
	TestingTB testingTB

	outLock sync.Mutex
}

type HijackFunc func(ctx context.Context, level Level, msg string, fields Fields)

func (l *Logger) Debug(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelDebug, msg, ds...)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelInfo, msg, ds...)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelWarn, msg, ds...)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelError, msg, ds...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelFatal, msg, ds...)
}

func (l *Logger) Log(ctx context.Context, level Level, msg string, ds ...Detail) {
	l.tb().Helper()
	if !isLevelEnabled(l.getLevel(), level) {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	le := l.toEntry(ctx, ds)
	if l.Hijack != nil {
		l.Hijack(ctx, level, msg, Fields(le))
		return
	}
	le[l.getLevelKey()] = level
	le[l.getMessageKey()] = msg
	le[l.getTimestampKey()] = time.Now().Format(time.RFC3339)
	_ = l.write(le)
}

func (l *Logger) toEntry(ctx context.Context, ds []Detail) entry {
	le := make(entry)
	for _, d := range detailsOf(ctx) {
		d.addTo(l, le)
	}
	for _, d := range ds {
		if d == nil {
			continue
		}
		d.addTo(l, le)
	}
	return le
}

func (l *Logger) write(le entry) error {
	bs, err := l.marshalFunc()(map[string]any(le))
	if err != nil {
		return err
	}
	l.outLock.Lock()
	defer l.outLock.Unlock()
	_, err = l.writer().Write(append(bs, []byte(l.separator())...))
	return err
}

func (l *Logger) writer() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

func (l *Logger) marshalFunc() func(any) ([]byte, error) {
	if l.MarshalFunc != nil {
		return l.MarshalFunc
	}
	return json.Marshal
}

func (l *Logger) formatKey(key string) string {
	if l.KeyFormatter != nil {
		return l.KeyFormatter(key)
	}
	return key
}

func (l *Logger) getTimestampKey() string {
	return l.formatKey(zerokit.Coalesce(l.TimestampKey, "timestamp"))
}

func (l *Logger) getMessageKey() string {
	return l.formatKey(zerokit.Coalesce(l.MessageKey, "message"))
}

func (l *Logger) getLevelKey() string {
	return l.formatKey(zerokit.Coalesce(l.LevelKey, "level"))
}

func (l *Logger) separator() string {
	if l.Separator != "" {
		return l.Separator
	}
	switch os.PathSeparator {
	case '\\':
		return "\r\n"
	default:
		return "\n"
	}
}

func (l *Logger) getLevel() Level {
	if len(l.Level) == 0 {
		return defaultLevel
	}
	return l.Level
}

type testingTB interface {
	Helper()
	Cleanup(func())
}

func (l *Logger) tb() testingTB {
	if l.TestingTB != nil {
		return l.TestingTB
	}
	return nullTestingTB{}
}

type nullTestingTB struct{}

func (nullTestingTB) Helper() {}

func (nullTestingTB) Cleanup(func()) {}
