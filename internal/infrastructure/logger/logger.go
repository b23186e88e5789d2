package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey string

// RequestIDKey is the context key under which the HTTP middleware stores the
// request ID.
const RequestIDKey ctxKey = "request_id"

// Options configures the process logger.
type Options struct {
	Level  string    // trace|debug|info|warn|error
	Format string    // text|json
	File   string    // optional rotating log file, in addition to Output
	Output io.Writer // defaults to stdout
}

var (
	mu  sync.RWMutex
	std = newLogger(Options{})
)

// Init replaces the process logger. It is called once from the CLI before any
// component logs.
func Init(opts Options) *logrus.Logger {
	l := newLogger(opts)
	mu.Lock()
	std = l
	mu.Unlock()
	return l
}

// L returns the process logger.
func L() *logrus.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return std
}

// SetOutput redirects the process logger; tests use it to capture or silence
// output.
func SetOutput(w io.Writer) {
	L().SetOutput(w)
}

func newLogger(opts Options) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	}

	var out io.Writer = os.Stdout
	if opts.Output != nil {
		out = opts.Output
	}
	if opts.File != "" {
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}
	l.SetOutput(out)
	return l
}

// ContextWithRequestID returns a copy of ctx carrying id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithContext returns an entry bound to ctx with the request ID attached.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := L().WithContext(ctx)
	if id := RequestID(ctx); id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry
}
