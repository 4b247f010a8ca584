package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

type ctxKey struct{}

var logger = log.New()

func init() {
	Configure(os.Getenv("ENV"), os.Getenv("LOG_TO_FILE") == "true", os.Getenv("LOG_LEVEL"))
}

// Configure sets the output, formatter and level. File logging only applies
// to stage/prod (or unset) environments and falls back to stdout.
func Configure(env string, logToFile bool, level string) {
	logger.Out = os.Stdout
	if logToFile && (env == "stage" || env == "prod" || env == "") {
		if out, err := openLogFile(env); err != nil {
			log.Warnf("Failed to open log file: %v, falling back to stdout", err)
		} else {
			logger.Out = out
		}
	}

	logger.Formatter = &log.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)
}

func openLogFile(env string) (io.Writer, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	logsDir := filepath.Join(cwd, "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, err
	}
	filePath := filepath.Join(logsDir, fmt.Sprintf("%s%s.log", time.Now().Format("2006-01-02"), env))
	return os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
}

// SetOutput redirects the logger, mainly for tests.
func SetOutput(w io.Writer) {
	logger.Out = w
}

func GetLogger() *log.Entry {
	return callerEntry(2)
}

// WithContext is GetLogger plus the request id stored by ContextWithRequestID.
func WithContext(ctx context.Context) *log.Entry {
	entry := callerEntry(2)
	if id := RequestID(ctx); id != "" {
		entry = entry.WithField("requestId", id)
	}
	return entry
}

func callerEntry(skip int) *log.Entry {
	function, file, line, _ := runtime.Caller(skip)
	fields := log.Fields{
		"file": file,
		"line": line,
	}
	if fn := runtime.FuncForPC(function); fn != nil {
		fields["function"] = fn.Name()
	}
	return logger.WithFields(fields)
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
