package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/fleetlocation/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output targets accepted by ZapConfig.Type
const (
	OutputConsole = "console"
	OutputFile    = "file"
	OutputHybrid  = "hybrid"
)

// ZapLogger is a zap logger writing JSON to stdout and/or a file, optionally forwarding to New Relic
type ZapLogger struct {
	*zap.Logger
	service string
	nrApp   *newrelic.Application
	file    *os.File
}

// ZapConfig holds zap logger configuration
type ZapConfig struct {
	Service  string
	Level    string
	Type     string
	FilePath string
	// Writer replaces stdout as the console sink when set
	Writer io.Writer
}

// newRelicCore forwards entries to the New Relic log API of the agent
type newRelicCore struct {
	level   zapcore.Level
	service string
	fields  []zapcore.Field
	nrApp   *newrelic.Application
}

func (c *newRelicCore) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level)
}

func (c *newRelicCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(append([]zapcore.Field{}, c.fields...), fields...)
	return &clone
}

func (c *newRelicCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *newRelicCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if c.nrApp == nil {
		return nil
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}
	enc.Fields["service"] = c.service
	enc.Fields["caller"] = entry.Caller.TrimmedPath()
	if entry.Stack != "" {
		enc.Fields["stacktrace"] = entry.Stack
	}

	c.nrApp.RecordLog(newrelic.LogData{
		Timestamp:  entry.Time.UnixMilli(),
		Message:    entry.Message,
		Severity:   entry.Level.String(),
		Attributes: enc.Fields,
	})
	return nil
}

func (c *newRelicCore) Sync() error {
	return nil
}

// NewZapLogger creates a zap logger from config
func NewZapLogger(config ZapConfig, nrApp *newrelic.Application) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	})

	zl := &ZapLogger{service: config.Service, nrApp: nrApp}
	var cores []zapcore.Core

	output := config.Type
	if output == "" {
		output = OutputConsole
	}
	if output != OutputFile || config.FilePath == "" {
		var w io.Writer = os.Stdout
		if config.Writer != nil {
			w = config.Writer
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(w), level))
	}
	if output != OutputConsole && config.FilePath != "" {
		if err := zl.openFile(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(zl.file), level))
	}
	if nrApp != nil {
		cores = append(cores, &newRelicCore{level: level, service: config.Service, nrApp: nrApp})
	}

	zl.Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.String("service", config.Service))
	return zl, nil
}

// InitZapLoggerFromConfig builds the service logger from application config
func InitZapLoggerFromConfig(configs *models.Config, nrApp *newrelic.Application) (*ZapLogger, error) {
	if !configs.NewRelic.ForwardLogs {
		nrApp = nil
	}
	return NewZapLogger(ZapConfig{
		Service:  configs.App.Name,
		Level:    configs.Logger.Level,
		Type:     configs.Logger.Type,
		FilePath: configs.Logger.FilePath,
	}, nrApp)
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() *ZapLogger {
	return &ZapLogger{Logger: zap.NewNop()}
}

func (zl *ZapLogger) openFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	zl.file = f
	return nil
}

// Close flushes buffered entries and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// With returns a child logger carrying fields
func (zl *ZapLogger) With(fields ...Field) *ZapLogger {
	return &ZapLogger{
		Logger:  zl.Logger.With(fields...),
		service: zl.service,
		nrApp:   zl.nrApp,
		file:    zl.file,
	}
}

// WithNewRelicContext adds trace correlation fields from a transaction
func (zl *ZapLogger) WithNewRelicContext(txn *newrelic.Transaction) *ZapLogger {
	if txn == nil {
		return zl
	}
	md := txn.GetLinkingMetadata()
	if md.TraceID == "" {
		return zl
	}
	return zl.With(zap.String("trace.id", md.TraceID), zap.String("span.id", md.SpanID))
}

// HTTPRequestLog describes a served HTTP request
type HTTPRequestLog struct {
	Method     string
	Path       string
	ClientIP   string
	RequestID  string
	StatusCode int
	Latency    time.Duration
	Err        error
}

// LogHTTPRequest logs a served request at a level derived from its status
func (zl *ZapLogger) LogHTTPRequest(txn *newrelic.Transaction, r HTTPRequestLog) {
	l := zl.WithNewRelicContext(txn).Logger.With(
		zap.Int("status", r.StatusCode),
		zap.String("latency", r.Latency.String()),
		zap.Int64("latency_ms", r.Latency.Milliseconds()),
		zap.String("client_ip", r.ClientIP),
		zap.String("method", r.Method),
		zap.String("path", r.Path),
		zap.String("request_id", r.RequestID),
	)

	switch {
	case r.StatusCode >= 500:
		if r.Err != nil {
			l.Error("Server error", zap.Error(r.Err))
		} else {
			l.Error("Server error")
		}
	case r.StatusCode >= 400:
		l.Warn("Client error")
	default:
		l.Info("Request processed")
	}
}
