package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/api-access-service/internal/platform/logging"
)

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   []string
	}{
		{format: "json", want: []string{`"level":"INFO"`, `"msg":"api access added"`}},
		{format: "text", want: []string{"level=INFO", `msg="api access added"`}},
		{format: "xml", want: []string{`"level":"INFO"`}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("api access added")

			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output = %q, want it to contain %q", out, w)
				}
			}
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level string
		log   func(*slog.Logger)
		want  bool
	}{
		{"debug passes at debug", "debug", func(l *slog.Logger) { l.Debug("loading api access") }, true},
		{"level is case insensitive", "DEBUG", func(l *slog.Logger) { l.Debug("loading api access") }, true},
		{"debug filtered at info", "info", func(l *slog.Logger) { l.Debug("loading api access") }, false},
		{"warn filtered at error", "error", func(l *slog.Logger) { l.Warn("constraint violated") }, false},
		{"unknown level filters debug", "verbose", func(l *slog.Logger) { l.Debug("loading api access") }, false},
		{"unknown level keeps info", "verbose", func(l *slog.Logger) { l.Info("api access edited") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New(tt.level, "json", &buf))

			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("record written = %v, want %v (output %q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("api access added")
	logging.New("info", "json", &infoBuf).Info("api access added")

	if !strings.Contains(debugBuf.String(), `"source"`) {
		t.Errorf("debug output = %q, want a source attribute", debugBuf.String())
	}
	if strings.Contains(infoBuf.String(), `"source"`) {
		t.Errorf("info output = %q, want no source attribute", infoBuf.String())
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	first := logging.New("info", "json", &bytes.Buffer{})
	second := logging.New("debug", "json", &bytes.Buffer{})

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext on bare context returned something other than slog.Default()")
	}

	ctx := logging.WithLogger(context.Background(), first)
	if got := logging.FromContext(ctx); got != first {
		t.Error("FromContext returned a different logger than the one stored")
	}

	ctx = logging.WithLogger(ctx, second)
	if got := logging.FromContext(ctx); got != second {
		t.Error("FromContext returned the first logger, want the replacement")
	}
}

func TestNew_RedactsCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"client secret", slog.String("client_secret", "cs-8f2a91d0"), "cs-8f2a91d0"},
		{"api secret", slog.String("api_secret", "as-77c1e0b4"), "as-77c1e0b4"},
		{"api key header", slog.String("x-api-key", "k-1234abcd"), "k-1234abcd"},
		{"authorization header", slog.String("authorization", "Basic c2hvcEE6c2VjcmV0"), "c2hvcEE6c2VjcmV0"},
		{"password", slog.String("password", "hunter2"), "hunter2"},
		{"secret prefix", slog.String("secret_rotation_key", "rk-0099"), "rk-0099"},
		{"api key prefix", slog.String("api_key_v2", "v2-abcdef"), "v2-abcdef"},
		{"bearer value under any key", slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), "eyJhbGciOiJSUzI1NiJ9"},
		{"inline api key in description", slog.String("note", "rotated api_key=sk_live_42"), "sk_live_42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("api access credential", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, want a [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_RedactsAttributesBoundWithWith(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf).With(slog.String("client_secret", "cs-bound-1"))
	logger.Warn("api access edit rejected")

	if strings.Contains(buf.String(), "cs-bound-1") {
		t.Errorf("output = %q, want bound client_secret redacted", buf.String())
	}
}

func TestNew_KeepsAPIAccessIdentifiers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("api access added",
		slog.Int64("api_access_id", 7),
		slog.String("api_client_id", "shopA-1"),
		slog.String("client_name", "Shop A"),
		slog.String("description", "release 1.2.3"),
	)

	out := buf.String()
	for _, want := range []string{`"api_access_id":7`, "shopA-1", "Shop A", "release 1.2.3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want it to contain %q", out, want)
		}
	}
}

func TestSensitiveFields_ExcludesAPIClientID(t *testing.T) {
	t.Parallel()

	if logging.SensitiveFields["api_client_id"] {
		t.Error("api_client_id is listed as sensitive, want it logged as an identifier")
	}
	for _, key := range []string{"client_secret", "api_secret"} {
		if !logging.SensitiveFields[key] {
			t.Errorf("SensitiveFields[%q] = false, want true", key)
		}
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard logger is enabled at error level, want disabled")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"trace", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := logging.ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
