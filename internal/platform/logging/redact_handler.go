package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists HTTP header names (lowercase) whose values are never
// logged. The HTTP middleware's RedactHeaders reads the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

// sensitiveFields are attribute keys redacted wherever they appear,
// including nested groups and struct fields.
var sensitiveFields = []string{"password", "secret", "token"}

// sensitivePatterns catch credentials that slip into free-form values such
// as error strings.
var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWT: three base64url segments of at least 10 characters each.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
}

// newRedactAttr returns the masq ReplaceAttr used by every handler New builds.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePatterns)+1)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts, masq.WithFieldPrefix("secret_"))
	for _, re := range sensitivePatterns {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
