package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// auditBodyCap bounds how much of either body makes it into the log.
// Post content can be large; the first 8KB is enough to audit.
const auditBodyCap = 8 << 10

type capturingWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	if w.buf.Len() < auditBodyCap {
		w.buf.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// AuditMiddleware logs each request with its body and the response it
// produced. Bodies on the auth routes carry credentials (Google ID
// tokens in, session tokens out) and are elided.
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sensitive := strings.HasPrefix(c.Request.URL.Path, "/api/auth/")

		reqBody := "[elided]"
		if !sensitive && c.Request.Body != nil {
			raw, _ := io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))
			if len(raw) > auditBodyCap {
				raw = raw[:auditBodyCap]
			}
			reqBody = string(raw)
		}

		query := c.Request.URL.RawQuery
		if decoded, err := url.QueryUnescape(query); err == nil {
			query = decoded
		}

		log.InfoContext(ctx, "request received",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", query,
			"body", reqBody,
		)

		w := &capturingWriter{buf: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		start := time.Now()

		c.Next()

		resBody := w.buf.String()
		if sensitive {
			resBody = "[elided]"
		}
		log.InfoContext(ctx, "request completed",
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"body", resBody,
		)
	}
}
