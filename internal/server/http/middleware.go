package http

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/teamadmin/internal/logging"
)

const (
	headerRequestID    = "X-Request-ID"
	headerForwardedFor = "X-Forwarded-For"

	ctxRequestID = "request_id"
	ctxClientIP  = "client_ip"
)

// requestID keeps an incoming X-Request-ID or assigns a fresh one, and echoes
// it back on the response.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// forwardedFor stores the client address as seen by the outermost trusted
// proxy. With hops = 1 that is the right-most X-Forwarded-For entry. With
// hops = 0, or when the header is shorter than hops, the peer address is used.
func forwardedFor(hops int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxClientIP, clientIP(c.Request, hops))
		c.Next()
	}
}

func clientIP(r *http.Request, hops int) string {
	peer := peerAddr(r)
	if hops <= 0 {
		return peer
	}

	var chain []string
	for _, h := range r.Header.Values(headerForwardedFor) {
		for _, part := range strings.Split(h, ",") {
			if p := strings.TrimSpace(part); p != "" {
				chain = append(chain, p)
			}
		}
	}
	if len(chain) < hops {
		return peer
	}
	return chain[len(chain)-hops]
}

func peerAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// accessLog writes one structured line per request.
func accessLog(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		args := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.GetString(ctxClientIP),
			"request_id", c.GetString(ctxRequestID),
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			l.Warn(c.Request.Context(), "request", args...)
			return
		}
		l.Info(c.Request.Context(), "request", args...)
	}
}

// corsConfig accepts every origin, credentials included. The origin is
// reflected because "*" is not allowed together with credentials.
func corsConfig() cors.Config {
	return cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", headerRequestID},
		ExposeHeaders:    []string{headerRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
