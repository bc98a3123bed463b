package mw

import (
	"bytes"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// ResponseCache pairs an in-memory response store with a flush generation
// counter. The counter closes the read-then-set race: a GET that snapshotted
// its response before a concurrent write flushed the cache must not store
// that stale snapshot afterwards, or reads issued after the completed write
// could miss its record until TTL expiry.
type ResponseCache struct {
	store *cache.Cache
	ttl   time.Duration
	gen   atomic.Uint64
}

// NewResponseCache creates a response cache whose entries expire after ttl.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		store: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

type cachedResponse struct {
	status  int
	headers http.Header
	body    []byte
}

type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Middleware serves GET responses from the cache, keyed by request URI, and
// stores successful misses unless a flush happened while the response was
// being built.
func (rc *ResponseCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.RequestURI
		if resp, found := rc.store.Get(key); found {
			cached := resp.(cachedResponse)
			for k, v := range cached.headers {
				c.Writer.Header()[k] = v
			}
			c.Writer.WriteHeader(cached.status)
			c.Writer.Write(cached.body)
			c.Abort()
			return
		}

		genBefore := rc.gen.Load()
		cw := &captureWriter{body: bytes.NewBuffer(nil), ResponseWriter: c.Writer}
		c.Writer = cw

		c.Next()

		if cw.Status() < 200 || cw.Status() >= 300 {
			return
		}
		// A write flushed the cache mid-request; this body may predate it.
		if rc.gen.Load() != genBefore {
			return
		}
		rc.store.Set(key, cachedResponse{
			status:  cw.Status(),
			headers: cw.Header().Clone(),
			body:    cw.body.Bytes(),
		}, rc.ttl)
	}
}

// Invalidate flushes the cache after every successful mutating request, so
// reads that follow a write always see the appended record.
func (rc *ResponseCache) Invalidate() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet {
			return
		}
		if status := c.Writer.Status(); status >= 200 && status < 300 {
			rc.flush()
		}
	}
}

func (rc *ResponseCache) flush() {
	rc.gen.Add(1)
	rc.store.Flush()
}
