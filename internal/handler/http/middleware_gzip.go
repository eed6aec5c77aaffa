package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip request bodies and compresses responses for
// clients that accept gzip. HEAD requests are answered uncompressed.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if acceptsEncoding(r.Header.Get("Content-Encoding")) && r.Body != nil {
			body, err := inflate(r.Body)
			if err != nil {
				http.Error(w, "invalid gzip request body", http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		w.Header().Add("Vary", "Accept-Encoding")
		if r.Method == http.MethodHead || !acceptsEncoding(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)
		defer gzipWriters.Put(zw)

		gw := &gzipResponseWriter{ResponseWriter: w, zw: zw}
		next.ServeHTTP(gw, r)

		if gw.wroteBody {
			_ = zw.Close()
		}
	})
}

func acceptsEncoding(header string) bool {
	return strings.Contains(header, "gzip")
}

// inflate returns a body reading the decompressed stream. Closing it hands
// the reader back to the pool.
func inflate(src io.ReadCloser) (io.ReadCloser, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(src); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}

	return &pooledReader{Reader: zr, release: func() {
		_ = zr.Close()
		gzipReaders.Put(zr)
	}}, nil
}

type pooledReader struct {
	io.Reader
	release func()
	once    sync.Once
}

func (p *pooledReader) Close() error {
	p.once.Do(p.release)
	return nil
}

// gzipResponseWriter compresses the body. 204 and 304 responses carry no
// body and keep no Content-Encoding.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
	wroteBody   bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if statusCode != http.StatusNoContent && statusCode != http.StatusNotModified {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	w.wroteBody = true

	return w.zw.Write(data)
}
