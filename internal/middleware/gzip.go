package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// compressibleTypes типы ответов, которые сжимаются
var compressibleTypes = map[string]struct{}{
	"application/json": {},
	"text/plain":       {},
	"text/html":        {},
}

// gzipReader распаковывает тело запроса и закрывает исходный body вместе с собой
type gzipReader struct {
	body io.ReadCloser
	*gzip.Reader
}

func newGzipReader(body io.ReadCloser) (*gzipReader, error) {
	zr, err := gzip.NewReader(body)
	if err != nil {
		return nil, err
	}

	return &gzipReader{body: body, Reader: zr}, nil
}

func (r *gzipReader) Close() error {
	if err := r.Reader.Close(); err != nil {
		return err
	}
	return r.body.Close()
}

// isCompressible проверяет Content-Type без параметров
func isCompressible(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	_, ok := compressibleTypes[strings.ToLower(strings.TrimSpace(mediaType))]
	return ok
}

// gzipResponseWriter решает, сжимать ли ответ, в момент записи заголовков.
// gzip.Writer создается только для сжимаемых ответов.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if statusCode < http.StatusMultipleChoices && isCompressible(w.Header().Get("Content-Type")) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.zw = gzip.NewWriter(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if w.zw != nil {
		return w.zw.Write(data)
	}

	return w.ResponseWriter.Write(data)
}

func (w *gzipResponseWriter) Close() error {
	if w.zw == nil {
		return nil
	}
	return w.zw.Close()
}

// Gzip распаковывает запросы с Content-Encoding: gzip
// и сжимает ответы для клиентов с Accept-Encoding: gzip
func Gzip(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				zr, err := newGzipReader(r.Body)
				if err != nil {
					logger.Warn("failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
						zap.String("method", r.Method),
					)
					http.Error(w, "Failed to decompress request body", http.StatusBadRequest)
					return
				}
				defer func() {
					if err := zr.Close(); err != nil {
						logger.Warn("failed to close gzip reader", zap.Error(err))
					}
				}()
				r.Body = zr
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Accept-Encoding")

			gw := &gzipResponseWriter{ResponseWriter: w}
			defer func() {
				if err := gw.Close(); err != nil {
					logger.Error("failed to close gzip writer",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
					)
				}
			}()

			next.ServeHTTP(gw, r)
		})
	}
}
