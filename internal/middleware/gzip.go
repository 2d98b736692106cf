package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// compressReader распаковывает сжатое тело запроса
type compressReader struct {
	body io.ReadCloser
	zr   *gzip.Reader
}

func newCompressReader(body io.ReadCloser) (*compressReader, error) {
	zr, err := gzip.NewReader(body)
	if err != nil {
		return nil, err
	}

	return &compressReader{body: body, zr: zr}, nil
}

func (c *compressReader) Read(p []byte) (int, error) {
	return c.zr.Read(p)
}

func (c *compressReader) Close() error {
	if err := c.zr.Close(); err != nil {
		return err
	}
	return c.body.Close()
}

// shouldCompress проверяет, нужно ли сжимать ответ на основе Content-Type
func shouldCompress(contentType string) bool {
	// Отбрасываем параметры: "application/json; charset=utf-8" -> "application/json"
	ct := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	return ct == "application/json" || ct == "text/html"
}

// gzipResponseWriter сжимает тело ответа, если его Content-Type сжимаемый.
// Решение принимается в момент записи заголовков, gzip.Writer создается
// только когда сжатие действительно нужно
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

	if statusCode < 300 && shouldCompress(w.Header().Get("Content-Type")) {
		w.Header().Set("Content-Encoding", "gzip")
		// Длина сжатого тела неизвестна заранее
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

// Close дописывает gzip футер, если ответ сжимался
func (w *gzipResponseWriter) Close() error {
	if w.zw != nil {
		return w.zw.Close()
	}
	return nil
}

// GzipMiddleware добавляет поддержку сжатия gzip для запросов и ответов
func GzipMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Обработка входящих сжатых запросов
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				cr, err := newCompressReader(r.Body)
				if err != nil {
					logger.Error("Failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
						zap.String("method", r.Method),
						zap.String("remote_addr", r.RemoteAddr),
					)
					http.Error(w, "Failed to decompress request body", http.StatusBadRequest)
					return
				}
				defer func() {
					if err := cr.Close(); err != nil {
						logger.Warn("Failed to close compress reader",
							zap.Error(err),
							zap.String("uri", r.RequestURI),
						)
					}
				}()
				r.Body = cr
			}

			w.Header().Add("Vary", "Accept-Encoding")

			// Клиент не поддерживает gzip, отправляем несжатый ответ
			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gzipWriter := &gzipResponseWriter{ResponseWriter: w}
			defer func() {
				if err := gzipWriter.Close(); err != nil {
					logger.Error("Failed to close gzip writer",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
					)
				}
			}()

			next.ServeHTTP(gzipWriter, r)
		})
	}
}
