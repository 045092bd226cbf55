// Package responsewriter provides an http.ResponseWriter wrapper that
// records the response status code and body size for logging and metrics.
package responsewriter

import "net/http"

// Writer wraps http.ResponseWriter and records what passes through it.
type Writer struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	wroteHeader  bool
}

// Wrap returns a recording wrapper around w. The status code defaults to
// 200 OK, matching net/http's implicit WriteHeader on first Write.
func Wrap(w http.ResponseWriter) *Writer {
	return &Writer{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader records the status code and forwards it. Only the first call
// counts, as in net/http.
func (w *Writer) WriteHeader(code int) {
	if !w.wroteHeader {
		w.statusCode = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// Write forwards the body bytes and accumulates the written size.
func (w *Writer) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

// StatusCode returns the recorded status code.
func (w *Writer) StatusCode() int {
	return w.statusCode
}

// BytesWritten returns the number of body bytes written so far.
func (w *Writer) BytesWritten() int {
	return w.bytesWritten
}
