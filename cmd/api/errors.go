package main

import (
	"net/http"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) forbiddenResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.logger.Warnw("forbidden", "method", r.Method, "path", r.URL.Path, "message", message)

	writeJSONError(w, http.StatusForbidden, message)
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "message", message)

	writeJSONError(w, http.StatusBadRequest, message)
}

// conflictResponse keeps 400 for duplicates, which is what clients of this API expect.
func (app *application) conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.logger.Warnw("conflict", "method", r.Method, "path", r.URL.Path, "message", message)

	writeJSONError(w, http.StatusBadRequest, message)
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "message", message)

	writeJSONError(w, http.StatusNotFound, message)
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.logger.Warnw("unauthorized", "method", r.Method, "path", r.URL.Path, "message", message)

	writeJSONError(w, http.StatusUnauthorized, message)
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)

	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)

	writeJSONError(w, http.StatusTooManyRequests, "Too many requests from this IP, please try again later.")
}

func (app *application) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.logger.Warnw("service unavailable", "method", r.Method, "path", r.URL.Path, "message", message)

	writeJSONError(w, http.StatusServiceUnavailable, message)
}
