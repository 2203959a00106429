package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"syscall"

	"github.com/nakamauwu/hirechat/errs"
	"github.com/nakamauwu/hirechat/types"
	"github.com/nicolasparada/go-errs/httperrs"
)

var (
	errBadRequest    = errs.NewInvalidArgumentError(errs.CodeValidationFailed, "Body", "malformed request body")
	errRouteNotFound = errs.NewNotFoundError("NOT_FOUND", "route not found")
)

type errorBody struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
	Field   *string   `json:"field,omitempty"`
}

func (h *Handler) respond(w http.ResponseWriter, v any, statusCode int) {
	b, err := json.Marshal(v)
	if err != nil {
		h.respondErr(w, fmt.Errorf("could not json marshal http response body: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = w.Write(b)
	if err != nil && !errors.Is(err, syscall.EPIPE) && !errors.Is(err, context.Canceled) {
		h.ErrorLogger.Error("could not write down http response", "err", err)
	}
}

func (h *Handler) respondErr(w http.ResponseWriter, err error) {
	statusCode := err2code(err)

	var e *errs.Error
	if statusCode == http.StatusInternalServerError || !errors.As(err, &e) {
		if !errors.Is(err, context.Canceled) {
			h.ErrorLogger.Error("http handler", "err", err)
		}
		h.respond(w, map[string]errorBody{"error": {
			Code:    errs.CodeInternal,
			Message: "internal server error",
		}}, http.StatusInternalServerError)
		return
	}

	h.respond(w, map[string]errorBody{"error": {
		Code:    e.Code,
		Message: e.Message,
		Field:   e.Field,
	}}, statusCode)
}

func err2code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch errs.KindOf(err) {
	case errs.KindInvalidArgument:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindPermissionDenied:
		return http.StatusForbidden
	case errs.KindUnauthenticated:
		return http.StatusUnauthorized
	}

	return httperrs.Code(err)
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadRequest
	}
	return nil
}

// decodeOptionalBody is decodeBody for endpoints whose body can be omitted.
func decodeOptionalBody(r *http.Request, v any) error {
	if r.ContentLength == 0 {
		return nil
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return errBadRequest
	}
	return nil
}

func invalidQueryParam(field string) error {
	return errs.NewInvalidArgumentError(errs.CodeValidationFailed, field, "invalid "+field+" query param")
}

func parseUintParam(q url.Values, name string) (uint, error) {
	if !q.Has(name) {
		return 0, nil
	}

	n, err := strconv.ParseUint(q.Get(name), 10, 64)
	if err != nil {
		return 0, invalidQueryParam(name)
	}

	return uint(n), nil
}

func parsePageArgs(q url.Values) (types.PageArgs, error) {
	var pageArgs types.PageArgs

	if q.Has("first") {
		first, err := parseUintParam(q, "first")
		if err != nil {
			return pageArgs, err
		}

		pageArgs.First = new(first)
	}

	if q.Has("after") {
		pageArgs.After = new(q.Get("after"))
	}

	if q.Has("last") {
		last, err := parseUintParam(q, "last")
		if err != nil {
			return pageArgs, err
		}

		pageArgs.Last = new(last)
	}

	if q.Has("before") {
		pageArgs.Before = new(q.Get("before"))
	}

	return pageArgs, nil
}
