package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/admpub/groupbar/pkg/chart"
	"github.com/admpub/groupbar/pkg/storage"
)

// ErrResponse is the JSON body of every failed API request.
type ErrResponse struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	StatusText string `json:"status"`
	ErrorText  string `json:"error,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func newErrResponse(err error, status int) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     http.StatusText(status),
		ErrorText:      err.Error(),
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return newErrResponse(err, http.StatusBadRequest)
}

func ErrNotFound(err error) render.Renderer {
	return newErrResponse(err, http.StatusNotFound)
}

func ErrConflict(err error) render.Renderer {
	return newErrResponse(err, http.StatusConflict)
}

func ErrNotImplemented(err error) render.Renderer {
	return newErrResponse(err, http.StatusNotImplemented)
}

func ErrInternalServerError(err error) render.Renderer {
	return newErrResponse(err, http.StatusInternalServerError)
}

// ErrRender picks the response for err by the sentinel it wraps.
func ErrRender(err error) render.Renderer {
	switch {
	case errors.Is(err, chart.ErrInvalidInput):
		return ErrInvalidRequest(err)
	case errors.Is(err, chart.ErrNotFound):
		return ErrNotFound(err)
	case errors.Is(err, chart.ErrDuplicate):
		return ErrConflict(err)
	case errors.Is(err, storage.ErrUnsupported):
		return ErrNotImplemented(err)
	default:
		return ErrInternalServerError(err)
	}
}
