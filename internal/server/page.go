package server

import (
	"bytes"
	"net/http"

	"github.com/go-chi/render"

	"github.com/admpub/groupbar/pkg/chartutil"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request, name string) {
	m, err := s.model(name)
	if err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}
	buf := bytes.NewBuffer(nil)
	err = chartutil.RenderPage(buf, m.Options().Title, chartutil.DatasetTable(m), chartutil.NewGroupedBar(nil, m))
	if err != nil {
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	w.Header().Set(`Content-Type`, `text/html; charset=utf-8`)
	w.Write(buf.Bytes())
}
