package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/admpub/groupbar/pkg/chart"
	"github.com/admpub/groupbar/pkg/export"
	"github.com/admpub/groupbar/pkg/storage/duckdb"
)

type GroupsRequest struct {
	Names []string `json:"names"`
}

type CategoryRequest struct {
	Name   string     `json:"name"`
	Values []*float64 `json:"values"`
}

// ValueRequest sets one cell; a null value clears it.
type ValueRequest struct {
	Category string   `json:"category"`
	Group    string   `json:"group"`
	Value    *float64 `json:"value"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List()
	if err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}
	if names == nil {
		names = []string{}
	}
	render.JSON(w, r, names)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	d, err := s.store.Load(chi.URLParam(r, `name`))
	if err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}
	render.JSON(w, r, d)
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	var d chart.Dataset
	if err := render.DecodeJSON(r.Body, &d); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	d.Name = chi.URLParam(r, `name`)
	s.mu.Lock()
	m, err := chart.FromDataset(d, s.cfg.ModelOptions()...)
	if err == nil {
		err = s.store.Save(m.Dataset())
	}
	s.mu.Unlock()
	if err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}
	render.JSON(w, r, export.NewPlan(m))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.store.Delete(chi.URLParam(r, `name`))
	s.mu.Unlock()
	if err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}
	render.NoContent(w, r)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	m, err := s.model(chi.URLParam(r, `name`))
	if err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}
	render.JSON(w, r, export.NewPlan(m))
}

func (s *Server) handleXLSX(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, `name`)
	m, err := s.model(name)
	if err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}
	w.Header().Set(`Content-Type`, `application/vnd.openxmlformats-officedocument.spreadsheetml.sheet`)
	w.Header().Set(`Content-Disposition`, fmt.Sprintf(`attachment; filename=%q`, name+`.xlsx`))
	if err = export.XLSX(w, m); err != nil {
		render.Render(w, r, ErrInternalServerError(err))
	}
}

// handleSummary needs a storage that aggregates in SQL.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	kdb, ok := s.store.(duckdb.Storager)
	if !ok {
		render.Render(w, r, ErrNotImplemented(errors.New(`unsupported storage`)))
		return
	}
	rows, err := kdb.Summary(chi.URLParam(r, `name`))
	if err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}
	render.JSON(w, r, rows)
}

func (s *Server) handleAddGroups(w http.ResponseWriter, r *http.Request) {
	var req GroupsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	s.mutate(w, r, func(m *chart.Model) error {
		return m.AddGroups(req.Names...)
	})
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	s.mutate(w, r, func(m *chart.Model) error {
		return m.AddCategory(req.Name, req.Values)
	})
}

func (s *Server) handleRemoveCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, `category`)
	s.mutate(w, r, func(m *chart.Model) error {
		return m.RemoveCategory(category)
	})
}

func (s *Server) handleSetValue(w http.ResponseWriter, r *http.Request) {
	var req ValueRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	s.mutate(w, r, func(m *chart.Model) error {
		return m.SetValue(req.Category, req.Group, req.Value)
	})
}

// mutate applies fn to the dataset named in the URL and responds with the new
// render plan.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, fn func(*chart.Model) error) {
	var plan export.Plan
	err := s.update(chi.URLParam(r, `name`), false, func(m *chart.Model) error {
		if err := fn(m); err != nil {
			return err
		}
		plan = export.NewPlan(m)
		return nil
	})
	if err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}
	render.JSON(w, r, plan)
}
