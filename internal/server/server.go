// Package server serves the charts of the stored datasets as HTML pages and
// exposes a JSON API to read and mutate them.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/admpub/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/admpub/groupbar/pkg/chart"
	"github.com/admpub/groupbar/pkg/config"
	"github.com/admpub/groupbar/pkg/dataimport"
	"github.com/admpub/groupbar/pkg/storage"
)

type Server struct {
	// mu serialises the load, mutate and save cycle of every write.
	mu    sync.Mutex
	cfg   *config.Config
	store storage.Storager
}

func New(cfg *config.Config, store storage.Storager) *Server {
	return &Server{cfg: cfg, store: store}
}

// DefaultDataset is the dataset shown on the index page.
func (s *Server) DefaultDataset() string {
	if len(s.cfg.Datasets) > 0 {
		return s.cfg.Datasets[0].Name
	}
	return chart.DefaultName
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Get(`/`, func(w http.ResponseWriter, r *http.Request) {
		s.handlePage(w, r, s.DefaultDataset())
	})
	r.Get(`/datasets/{name}`, func(w http.ResponseWriter, r *http.Request) {
		s.handlePage(w, r, chi.URLParam(r, `name`))
	})
	r.Route(`/api/datasets`, func(r chi.Router) {
		r.Get(`/`, s.handleList)
		r.Route(`/{name}`, func(r chi.Router) {
			r.Get(`/`, s.handleGet)
			r.Put(`/`, s.handlePut)
			r.Delete(`/`, s.handleDelete)
			r.Get(`/layout`, s.handleLayout)
			r.Get(`/xlsx`, s.handleXLSX)
			r.Get(`/summary`, s.handleSummary)
			r.Post(`/groups`, s.handleAddGroups)
			r.Post(`/categories`, s.handleAddCategory)
			r.Delete(`/categories/{category}`, s.handleRemoveCategory)
			r.Put(`/values`, s.handleSetValue)
		})
	})
	return r
}

// ListenAndServe serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()
	log.Infof(`listening on %s`, srv.Addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Follow applies the lines of the text file at path to the named dataset as
// they are written, creating the dataset if needed.
func (s *Server) Follow(ctx context.Context, name string, path string) error {
	parser := dataimport.NewParser(nil)
	return dataimport.Follow(ctx, path, func(line string) error {
		return s.update(name, true, func(m *chart.Model) error {
			parser.Use(m)
			return parser.Parse(line)
		})
	})
}

func (s *Server) model(name string) (*chart.Model, error) {
	d, err := s.store.Load(name)
	if err != nil {
		return nil, err
	}
	return chart.FromDataset(d, s.cfg.ModelOptions()...)
}

// update loads the named dataset, applies fn and saves the result. With
// create, a missing dataset starts out empty.
func (s *Server) update(name string, create bool, fn func(*chart.Model) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.model(name)
	if err != nil {
		if !create || !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		m = chart.New(append(s.cfg.ModelOptions(), chart.WithName(name))...)
	}
	if err = fn(m); err != nil {
		return err
	}
	return s.store.Save(m.Dataset())
}
