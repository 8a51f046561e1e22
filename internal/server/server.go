// Package server serves the interactive flight dashboard over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/EladdadMahdi/Data-visualization/internal/dashboard"
	"github.com/EladdadMahdi/Data-visualization/internal/dataset"
	"github.com/EladdadMahdi/Data-visualization/internal/observability"
	"github.com/EladdadMahdi/Data-visualization/internal/plotpage"
	"github.com/EladdadMahdi/Data-visualization/internal/report"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Query parameters mirroring the two dashboard selectors.
const (
	paramReport = "report"
	paramYear   = "year"
)

// Request outcome labels for the request counter.
const (
	outcomeOK         = "ok"
	outcomeIncomplete = "incomplete"
	outcomeInvalid    = "invalid"
	outcomeEmpty      = "empty"
)

const selectionPrompt = "Select a report type and a year to view the charts."

// Server renders the dashboard from the immutable dataset. Each request runs
// one synchronous filter-aggregate-render cycle; the dataset is never
// mutated, so concurrent requests need no locking.
type Server struct {
	table   *dataset.Table
	builder *dashboard.Builder
	theme   plotpage.Theme
	logger  *slog.Logger
	metrics *observability.Metrics
	mux     *http.ServeMux
}

// New creates a Server over a loaded dataset.
func New(table *dataset.Table, theme plotpage.Theme, logger *slog.Logger) *Server {
	s := &Server{
		table:   table,
		builder: dashboard.New(theme),
		theme:   theme,
		logger:  logger,
		metrics: observability.NewMetrics(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.Handle("GET /healthz", observability.HealthHandler())
	mux.Handle("GET /readyz", observability.ReadyHandler(s.datasetReady))
	mux.Handle("GET /metrics", s.metrics.Handler())

	s.mux = mux

	return s
}

// Handler returns the server's root handler with request logging attached.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := httpServer.Shutdown(shutdownCtx)
		if err != nil {
			s.logger.Warn("shutdown", "error", err)
		}
	}()

	s.logger.Info("serving dashboard", "addr", addr)

	err := httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}

	return nil
}

func (s *Server) datasetReady(context.Context) error {
	if s.table == nil || s.table.Len() == 0 {
		return errors.New("dataset not loaded")
	}

	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, hr *http.Request) {
		start := time.Now()
		next.ServeHTTP(rw, hr)
		s.logger.Debug("request",
			"method", hr.Method,
			"path", hr.URL.Path,
			"query", hr.URL.RawQuery,
			"duration", time.Since(start),
		)
	})
}

// handleDashboard runs the per-request cycle: read the selection, filter by
// year, aggregate, and render five chart sections.
func (s *Server) handleDashboard(rw http.ResponseWriter, hr *http.Request) {
	start := time.Now()

	modeParam := hr.URL.Query().Get(paramReport)
	yearParam := hr.URL.Query().Get(paramYear)

	page, mode, outcome := s.buildPage(modeParam, yearParam)

	s.metrics.RequestsTotal.WithLabelValues(mode, outcome).Inc()
	s.metrics.RequestDuration.Observe(time.Since(start).Seconds())

	rw.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := page.Render(rw)
	if err != nil {
		s.logger.Error("render dashboard", "error", err)
	}
}

// buildPage resolves the selection into a page. An incomplete selection is
// not an error: the page shows the selectors and a prompt until both are set.
func (s *Server) buildPage(modeParam, yearParam string) (page *plotpage.Page, mode, outcome string) {
	page = plotpage.NewPage("", "")
	page.Theme = s.theme
	page.Controls = s.controls(modeParam, yearParam)

	if modeParam == "" || yearParam == "" {
		page.Notice = selectionPrompt

		return page, "none", outcomeIncomplete
	}

	year, err := strconv.Atoi(yearParam)
	if err != nil || !dataset.ValidYear(year) || !dashboard.ValidMode(modeParam) {
		page.Notice = "Unknown report type or year. " + selectionPrompt

		return page, "none", outcomeInvalid
	}

	rows := s.table.FilterYear(year)

	page.Title = fmt.Sprintf("%s — %d", dashboard.ModeLabel(modeParam), year)
	page.ExtraScripts = dashboard.ExtraScripts(modeParam)
	page.Add(s.sections(modeParam, rows)...)

	outcome = outcomeOK
	if len(rows) == 0 {
		// Charts render empty rather than failing.
		page.Notice = fmt.Sprintf("No flights recorded for %d.", year)
		outcome = outcomeEmpty
	}

	return page, modeParam, outcome
}

func (s *Server) sections(mode string, rows []dataset.FlightRecord) []plotpage.Section {
	if mode == dashboard.ModeDelay {
		return s.builder.DelaySections(report.Delay(rows))
	}

	return s.builder.PerformanceSections(report.Performance(rows))
}

func (s *Server) controls(selectedMode, selectedYear string) *plotpage.Controls {
	reports := []plotpage.SelectOption{
		{
			Value:    dashboard.ModePerformance,
			Label:    dashboard.ModeLabel(dashboard.ModePerformance),
			Selected: selectedMode == dashboard.ModePerformance,
		},
		{
			Value:    dashboard.ModeDelay,
			Label:    dashboard.ModeLabel(dashboard.ModeDelay),
			Selected: selectedMode == dashboard.ModeDelay,
		},
	}

	years := make([]plotpage.SelectOption, 0, dataset.MaxYear-dataset.MinYear+1)
	for _, y := range dataset.Years() {
		value := strconv.Itoa(y)
		years = append(years, plotpage.SelectOption{
			Value:    value,
			Label:    value,
			Selected: selectedYear == value,
		})
	}

	return &plotpage.Controls{Action: "/", Reports: reports, Years: years}
}
