package site

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prakharpd/portfolio/internal/dom"
	"github.com/prakharpd/portfolio/internal/helpers"
)

// ViewportWidthHeader is the client hint carrying the viewport width.
const ViewportWidthHeader = "Sec-CH-Viewport-Width"

// Server renders a freshly booted page for every request.
type Server struct {
	mux      *chi.Mux
	renderer *Renderer
	deps     Deps
	width    int
	logger   *slog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithDefaultWidth sets the viewport width used when the request names none.
func WithDefaultWidth(px int) ServerOption {
	return func(s *Server) {
		s.width = px
	}
}

// WithServerLogger sets the logger.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer builds the router.
func NewServer(renderer *Renderer, deps Deps, opts ...ServerOption) *Server {
	s := &Server{
		renderer: renderer,
		deps:     deps,
		width:    1280,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = helpers.NewNoopLogger()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.preProcess)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		s.safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/style.css", s.handleStylesheet)
	r.Get("/", s.handleIndex)
	s.mux = r
	return s
}

// Mux returns the HTTP handler.
func (s *Server) Mux() http.Handler {
	return s.mux
}

// Interaction is one UI event replayed before the page is rendered.
type Interaction struct {
	Type     string
	Key      string
	Selector string
}

// ParseInteraction reads "click:<selector>" or "keydown:<key>:<selector>".
func ParseInteraction(raw string) (Interaction, error) {
	typ, rest, ok := strings.Cut(raw, ":")
	if !ok || rest == "" {
		return Interaction{}, fmt.Errorf("malformed event %q", raw)
	}
	switch typ {
	case dom.EventClick:
		return Interaction{Type: typ, Selector: rest}, nil
	case dom.EventKeyDown:
		key, selector, ok := strings.Cut(rest, ":")
		if !ok || key == "" || selector == "" {
			return Interaction{}, fmt.Errorf("malformed keydown event %q", raw)
		}
		return Interaction{Type: typ, Key: key, Selector: selector}, nil
	default:
		return Interaction{}, fmt.Errorf("unsupported event type %q", typ)
	}
}

func (s *Server) viewportWidth(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("width")
	if raw == "" {
		raw = r.Header.Get(ViewportWidthHeader)
	}
	if raw == "" {
		return s.width, nil
	}
	px, err := strconv.Atoi(raw)
	if err != nil || px < 0 {
		return 0, fmt.Errorf("invalid viewport width %q", raw)
	}
	return px, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	width, err := s.viewportWidth(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var script []Interaction
	for _, raw := range r.URL.Query()["event"] {
		in, err := ParseInteraction(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		script = append(script, in)
	}

	deps := s.deps
	deps.Logger = s.logger
	page, err := s.renderer.Load(r.Context(), &dom.Window{InnerWidth: width}, deps)
	if err != nil {
		s.logger.Error("failed to load page", slog.Any("error", err))
		s.writeError(w, http.StatusInternalServerError, "failed to load page")
		return
	}
	defer page.Close()

	for _, in := range script {
		if _, err := page.Dispatch(in.Type, in.Selector, in.Key); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, dom.ErrMissingHook) {
				status = http.StatusBadRequest
			}
			s.writeError(w, status, err.Error())
			return
		}
	}

	var buf strings.Builder
	if err := page.Render(&buf); err != nil {
		s.logger.Error("failed to render page", slog.Any("error", err))
		s.writeError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Accept-CH", ViewportWidthHeader)
	s.safeWrite(w, http.StatusOK, []byte(buf.String()))
}

func (s *Server) handleStylesheet(w http.ResponseWriter, _ *http.Request) {
	css, err := Stylesheet()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	s.safeWrite(w, http.StatusOK, css)
}

// writeError answers with a plain text body. Bodies may echo query input,
// so the type is fixed and sniffing disabled.
func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	s.safeWrite(w, code, []byte(msg))
}

func (s *Server) safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		s.logger.Error("fail to write response", slog.Any("error", err))
	}
}

func (s *Server) preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger.With(slog.String("request_id", uuid.NewString()))
		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r)

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.String("user_agent", r.UserAgent()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}
