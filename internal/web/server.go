// Package web serves the air quality dashboard to browsers.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/ukaji3/aqdash-go/internal/config"
	"github.com/ukaji3/aqdash-go/internal/logging"
	"github.com/ukaji3/aqdash-go/pkg/aqdash"
	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
	"github.com/ukaji3/aqdash-go/pkg/aqdash/output"
)

// Form field names of an upload.
const (
	fieldFile   = "file"
	fieldCities = "cities"
	fieldSheet  = "sheet"
)

// Server handles dashboard uploads.
// Every upload is loaded, filtered and rendered independently; nothing is kept between requests.
type Server struct {
	cfg   config.Config
	opts  aqdash.Options
	image output.ImageOptions
}

// NewServer creates a Server. opts supplies the chart labels; the city
// selection and sheet come from each request.
func NewServer(cfg config.Config, opts aqdash.Options, image output.ImageOptions) *Server {
	return &Server{cfg: cfg, opts: opts, image: image}
}

// Router defines all routes.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	router.HandleFunc("/dashboard", s.handleDashboardPage).Methods(http.MethodPost)
	router.HandleFunc("/api/dashboard", s.handleDashboardJSON).Methods(http.MethodPost)
	router.HandleFunc("/api/chart.svg", s.handleChartImage(output.RenderSVG, "image/svg+xml")).Methods(http.MethodPost)
	router.HandleFunc("/api/chart.png", s.handleChartImage(output.RenderPNG, "image/png")).Methods(http.MethodPost)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}).Methods(http.MethodGet)

	return router
}

// Handler returns the router wrapped with CORS and request logging.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return requestLogger(c.Handler(s.Router()))
}

// ListenAndServe starts the HTTP server on the configured address.
func (s *Server) ListenAndServe() error {
	logging.Infof("Listening on %s", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}

// upload is a parsed dashboard request.
type upload struct {
	spec     *models.ChartSpec
	fileName string
	cities   string
}

// readUpload builds the chart of an uploaded file. A request without a
// file yields an upload with a nil spec.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return upload{}, err
		}
		return upload{}, NewAPIError(ErrorCodeBadRequest, fmt.Sprintf("error reading upload: %v", err), nil, http.StatusBadRequest)
	}

	u := upload{cities: r.FormValue(fieldCities)}
	opts := s.opts
	opts.Cities = aqdash.ParseCities(u.cities)
	opts.Sheet = r.FormValue(fieldSheet)

	file, header, err := r.FormFile(fieldFile)
	if errors.Is(err, http.ErrMissingFile) {
		return u, nil
	}
	if err != nil {
		return upload{}, NewAPIError(ErrorCodeBadRequest, fmt.Sprintf("error reading file: %v", err), nil, http.StatusBadRequest)
	}
	defer file.Close()

	u.fileName = header.Filename
	u.spec, err = aqdash.BuildFromReader(file, header.Filename, opts)
	if err != nil {
		return upload{}, err
	}
	logging.Debugf("Built dashboard from %s: %d series", u.fileName, len(u.spec.Series))
	return u, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, http.StatusOK, output.Page{Upload: true, Action: "/dashboard", Image: s.image})
}

func (s *Server) handleDashboardPage(w http.ResponseWriter, r *http.Request) {
	page := output.Page{Upload: true, Action: "/dashboard", Image: s.image}

	u, err := s.readUpload(w, r)
	if err != nil {
		apiErr := toAPIError(err)
		logging.Warnf("Dashboard upload failed: %v", err)
		page.Error = apiErr.Message
		s.writePage(w, apiErr.StatusCode, page)
		return
	}

	page.Spec = u.spec
	page.FileName = u.fileName
	page.Cities = u.cities
	s.writePage(w, http.StatusOK, page)
}

func (s *Server) handleDashboardJSON(w http.ResponseWriter, r *http.Request) {
	u, err := s.readUpload(w, r)
	if err != nil {
		respondWithError(w, toAPIError(err))
		return
	}
	if u.spec == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	data, err := output.ToJSON(*u.spec, false)
	if err != nil {
		respondWithError(w, toAPIError(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

type imageRenderer func(w io.Writer, spec models.ChartSpec, opts output.ImageOptions) error

func (s *Server) handleChartImage(render imageRenderer, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := s.readUpload(w, r)
		if err != nil {
			respondWithError(w, toAPIError(err))
			return
		}
		if u.spec == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var buf bytes.Buffer
		if err := render(&buf, *u.spec, s.image); err != nil {
			respondWithError(w, toAPIError(err))
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}

func (s *Server) writePage(w http.ResponseWriter, status int, page output.Page) {
	var buf bytes.Buffer
	if err := output.RenderHTML(&buf, page); err != nil {
		logging.Errorf("Failed to render page: %v", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
