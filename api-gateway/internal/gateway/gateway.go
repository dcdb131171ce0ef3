package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"restoran/logging"
	"restoran/metrics"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	MenuSvcURL      string
	FeedbackSvcURL  string
	AnalyticsSvcURL string
	CartSvcURL      string
	FrontendDir     string
	SecureCookies   bool
	AllowedOrigins  []string
}

type Gateway struct {
	config Config
	client HTTPClient
	logger zerolog.Logger
}

func NewGateway(config Config, client HTTPClient, logger zerolog.Logger) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		logger: logger,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// hopHeaders are meaningful for a single connection only.
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	url := strings.TrimSuffix(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}
	g.logger.Debug().Str("method", r.Method).Str("path", r.URL.Path).Str("target", url).Msg("proxy")

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.logger.Error().Err(err).Str("target", url).Msg("failed to create request")
		http.Error(w, "Bad gateway", http.StatusBadGateway)
		return
	}
	req.ContentLength = r.ContentLength

	for k, v := range r.Header {
		req.Header[k] = v
	}
	for _, h := range hopHeaders {
		req.Header.Del(h)
	}
	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		if prior := r.Header.Get("X-Forwarded-For"); prior != "" {
			ip = prior + ", " + ip
		}
		req.Header.Set("X-Forwarded-For", ip)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error().Err(err).Str("target", targetURL).Msg("failed to proxy")
		http.Error(w, "Bad gateway", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	for _, h := range hopHeaders {
		w.Header().Del(h)
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warn().Err(err).Str("path", r.URL.Path).Msg("failed to copy response")
	}
}

// Upstream picks the service that owns an API or upload path. It returns ""
// for paths the gateway serves itself.
func (g *Gateway) Upstream(p string) string {
	switch {
	case hasSegmentPrefix(p, "/api/cart"), hasSegmentPrefix(p, "/api/language"):
		return g.config.CartSvcURL
	case hasSegmentPrefix(p, "/api/feedback"):
		return g.config.FeedbackSvcURL
	case hasSegmentPrefix(p, "/api/analytics"):
		return g.config.AnalyticsSvcURL
	case strings.HasPrefix(p, "/api/"), strings.HasPrefix(p, "/uploads/"):
		return g.config.MenuSvcURL
	default:
		return ""
	}
}

// hasSegmentPrefix reports whether p is prefix or continues it with a "/",
// so "/api/cart" matches "/api/cart/items/" but not "/api/cartography".
func hasSegmentPrefix(p, prefix string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	if target := g.Upstream(r.URL.Path); target != "" {
		g.ProxyRequest(w, r, target)
		return
	}
	if strings.HasPrefix(r.URL.Path, "/api") {
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}
	g.serveFrontend(w, r)
}

// serveFrontend serves files from the frontend directory. Paths that do not
// name a file get index.html so the pages can route on the client.
func (g *Gateway) serveFrontend(w http.ResponseWriter, r *http.Request) {
	name := filepath.Join(g.config.FrontendDir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if info, err := os.Stat(name); err != nil || info.IsDir() {
		name = filepath.Join(g.config.FrontendDir, "index.html")
	}
	http.ServeFile(w, r, name)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.Use(metrics.Middleware("api-gateway"))
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")
	r.HandleFunc("/api/csrf/", g.IssueCSRFToken).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)

	c := cors.New(cors.Options{
		AllowedOrigins:   g.config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", CSRFHeaderName},
		AllowCredentials: true,
	})

	return logging.Middleware(g.logger)(c.Handler(g.CSRFMiddleware(r)))
}

func StartServer(ctx context.Context, addr string, handler http.Handler, logger zerolog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("api gateway starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
