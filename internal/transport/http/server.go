package http

import (
	"fmt"
	stdhttp "net/http"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/robinsk/prat/internal/config"
	"github.com/robinsk/prat/internal/core"
)

// NewServer builds the HTTP server: the websocket endpoint, static chat
// client assets, and a few diagnostic routes.
func NewServer(session *core.Session, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), AccessLog(logger), PoweredBy())

	router.GET("/healthz", healthHandler)
	router.Any("/dump-request", dumpRequest)
	router.GET("/ws", gin.WrapH(NewWSHandler(session, logger)))
	router.StaticFile("/favicon.ico", filepath.Join(cfg.StaticDir, "favicon.ico"))
	router.NoRoute(gin.WrapH(stdhttp.FileServer(stdhttp.Dir(cfg.StaticDir))))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}

// dumpRequest echoes the request line and headers back as plain text.
// Accepts any method.
func dumpRequest(c *gin.Context) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s HTTP/%d.%d\n", c.Request.Method, c.Request.URL.RequestURI(), c.Request.ProtoMajor, c.Request.ProtoMinor)

	names := make([]string, 0, len(c.Request.Header))
	for name := range c.Request.Header {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, value := range c.Request.Header[name] {
			fmt.Fprintf(&b, "%s: %s\n", name, value)
		}
	}

	c.String(stdhttp.StatusOK, b.String())
}
