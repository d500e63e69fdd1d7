package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"govctl/internal/config"
	"govctl/internal/envpath"
	"govctl/internal/statusbar"
	"govctl/internal/system"
	appver "govctl/internal/version"
)

// Server exposes the toolchain status over a local JSON API.
type Server struct {
	Addr      string
	Updater   *envpath.Updater
	Indicator *statusbar.Indicator
}

func (s *Server) Start(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	s.mountAPI(r)

	srv := &http.Server{Addr: s.Addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("status server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

func (s *Server) mountAPI(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})
	api.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.statusPayload())
	})
	api.POST("/refresh", func(c *gin.Context) {
		cfg, err := config.Load()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if _, err := s.Updater.Apply(c.Request.Context(), cfg); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "text": s.Indicator.Text()})
			return
		}
		c.JSON(http.StatusOK, s.statusPayload())
	})
}

func (s *Server) statusPayload() gin.H {
	p := gin.H{
		"text":  s.Indicator.Text(),
		"state": s.Updater.State().String(),
		"path0": envpath.First(),
	}
	if env, ok := s.Updater.Last(); ok {
		p["root"] = env.Root
		p["bin_dir"] = env.BinDir
		p["version"] = env.Version.String()
	}
	return p
}
