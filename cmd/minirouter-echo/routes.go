package main

import (
	"time"

	"dqx0.com/go/minirouter/internal/auth"
	"dqx0.com/go/minirouter/internal/config"
	"dqx0.com/go/minirouter/router"
)

var started = time.Now()

func routes(logger router.Logger, cfg config.Config) *router.Router {
	rt := router.New(logger)

	root := rt.Route(router.GET, "/", router.HandlerFunc(
		func(w *router.Response, r *router.Request) (router.Outcome, error) {
			return router.Stop, w.OK(nil)
		}))

	root.Child(router.GET, "/echo/{word}", router.HandlerFunc(
		func(w *router.Response, r *router.Request) (router.Outcome, error) {
			return router.Stop, w.OK(router.Text(r.Param("word")))
		}))

	root.Child(router.GET, "/user-agent", router.HandlerFunc(
		func(w *router.Response, r *router.Request) (router.Outcome, error) {
			return router.Stop, w.OK(router.Text(r.Header.Get("User-Agent")))
		}))

	rt.Route(router.POST, "/json", router.HandlerFunc(
		func(w *router.Response, r *router.Request) (router.Outcome, error) {
			id, _ := router.RequestIDFrom(r.Context())
			return router.Stop, w.Send(201, router.JSON(map[string]any{
				"id":     id,
				"query":  r.Query,
				"body":   r.Body,
				"length": len(r.Body),
			}), nil)
		}))

	if cfg.AdminTokenHash != "" {
		admin := rt.Route(router.All, "/admin", auth.BearerGuard(cfg.AdminTokenHash, logger))
		admin.Child(router.GET, "/uptime", router.HandlerFunc(
			func(w *router.Response, r *router.Request) (router.Outcome, error) {
				return router.Stop, w.OK(router.JSON(map[string]string{
					"uptime": time.Since(started).Round(time.Second).String(),
				}))
			}))
	}

	return rt
}
