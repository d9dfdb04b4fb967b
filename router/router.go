package router

import (
	"context"
	"time"
)

// Router holds the root routes and dispatches requests to them.
//
// Register every route before the first Dispatch; registration is not
// safe to run concurrently with dispatching.
type Router struct {
	// NotFound handles requests that match no route, or a route with an
	// empty chain. When nil a 404 with no body is sent.
	NotFound Handler
	Logger   Logger
	Meter    Meter

	roots []*Route
}

// New returns a Router that logs to logger, which may be nil.
func New(logger Logger) *Router {
	return &Router{Logger: logger}
}

// Route registers a root route. Roots are tried in registration order.
func (rt *Router) Route(method Method, path string, handlers ...Handler) *Route {
	r := newRoute(method, path, "", append([]Handler(nil), handlers...), rt.Logger)
	rt.roots = append(rt.roots, r)
	loggerOr(rt.Logger).Logf(LevelInfo, "Route created: %s %s", method, path)
	return r
}

// Routes returns the root routes in match order.
func (rt *Router) Routes() []*Route {
	return append([]*Route(nil), rt.roots...)
}

// Match returns the first route, searching roots in order and each tree
// depth-first, that matches method and path. It returns nil when none does.
func (rt *Router) Match(method Method, path string) *Route {
	for _, root := range rt.roots {
		if m := root.match(method, path); m != nil {
			return m
		}
	}
	return nil
}

// Dispatch matches r, binds its path parameters and runs the matched
// chain against w. Requests without a usable route go to NotFound.
// The first error returned by a handler is returned as is.
func (rt *Router) Dispatch(ctx context.Context, w *Response, r *Request) error {
	if ctx == nil {
		ctx = r.Context()
	}
	if _, ok := RequestIDFrom(ctx); !ok && r.ID != "" {
		ctx = WithRequestID(ctx, r.ID)
	}
	log := loggerOr(rt.Logger)
	meter := meterOr(rt.Meter)
	start := time.Now()
	defer func() {
		meter.Histogram(metricDispatchMillis, float64(time.Since(start).Milliseconds()),
			Label{Key: "method", Value: string(r.Method)})
	}()
	meter.Counter(metricRequests, 1, Label{Key: "method", Value: string(r.Method)})

	m := rt.Match(r.Method, r.Path)
	if m == nil || !m.HasHandlers() {
		if m == nil {
			log.Logf(LevelInfo, "No matching route found for %s %s", r.Method, r.Path)
		} else {
			log.Logf(LevelInfo, "No handlers found for %s %s", r.Method, r.Path)
		}
		meter.Counter(metricNotFound, 1)
		return rt.notFound(WithContext(r, ctx), w)
	}

	r.Params = m.bind(r.Path)
	err := runChain(m.handlers, w, WithContext(r, withRoute(ctx, m.fullPath)))
	if err != nil {
		meter.Counter(metricHandlerErrors, 1, Label{Key: "route", Value: m.fullPath})
	}
	return err
}

func (rt *Router) notFound(r *Request, w *Response) error {
	if rt.NotFound != nil {
		_, err := rt.NotFound.Serve(w, r)
		return err
	}
	loggerOr(rt.Logger).Logf(LevelInfo, "No route found for %s %s", r.Method, r.Path)
	return w.NotFound(nil)
}
