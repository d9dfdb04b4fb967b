package router

import (
	"regexp"
	"strings"
)

// paramToken finds {name} placeholders in a route pattern.
var paramToken = regexp.MustCompile(`\{(\w+)\}`)

const segmentPattern = `([^/]+)`

// Route is one node of the route tree: a method and path pattern with a
// handler chain and ordered children. Routes are built during
// registration and only read while requests are dispatched.
type Route struct {
	method   Method
	path     string
	fullPath string
	handlers []Handler
	children []*Route

	full   *regexp.Regexp
	prefix *regexp.Regexp
	logger Logger
}

func newRoute(method Method, path, parentPath string, handlers []Handler, logger Logger) *Route {
	for _, h := range handlers {
		if h == nil {
			panic("router: nil handler passed to route " + string(method) + " " + path)
		}
	}
	full := joinPath(parentPath, path)
	expr := compilePattern(full)
	return &Route{
		method:   method,
		path:     path,
		fullPath: full,
		handlers: handlers,
		full:     regexp.MustCompile("^" + expr + "$"),
		prefix:   regexp.MustCompile("^" + expr),
		logger:   loggerOr(logger),
	}
}

// joinPath appends path to parent. A parent of "" or "/" contributes
// nothing so the root never doubles the leading slash.
func joinPath(parent, path string) string {
	if parent == "" || parent == "/" {
		return path
	}
	return parent + path
}

// compilePattern turns a route pattern into a regular expression body in
// which each {name} accepts exactly one non-empty segment and everything
// else is literal.
func compilePattern(pattern string) string {
	var sb strings.Builder
	last := 0
	for _, loc := range paramToken.FindAllStringIndex(pattern, -1) {
		sb.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))
		sb.WriteString(segmentPattern)
		last = loc[1]
	}
	sb.WriteString(regexp.QuoteMeta(pattern[last:]))
	return sb.String()
}

// Method returns the method the route answers; All matches any.
func (rt *Route) Method() Method { return rt.method }

// Path returns the absolute pattern, including all ancestor paths.
func (rt *Route) Path() string { return rt.fullPath }

// HasHandlers reports whether the chain is non-empty.
func (rt *Route) HasHandlers() bool { return len(rt.handlers) > 0 }

// Children returns the child routes in match order.
func (rt *Route) Children() []*Route {
	return append([]*Route(nil), rt.children...)
}

// Handle appends handlers to the route's chain. Children created before
// this call keep the chain they were created with.
func (rt *Route) Handle(handlers ...Handler) *Route {
	for _, h := range handlers {
		if h == nil {
			panic("router: nil handler passed to Handle")
		}
	}
	rt.handlers = append(rt.handlers, handlers...)
	return rt
}

// HandleFunc is Handle for plain functions.
func (rt *Route) HandleFunc(fns ...func(*Response, *Request) (Outcome, error)) *Route {
	for _, fn := range fns {
		if fn == nil {
			panic("router: nil handler passed to HandleFunc")
		}
		rt.Handle(HandlerFunc(fn))
	}
	return rt
}

// Child creates a route below rt whose pattern is rt's pattern followed by
// path. Its chain starts with a copy of rt's current handlers followed by
// handlers. Children are tried in the order they were added.
func (rt *Route) Child(method Method, path string, handlers ...Handler) *Route {
	chain := make([]Handler, 0, len(rt.handlers)+len(handlers))
	chain = append(chain, rt.handlers...)
	chain = append(chain, handlers...)
	child := newRoute(method, path, rt.fullPath, chain, rt.logger)
	rt.children = append(rt.children, child)
	rt.logger.Logf(LevelInfo, "Route created: %s %s", method, child.fullPath)
	return child
}

// match walks the subtree depth-first. A node that matches the whole path
// and the method wins before any of its children are tried; otherwise
// children are searched only when the node's pattern is a prefix of path.
func (rt *Route) match(method Method, path string) *Route {
	if rt.method.accepts(method) && rt.full.MatchString(path) {
		return rt
	}
	if !rt.prefix.MatchString(path) {
		return nil
	}
	for _, c := range rt.children {
		if m := c.match(method, path); m != nil {
			return m
		}
	}
	return nil
}

// bind extracts {name} segments from path by position.
func (rt *Route) bind(path string) map[string]string {
	params := map[string]string{}
	pattern := strings.Split(rt.fullPath, "/")
	segments := strings.Split(path, "/")
	for i, seg := range pattern {
		if len(seg) < 3 || seg[0] != '{' || seg[len(seg)-1] != '}' {
			continue
		}
		if i >= len(segments) {
			break
		}
		params[seg[1:len(seg)-1]] = segments[i]
	}
	return params
}
