// Package router is a small HTTP/1.1 request router that works on raw
// TCP byte streams, for embedders who want a tiny HTTP layer rather
// than a web framework.
//
// Highlights
//   - Parsing: one request per connection, read in a single chunk;
//     relaxed request-line handling, case-sensitive headers, decoded
//     query values, body after the first blank line.
//   - Routing: trees of routes with {name} segments and per-route
//     methods (All matches any). Roots and children are tried in
//     registration order; a node that fully matches wins over its
//     children.
//   - Handlers: ordered chains returning Continue or Stop. A child
//     starts with a copy of its parent's chain taken when it is created.
//   - Responses: Text, Binary and JSON bodies with computed
//     Content-Type and Content-Length; one Send per response.
//   - Observability: plug-in Logger and Meter interfaces.
//
// Quick start:
//
//	rt := router.New(nil)
//	echo := rt.Route(router.GET, "/echo")
//	echo.Child(router.GET, "/{word}", router.HandlerFunc(
//	    func(w *router.Response, r *router.Request) (router.Outcome, error) {
//	        return router.Stop, w.OK(router.Text(r.Param("word")))
//	    }))
//	s := &router.Server{Addr: "localhost:4221", Router: rt}
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
//
// Not supported: keep-alive, chunked transfer encoding, multipart
// bodies, TLS, HTTP/2, compression and cookies.
package router
