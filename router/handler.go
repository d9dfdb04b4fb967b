package router

// Outcome tells the chain runner whether to call the next handler.
// The zero value is Stop.
type Outcome int

const (
	Stop Outcome = iota
	Continue
)

func (o Outcome) String() string {
	if o == Continue {
		return "continue"
	}
	return "stop"
}

// Handler is one link of a route's handler chain. Returning Continue
// passes control to the next handler; Stop or a non-nil error ends the
// chain. Errors are returned to the caller of Dispatch unchanged.
type Handler interface {
	Serve(w *Response, r *Request) (Outcome, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(w *Response, r *Request) (Outcome, error)

func (f HandlerFunc) Serve(w *Response, r *Request) (Outcome, error) {
	return f(w, r)
}

// runChain calls handlers in order until one stops or fails.
func runChain(handlers []Handler, w *Response, r *Request) error {
	for _, h := range handlers {
		out, err := h.Serve(w, r)
		if err != nil {
			return err
		}
		if out != Continue {
			return nil
		}
	}
	return nil
}
