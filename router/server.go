package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"
)

// DefaultAddr is used by ListenAndServe when Addr is empty.
const DefaultAddr = "localhost:4221"

const defaultMaxRequestBytes = 64 << 10

// Server accepts TCP connections and serves exactly one request per
// connection. The whole request must arrive in the first read.
type Server struct {
	Addr   string
	Router *Router
	Logger Logger
	Meter  Meter
	// ReadTimeout bounds the wait for the request bytes. Zero means no limit.
	ReadTimeout time.Duration
	// MaxRequestBytes is the size of the single read buffer.
	MaxRequestBytes int

	mu        sync.Mutex
	listeners map[net.Listener]struct{}
	conns     map[net.Conn]struct{}
	wg        sync.WaitGroup
	closed    bool
	baseCtx   context.Context
	cancel    context.CancelFunc
}

func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on l until Shutdown is called, handling each
// one on its own goroutine. It always returns a non-nil error; after
// Shutdown that error is ErrServerClosed.
func (s *Server) Serve(l net.Listener) error {
	if !s.trackListener(l) {
		l.Close()
		return ErrServerClosed
	}
	defer s.untrackListener(l)
	s.logf(LevelInfo, "Server is listening on %s", l.Addr())
	for {
		c, err := l.Accept()
		if err != nil {
			if s.shuttingDown() {
				return ErrServerClosed
			}
			return err
		}
		if !s.trackConn(c) {
			c.Close()
			return ErrServerClosed
		}
		go s.serveConn(c)
	}
}

func (s *Server) serveConn(c net.Conn) {
	defer s.wg.Done()
	defer s.untrackConn(c)
	defer func() {
		c.Close()
		s.logf(LevelDebug, "Connection closed: %s", c.RemoteAddr())
	}()

	meter := meterOr(s.Meter)
	meter.Counter(metricConnections, 1)

	if s.ReadTimeout > 0 {
		_ = c.SetReadDeadline(time.Now().Add(s.ReadTimeout))
	}
	buf := make([]byte, s.requestLimit())
	n, err := c.Read(buf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			s.logf(LevelDebug, "read from %s failed: %v", c.RemoteAddr(), err)
		}
		return
	}
	_ = c.SetReadDeadline(time.Time{})

	req, perr := ParseRequest(buf[:n])
	if perr != nil {
		meter.Counter(metricParseErrors, 1)
		s.logf(LevelWarn, "request %s parsed with errors: %v", req.ID, perr)
	}
	ctx := WithRequestID(s.context(), req.ID)
	req = WithContext(req, ctx)
	s.logf(LevelInfo, "Received request: %s %s (id=%s)", req.Method, req.Path, req.ID)

	res := NewResponse(c)
	defer func() {
		if p := recover(); p != nil {
			s.logf(LevelError, "panic serving %s %s (id=%s): %v", req.Method, req.Path, req.ID, p)
			meter.Counter(metricPanics, 1)
			s.fail(res)
		}
	}()

	if err := s.router().Dispatch(ctx, res, req); err != nil {
		s.logf(LevelError, "handler failed for %s %s (id=%s): %v", req.Method, req.Path, req.ID, err)
		s.fail(res)
		return
	}
	if !res.Sent() {
		s.logf(LevelDebug, "no response sent for %s %s (id=%s)", req.Method, req.Path, req.ID)
	}
}

// fail answers 500 unless the handler already responded.
func (s *Server) fail(res *Response) {
	if res.Sent() {
		return
	}
	if err := res.Send(500, nil, nil); err != nil {
		s.logf(LevelDebug, "write 500 failed: %v", err)
	}
}

// Shutdown stops accepting connections, cancels the context handed to
// in-flight requests and waits for them to finish or for ctx to expire.
// Connections still open when ctx expires are closed.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	var lerr error
	for l := range s.listeners {
		if err := l.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			lerr = errors.Join(lerr, err)
		}
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return lerr
	case <-ctx.Done():
		s.mu.Lock()
		for c := range s.conns {
			c.Close()
		}
		s.mu.Unlock()
		return errors.Join(lerr, fmt.Errorf("router: shutdown: %w", ctx.Err()))
	}
}

func (s *Server) router() *Router {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Router == nil {
		s.Router = New(s.Logger)
	}
	return s.Router
}

func (s *Server) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()
	return s.baseCtx
}

func (s *Server) initLocked() {
	if s.baseCtx == nil {
		s.baseCtx, s.cancel = context.WithCancel(context.Background())
	}
	if s.listeners == nil {
		s.listeners = make(map[net.Listener]struct{})
	}
	if s.conns == nil {
		s.conns = make(map[net.Conn]struct{})
	}
}

func (s *Server) trackListener(l net.Listener) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.initLocked()
	s.listeners[l] = struct{}{}
	return true
}

func (s *Server) untrackListener(l net.Listener) {
	s.mu.Lock()
	delete(s.listeners, l)
	s.mu.Unlock()
}

func (s *Server) trackConn(c net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.initLocked()
	s.conns[c] = struct{}{}
	s.wg.Add(1)
	return true
}

func (s *Server) untrackConn(c net.Conn) {
	s.mu.Lock()
	delete(s.conns, c)
	s.mu.Unlock()
}

func (s *Server) shuttingDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Server) requestLimit() int {
	if s.MaxRequestBytes <= 0 {
		return defaultMaxRequestBytes
	}
	return s.MaxRequestBytes
}

func (s *Server) logf(level Level, format string, args ...interface{}) {
	loggerOr(s.Logger).Logf(level, format, args...)
}
