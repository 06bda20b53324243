package format

import (
	"context"

	"github.com/ahrav/go-formatcontract/internal/domain"
)

// Request carries one contract application through the handler pipeline.
type Request struct {
	// RawText is the raw model response to validate.
	RawText string

	// Contract is the structural requirement; nil means pass-through.
	Contract *domain.Contract

	// TraceID correlates the request across middleware. Generated when
	// empty.
	TraceID string
}

// Handler processes contract applications through a composable middleware
// pipeline. The core handler is pure; cross-cutting concerns such as
// observability wrap it without touching the engine.
type Handler interface {
	Handle(ctx context.Context, req *Request) (*Result, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(context.Context, *Request) (*Result, error)

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, req *Request) (*Result, error) {
	return f(ctx, req)
}

// Middleware transforms a Handler into an enhanced Handler.
type Middleware func(Handler) Handler

// Chain builds a middleware pipeline around a core handler. Middleware
// executes in the order provided, first middleware outermost.
func Chain(h Handler, middlewares ...Middleware) Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// NewHandler returns the core handler delegating to Apply. The context is
// accepted for pipeline compatibility; the engine itself has no suspension
// points.
func NewHandler() Handler {
	return HandlerFunc(func(_ context.Context, req *Request) (*Result, error) {
		return Apply(req.RawText, req.Contract)
	})
}
