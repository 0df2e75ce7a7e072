package gen

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/viant/afs"

	"github.com/viant/firestore-gen/gen/config"
	"github.com/viant/firestore-gen/gen/render"
)

// Request selects the input document and the generated Java target. Empty
// fields fall back to the service configuration.
type Request struct {
	Input       string `json:"input,omitempty" description:"google-services.json path or URL"`
	Output      string `json:"output,omitempty" description:"destination path or URL, empty returns source only"`
	JavaPackage string `json:"javaPackage,omitempty" description:"java package of the generated class"`
	ClassName   string `json:"className,omitempty" description:"name of the generated class"`
}

// Response carries the generated source and where it was written.
type Response struct {
	ClassName string `json:"className"`
	Source    string `json:"source"`
	Output    string `json:"output,omitempty"`
}

// String returns the generated source.
func (r *Response) String() string { return r.Source }

// Service generates FirestoreConfig sources. It is safe for concurrent use
// once constructed.
type Service struct {
	config   *config.Config
	fs       afs.Service
	renderer *render.Renderer
	logger   *zerolog.Logger
}

// Config returns the effective configuration. Callers must treat the
// returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a zero value
// config with defaults is assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithFS overrides the abstract file storage used for input and remote output.
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = &logger
	}
}

// New constructs a service instance.
func New(opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(); err != nil {
		return nil, err
	}
	return svc, nil
}

// Run generates the source for req and emits it: to the request output when
// set, otherwise to w. A nil w with no output only returns the source.
// Nothing is written unless generation fully succeeded.
func (s *Service) Run(ctx context.Context, req *Request, w io.Writer) (*Response, error) {
	resp, err := s.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if err = s.Emit(ctx, resp, w); err != nil {
		return nil, err
	}
	return resp, nil
}
