package gen

import (
	"github.com/viant/afs"

	"github.com/viant/firestore-gen/gen/config"
	"github.com/viant/firestore-gen/gen/render"
	"github.com/viant/firestore-gen/internal/log"
)

// init applies defaults for dependencies not supplied through options and
// validates the configuration so that a bad Java target fails before any
// input is read.
func (s *Service) init() error {
	if s.config == nil {
		s.config = &config.Config{}
	}
	s.config.Init()
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.logger == nil {
		logger := log.WithComponent("generator")
		s.logger = &logger
	}
	s.renderer = render.New()
	return nil
}
