package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/firestore-gen/gen/config"
	"github.com/viant/firestore-gen/gen/credentials"
	"github.com/viant/firestore-gen/gen/render"
)

// ErrInputNotFound is returned when the credentials document does not exist
// or cannot be opened.
var ErrInputNotFound = errors.New("input not found")

// Load reads and parses the credentials document at URL (local path or afs
// URL).
func (s *Service) Load(ctx context.Context, URL string) (*credentials.Project, error) {
	location, err := resolve(URL)
	if err != nil {
		return nil, err
	}
	exists, err := s.fs.Exists(ctx, location)
	if err != nil || !exists {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, URL)
	}
	data, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, URL, err)
	}
	s.logger.Debug().Str("input", URL).Int("bytes", len(data)).Msg("loaded credentials document")

	project, err := credentials.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	if err = project.Validate(); err != nil {
		s.logger.Warn().Str("input", URL).Err(err).Msg("credentials contain empty values")
	}
	return project, nil
}

// Generate renders the FirestoreConfig source for req into memory.
func (s *Service) Generate(ctx context.Context, req *Request) (*Response, error) {
	target := s.target(req)
	if err := config.ValidateTarget(target.JavaPackage, target.ClassName); err != nil {
		return nil, err
	}
	project, err := s.Load(ctx, target.Input)
	if err != nil {
		return nil, err
	}
	var source bytes.Buffer
	data := &render.Data{Package: target.JavaPackage, ClassName: target.ClassName, Project: *project}
	if err = s.renderer.Render(&source, data); err != nil {
		return nil, err
	}
	return &Response{ClassName: target.ClassName, Source: source.String(), Output: target.Output}, nil
}

// target merges req over the configured defaults.
func (s *Service) target(req *Request) *Request {
	ret := &Request{
		Input:       s.config.Input,
		Output:      s.config.Output,
		JavaPackage: s.config.JavaPackage,
		ClassName:   s.config.ClassName,
	}
	if req == nil {
		return ret
	}
	if req.Input != "" {
		ret.Input = req.Input
	}
	if req.Output != "" {
		ret.Output = req.Output
	}
	if req.JavaPackage != "" {
		ret.JavaPackage = req.JavaPackage
	}
	if req.ClassName != "" {
		ret.ClassName = req.ClassName
	}
	return ret
}

func isURL(location string) bool {
	return strings.Contains(location, "://")
}

// resolve turns a local path into an absolute file URL; URLs pass through.
func resolve(location string) (string, error) {
	if location == "" {
		return "", fmt.Errorf("%w: empty location", ErrInputNotFound)
	}
	if isURL(location) {
		return location, nil
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", location, err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}
