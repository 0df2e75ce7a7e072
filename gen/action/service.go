package action

import (
	"context"
	"reflect"

	"github.com/viant/firestore-gen/gen"
	"github.com/viant/firestore-gen/internal/conv"
	"github.com/viant/fluxor/model/types"
)

// Name is the Fluxor service name under which the generator is registered.
const Name = "firestore/config"

// MethodGenerate renders (and optionally writes) the FirestoreConfig source.
const MethodGenerate = "generate"

// Service exposes the generator as a Fluxor action service so that build
// workflows can call it as a regular step.
type Service struct {
	gen       *gen.Service
	sigs      types.Signatures
	executors map[string]types.Executable
}

// New builds the action service around a generator.
func New(generator *gen.Service) *Service {
	s := &Service{
		gen:       generator,
		executors: map[string]types.Executable{},
	}
	s.executors[MethodGenerate] = s.generate
	s.sigs = append(s.sigs, types.Signature{
		Name:        MethodGenerate,
		Description: "Generate the FirestoreConfig Java source from a google-services.json document",
		Input:       reflect.TypeOf(&gen.Request{}),
		Output:      reflect.TypeOf(&gen.Response{}),
	})
	return s
}

func (s *Service) generate(ctx context.Context, input, output interface{}) error {
	req, err := toRequest(input)
	if err != nil {
		return err
	}
	resp, err := s.gen.Run(ctx, req, nil)
	if err != nil {
		return err
	}
	if output == nil {
		return nil
	}
	switch outPtr := output.(type) {
	case *gen.Response:
		*outPtr = *resp
	case *interface{}:
		*outPtr = resp
	default:
		return conv.Convert(resp, outPtr)
	}
	return nil
}

// toRequest accepts either a typed request or a generic map.
func toRequest(input interface{}) (*gen.Request, error) {
	switch actual := input.(type) {
	case nil:
		return &gen.Request{}, nil
	case *gen.Request:
		if actual == nil {
			return &gen.Request{}, nil
		}
		return actual, nil
	case gen.Request:
		return &actual, nil
	}
	req := &gen.Request{}
	if err := conv.Convert(input, req); err != nil {
		return nil, err
	}
	return req, nil
}

// ------------------------------------------------------------------
// types.Service implementation
// ------------------------------------------------------------------

func (s *Service) Name() string { return Name }

func (s *Service) Methods() types.Signatures { return s.sigs }

func (s *Service) Method(name string) (types.Executable, error) {
	if exec, ok := s.executors[name]; ok {
		return exec, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}
