package cmd

import (
	"sync"

	"github.com/viant/firestore-gen/gen"
	"github.com/viant/firestore-gen/gen/config"
	"github.com/viant/firestore-gen/gen/workflow"
	"github.com/viant/firestore-gen/internal/log"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *gen.Service
	svcErr  error

	engineOnce sync.Once
	engineInst *workflow.Engine
	engineErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// generator singleton can be created lazily by whichever sub-command is
// executed first.
func setConfigPath(p string) { cfgPath = p }

// generatorSingleton initialises a gen.Service only once and reuses the
// instance across sub-commands within the same CLI invocation.
func generatorSingleton() (*gen.Service, error) {
	svcOnce.Do(func() {
		var cfg *config.Config
		if cfgPath != "" {
			var err error
			if cfg, err = config.Load(cfgPath); err != nil {
				svcErr = err
				return
			}
			logger := log.WithComponent("cli")
			logger.Debug().Str("config", cfgPath).Interface("settings", cfg).Msg("loaded configuration")
		}
		svcInst, svcErr = gen.New(gen.WithConfig(cfg))
	})
	return svcInst, svcErr
}

// engineSingleton builds the Fluxor engine around the generator singleton.
func engineSingleton() (*workflow.Engine, error) {
	engineOnce.Do(func() {
		svc, err := generatorSingleton()
		if err != nil {
			engineErr = err
			return
		}
		engineInst = workflow.New(svc)
	})
	return engineInst, engineErr
}

// resetSingletons drops cached instances; used by tests running several
// commands with different configurations.
func resetSingletons() {
	cfgPath = ""
	svcOnce = sync.Once{}
	svcInst, svcErr = nil, nil
	engineOnce = sync.Once{}
	engineInst, engineErr = nil, nil
}
