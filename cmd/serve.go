package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/mcp"

	"github.com/viant/firestore-gen/gen/tool"
	"github.com/viant/firestore-gen/internal/log"
)

// ServeCmd launches an MCP server exposing the generator as a tool. Server
// options come from the `server` section of the config file; when absent the
// library defaults apply.
type ServeCmd struct{}

func (c *ServeCmd) Execute(_ []string) error {
	svc, err := generatorSingleton()
	if err != nil {
		return err
	}

	mcpServer, err := mcp.NewServer(tool.NewHandler(svc), svc.Config().Server)
	if err != nil {
		return err
	}

	logger := log.WithComponent("serve")
	httpSrv := mcpServer.HTTP(context.Background(), "")
	errs := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
	logger.Info().Str("addr", httpSrv.Addr).Str("tool", tool.GenerateName.String()).Msg("MCP server listening")

	// Wait for SIGINT/SIGTERM
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err = <-errs:
		return err
	case <-sigs:
	}
	logger.Info().Msg("shutting down")
	return httpSrv.Close()
}
