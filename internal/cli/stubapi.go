package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/five82/carlot/internal/stubapi"
)

const shutdownTimeout = 5 * time.Second

func newStubAPICmd(v *viper.Viper) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "stub-api",
		Short: "Serve the simulated dataset on a local /v1/cars endpoint",
		Long: `stub-api serves the bundled dataset shaped like the real cars API so
carlot can be exercised offline:

  carlot stub-api --addr 127.0.0.1:8089 --api-key dev
  carlot --api-url http://127.0.0.1:8089 --api-key dev`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(v)
			if err != nil {
				return err
			}
			return serveStub(cmd.Context(), stubapi.NewHTTPServer(addr, cfg.APIKey))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8089", "listen address")
	return cmd
}

func serveStub(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("stub api listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve stub api: %w", err)
	case <-ctx.Done():
		log.Printf("shutting down stub api")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
