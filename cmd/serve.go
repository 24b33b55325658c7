package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"briefly/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	serveAddr string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the summarization service",
	Long: `Starts the HTTP service the summarize and notes commands talk to.
It exposes POST /summarize, POST /generate_notes, GET /health and GET /metrics,
backed by the configured completion provider (Gemini by default).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		if serveAddr != "" {
			appInstance.Config.Server.Addr = serveAddr
		}
		if servePort != "" {
			appInstance.Config.Server.Port = servePort
		}

		if err := appInstance.InitBackend(cmd.Context()); err != nil {
			return fmt.Errorf("failed to initialize backend: %w", err)
		}
		defer appInstance.Close()

		if !verbose {
			gin.SetMode(gin.ReleaseMode)
		}
		metrics := server.NewMetrics()
		provider := appInstance.CompletionService
		metrics.SetProvider(provider.Name(), provider.ModelName())
		router := server.NewRouter(server.NewAPIHandler(appInstance.NoteService), metrics)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		listenAddr := net.JoinHostPort(appInstance.Config.Server.Addr, appInstance.Config.Server.Port)
		return server.Run(ctx, listenAddr, router)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default from server.addr, 'localhost')")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default from server.port, 5000)")
}
