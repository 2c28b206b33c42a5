package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta"
	"github.com/vfg2006/fb-ads-mcp-server/internal/api/handler"
	"github.com/vfg2006/fb-ads-mcp-server/internal/config"
	"github.com/vfg2006/fb-ads-mcp-server/internal/usecases/reporting"
	"github.com/vfg2006/fb-ads-mcp-server/pkg/log"
	"github.com/vfg2006/fb-ads-mcp-server/pkg/middleware"
)

const serverName = "fb-ads-mcp-server"
const serverVersion = "1.0.0"

type Server struct {
	cfg        *config.Config
	mcpServer  *mcpserver.MCPServer
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	metaService *meta.MetaIntegrator,
	reportingService *reporting.Service,
) *Server {
	mcpServer := mcpserver.NewMCPServer(
		serverName,
		serverVersion,
		mcpserver.WithToolCapabilities(false),
	)

	s := &Server{
		cfg:       cfg,
		mcpServer: mcpServer,
	}

	s.addTools(handler.Accounts(metaService))
	s.addTools(handler.Campaigns(metaService))
	s.addTools(handler.AdSets(metaService))
	s.addTools(handler.Ads(metaService))
	s.addTools(handler.Insights(metaService))
	s.addTools(handler.Reports(reportingService))
	s.addTools(handler.Pagination(metaService))

	return s
}

func (s *Server) addTools(tools []handler.Tool) {
	for _, t := range tools {
		s.mcpServer.AddTool(t.Definition, s.instrument(t.Definition.Name, t.Handler))
	}
}

// instrument envolve cada handler de tool com correlation id e log de
// duração, o equivalente do LoggingMiddleware HTTP para invocações MCP
func (s *Server) instrument(name string, next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, correlationID := log.WithCorrelationID(ctx)

		logger := log.ForContext(ctx).WithFields(log.Fields{
			"tool":           name,
			"correlation_id": correlationID,
		})
		logger.Info("tool: invocation started")

		startTime := time.Now()
		result, err := next(ctx, request)
		durationMs := time.Since(startTime).Milliseconds()

		logger = logger.WithField("duration_ms", durationMs)
		switch {
		case err != nil:
			logger.WithError(err).Error("tool: invocation failed")
		case result != nil && result.IsError:
			logger.Warn("tool: invocation returned an error result")
		default:
			logger.Info("tool: invocation completed")
		}

		return result, err
	}
}

// Run inicia o transporte selecionado e bloqueia até o encerramento
func (s *Server) Run(ctx context.Context) error {
	switch s.cfg.Server.Transport {
	case config.TransportStdio:
		logrus.Info("Iniciando servidor MCP com transporte stdio")
		return mcpserver.ServeStdio(s.mcpServer)
	case config.TransportSSE:
		return s.runHTTP(ctx, s.sseHandler())
	case config.TransportHTTP:
		return s.runHTTP(ctx, mcpserver.NewStreamableHTTPServer(s.mcpServer))
	default:
		return errors.Errorf("transporte desconhecido: %s", s.cfg.Server.Transport)
	}
}

func (s *Server) sseHandler() http.Handler {
	baseURL := fmt.Sprintf("http://%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	return mcpserver.NewSSEServer(
		s.mcpServer,
		mcpserver.WithBaseURL(baseURL),
		mcpserver.WithSSEEndpoint("/sse"),
		mcpserver.WithMessageEndpoint("/message"),
		mcpserver.WithKeepAlive(true),
	)
}

// runHTTP monta o transporte de rede atrás do router com healthcheck e da
// cadeia de middlewares, com desligamento gracioso
func (s *Server) runHTTP(ctx context.Context, transport http.Handler) error {
	rt := httprouter.New()
	rt.Handler(http.MethodGet, "/healthcheck", handler.HealthcheckHandler())
	rt.NotFound = transport

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port),
		Handler:           alice.New(middlewares...).Then(rt),
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"address":   s.httpServer.Addr,
			"transport": s.cfg.Server.Transport,
		}).Info("Servidor MCP iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
