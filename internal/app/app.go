package app

import (
	"context"
	"fmt"

	"briefly/internal/apiclient"
	"briefly/internal/config"
	"briefly/internal/models"
	"briefly/internal/services"
	"briefly/internal/session"

	log "github.com/sirupsen/logrus"
)

type App struct {
	Config *config.Config
	Client *apiclient.Client

	// Backend pieces, set only by InitBackend.
	CompletionService services.CompletionService
	NoteService       *services.NoteService
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := app.initClient(); err != nil {
		return nil, err
	}

	log.Debug("Application initialization complete.")
	return app, nil
}

// NewSession creates a fresh session for one tool, backed by the API client.
func (a *App) NewSession(kind models.Kind) *session.Session {
	return session.New(kind, a.Client)
}

// InitBackend sets up the completion provider and note service for `serve`.
func (a *App) InitBackend(ctx context.Context) error {
	if err := a.Config.ValidateServer(); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}
	if err := a.initCompletionService(ctx); err != nil {
		return err
	}
	if err := a.initNoteService(); err != nil {
		return err
	}
	log.Println("Backend initialization complete.")
	return nil
}

// Close releases provider resources.
func (a *App) Close() error {
	if closer, ok := a.CompletionService.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// --- Private Helper Methods ---

func (a *App) initClient() error {
	if err := a.Config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.Client = apiclient.NewClient(a.Config.Client.BaseURL, a.Config.Client.Timeout)
	log.Debugf("API client targets %s", a.Client.BaseURL())
	return nil
}

func (a *App) initCompletionService(ctx context.Context) error {
	cfg := a.Config.Provider
	switch cfg.Name {
	case "gemini":
		p, err := services.NewGeminiProvider(ctx, cfg.GoogleApiKey, cfg.Model)
		if err != nil {
			return fmt.Errorf("init gemini provider: %w", err)
		}
		a.CompletionService = p
	case "openai":
		a.CompletionService = services.NewOpenAIProvider(cfg.OpenaiApiKey, cfg.Model)
	default:
		return fmt.Errorf("unsupported provider %q", cfg.Name)
	}

	if a.CompletionService.Status() != services.ProviderStatusActive {
		return fmt.Errorf("completion provider %s is %s", a.CompletionService.Name(), a.CompletionService.Status())
	}
	log.Infof("Using %s completion provider (model %s)", a.CompletionService.Name(), a.CompletionService.ModelName())
	return nil
}

func (a *App) initNoteService() error {
	p := a.Config.Prompts
	summary, err := config.LoadPromptContent(p.Summary, services.DefaultSummaryPrompt)
	if err != nil {
		return fmt.Errorf("load summary prompt: %w", err)
	}
	notes, err := config.LoadPromptContent(p.Notes, services.DefaultNotesPrompt)
	if err != nil {
		return fmt.Errorf("load notes prompt: %w", err)
	}
	quiz, err := config.LoadPromptContent(p.Quiz, services.DefaultQuizPrompt)
	if err != nil {
		return fmt.Errorf("load quiz prompt: %w", err)
	}

	a.NoteService = services.NewNoteService(a.CompletionService, services.Prompts{
		Summary: summary,
		Notes:   notes,
		Quiz:    quiz,
	})
	return nil
}
