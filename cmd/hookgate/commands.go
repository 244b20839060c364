package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/hookgate/hookgate/internal/action"
	"github.com/hookgate/hookgate/internal/channel/telegram"
	"github.com/hookgate/hookgate/internal/config"
	"github.com/hookgate/hookgate/internal/engine"
	"github.com/hookgate/hookgate/internal/gateevent"
	"github.com/hookgate/hookgate/internal/hookpoint"
	"github.com/hookgate/hookgate/internal/hostadapter"
	"github.com/hookgate/hookgate/internal/llm"
	"github.com/hookgate/hookgate/internal/metrics"
	"github.com/hookgate/hookgate/internal/notifier"
	"github.com/hookgate/hookgate/internal/tracing"
)

const defaultConfigPath = "hookgate.yaml"

func buildServeCmd() *cobra.Command {
	var (
		configPath string
		httpAddr   string
		tracingOn  bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the policy document and serve metrics while watching for reloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := metrics.NewRegistry()
			tracer, err := tracing.New(tracingOn)
			if err != nil {
				return fmt.Errorf("starting tracer: %w", err)
			}

			deps, err := buildDeps()
			if err != nil {
				return err
			}

			eng, err := engine.New(configPath, engine.Options{
				Deps:    deps,
				Metrics: reg,
				Tracer:  tracer,
				Logger:  slog.Default(),
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := eng.Watch(ctx); err != nil {
				return fmt.Errorf("starting config watcher: %w", err)
			}

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg.Registerer(), promhttp.HandlerOpts{}))
			mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("ok"))
			})
			srv := &http.Server{Addr: httpAddr, Handler: mux}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("serving metrics", "addr", httpAddr)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			select {
			case <-ctx.Done():
			case err := <-errCh:
				return err
			}

			slog.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
			return eng.Close(shutdownCtx)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the policy YAML document")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":9090", "Address to serve /metrics and /healthz on")
	cmd.Flags().BoolVar(&tracingOn, "tracing", false, "Emit spans to stdout for each hook point execution")
	return cmd
}

func buildValidateCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load and validate a policy document without serving it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid: %d rules across %d declared points\n",
				len(cfg.Hooks), countPoints(cfg))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the policy YAML document")
	return cmd
}

func countPoints(cfg *config.Config) int {
	seen := make(map[hookpoint.Point]bool)
	for _, rule := range cfg.Hooks {
		for _, p := range rule.Point {
			seen[p] = true
		}
	}
	return len(seen)
}

func buildSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the policy document",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := config.JSONSchema()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(schema, '\n'))
			return err
		},
	}
	return cmd
}

func buildFireCmd() *cobra.Command {
	var (
		configPath string
		point      string
		sessionKey string
		toolName   string
		prompt     string
		response   string
	)
	cmd := &cobra.Command{
		Use:   "fire",
		Short: "Dry-run a single hook point against a policy document and print the decision",
		Long: `Fire loads a policy document, builds one synthetic event from the given
flags, runs it through the pipeline exactly as a host would, and prints the
resulting decision as JSON. It performs every configured side effect (it
writes log/summarize_and_log files, sends notifications, runs exec_script) so
it is a real dry run of the rule set, not a simulation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDeps()
			if err != nil {
				return err
			}
			eng, err := engine.New(configPath, engine.Options{Deps: deps})
			if err != nil {
				return err
			}
			defer eng.Close(cmd.Context())

			event := gateevent.Event{
				Point:      hookpoint.Point(point),
				SessionKey: sessionKey,
				Timestamp:  time.Now().UnixMilli(),
				ToolName:   toolName,
				Prompt:     prompt,
				Response:   response,
			}
			decision := hostadapter.New(eng).Fire(cmd.Context(), event)

			payload, err := json.MarshalIndent(decision, "", "  ")
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(payload, '\n'))
			return err
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the policy YAML document")
	cmd.Flags().StringVar(&point, "point", string(hookpoint.TurnPre), "Hook point to fire")
	cmd.Flags().StringVar(&sessionKey, "session", "telegram:group:123", "Session key for the synthetic event")
	cmd.Flags().StringVar(&toolName, "tool", "", "Tool name for the synthetic event")
	cmd.Flags().StringVar(&prompt, "prompt", "", "Prompt text for the synthetic event")
	cmd.Flags().StringVar(&response, "response", "", "Response text for the synthetic event")
	return cmd
}

// buildDeps wires the Notifier and LLM router from environment
// variables. Every piece is optional: a handler whose dependency is nil
// reports an action failure rather than panicking, so hookgate runs
// fine with none of these set, trading away notifications and
// summarize_and_log.
func buildDeps() (action.Deps, error) {
	var sender notifier.Sender
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		b, err := bot.New(token)
		if err != nil {
			return action.Deps{}, fmt.Errorf("creating telegram bot client: %w", err)
		}
		sender = telegram.NewSender(telegram.NewBotClient(b))
	}
	state := notifier.NewLastMainSession(notifier.DefaultStatePath)
	n := notifier.New(sender, state, slog.Default())

	router := llm.Router{}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		p, err := llm.NewAnthropicProvider(key)
		if err != nil {
			return action.Deps{}, err
		}
		router.Anthropic = p
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		p, err := llm.NewOpenAIProvider(key)
		if err != nil {
			return action.Deps{}, err
		}
		router.OpenAI = p
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		p, err := llm.NewGoogleProvider(context.Background(), key)
		if err != nil {
			return action.Deps{}, err
		}
		router.Google = p
	}

	return action.Deps{
		Notifier:      n,
		LLM:           router,
		LLMTimeout:    envDuration("HOOKGATE_LLM_TIMEOUT_MS", 30*time.Second),
		ScriptTimeout: envDuration("HOOKGATE_SCRIPT_TIMEOUT_MS", 30*time.Second),
	}, nil
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
