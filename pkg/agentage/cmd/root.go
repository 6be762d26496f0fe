package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agentage/agentage/pkg/agentage/config"
	"github.com/agentage/agentage/pkg/agentage/output"
)

type Config struct {
	ConfigPath   string
	OutputWriter io.Writer
}

type runtimeState struct {
	configPath       string
	registryOverride string
	tokenOverride    string
	tokenStorage     string
	outputFormat     string
	verbose          bool
	writer           io.Writer
	logger           *zap.SugaredLogger
}

type runtimeKey struct{}

func DefaultConfig() Config {
	return Config{
		ConfigPath:   config.DefaultConfigPath(),
		OutputWriter: os.Stdout,
	}
}

func NewRootCommand(cfg Config) *cobra.Command {
	rt := &runtimeState{configPath: cfg.ConfigPath, writer: cfg.OutputWriter}

	root := &cobra.Command{
		Use:           "agentage",
		Short:         "Manage and publish agent definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// A project-local .env is a convenience, not a requirement.
			_ = godotenv.Load()

			if rt.writer == nil {
				rt.writer = os.Stdout
			}
			if rt.configPath == "" {
				rt.configPath = config.DefaultConfigPath()
			}
			if rt.registryOverride == "" {
				rt.registryOverride = os.Getenv(config.EnvRegistryURL)
			}
			if rt.tokenOverride == "" {
				rt.tokenOverride = os.Getenv(config.EnvToken)
			}
			if rt.tokenStorage == "" {
				rt.tokenStorage = os.Getenv("AGENTAGE_TOKEN_STORAGE")
			}
			if rt.outputFormat == "" {
				rt.outputFormat = os.Getenv("AGENTAGE_OUTPUT")
			}
			if !rt.verbose {
				rt.verbose = strings.EqualFold(os.Getenv("AGENTAGE_VERBOSE"), "true")
			}

			if rt.verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				rt.logger = logger.Sugar()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&rt.configPath, "config", rt.configPath, "Path to config file")
	root.PersistentFlags().StringVar(&rt.registryOverride, "registry", "", "Registry URL override")
	root.PersistentFlags().StringVar(&rt.tokenOverride, "token", "", "Bearer token override")
	root.PersistentFlags().StringVar(&rt.tokenStorage, "token-storage", "", "Token storage backend: file or keyring")
	root.PersistentFlags().StringVarP(&rt.outputFormat, "output", "o", "", "Output format: table, json, yaml, wide")
	root.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "Enable verbose output with request IDs")

	root.SetContext(context.WithValue(context.Background(), runtimeKey{}, rt))

	root.AddCommand(
		NewLoginCommand(),
		NewLogoutCommand(),
		NewWhoamiCommand(),
		NewCreateCommand(),
		NewListCommand(),
		NewPublishCommand(),
		NewInstallCommand(),
		NewSearchCommand(),
		NewInfoCommand(),
		NewRemoveCommand(),
		NewRunCommand(),
		NewVersionCommand(),
		NewCompletionCommand(),
	)

	return root
}

func getRuntime(cmd *cobra.Command) (*runtimeState, error) {
	rt, ok := cmd.Context().Value(runtimeKey{}).(*runtimeState)
	if !ok || rt == nil {
		return nil, errors.New("runtime not initialized")
	}
	return rt, nil
}

func (rt *runtimeState) Store() *config.Store {
	return config.NewStore(rt.configPath, config.WithTokenStorage(rt.tokenStorage))
}

func (rt *runtimeState) RegistryURL() string {
	if rt.registryOverride != "" {
		return rt.registryOverride
	}
	return rt.Store().RegistryURL()
}

// Token resolves the effective bearer token: the flag or environment
// override first, then the credential store.
func (rt *runtimeState) Token() (string, bool) {
	if rt.tokenOverride != "" {
		return rt.tokenOverride, true
	}
	return rt.Store().Token()
}

func (rt *runtimeState) OutputFormat() (output.Format, error) {
	return output.ParseFormat(rt.outputFormat)
}

func (rt *runtimeState) Writer() io.Writer {
	if rt.writer != nil {
		return rt.writer
	}
	return os.Stdout
}

func (rt *runtimeState) Logger() *zap.SugaredLogger {
	if rt.logger != nil {
		return rt.logger
	}
	return zap.NewNop().Sugar()
}
