package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/staticconfig/config"
	"github.com/MKhiriev/staticconfig/internal/logger"
	"github.com/MKhiriev/staticconfig/internal/settings"
	"github.com/MKhiriev/staticconfig/namespace"
)

var errConfigExists = errors.New("config file already exists")

// app holds what every subcommand needs once the persistent pre-run has
// resolved the settings.
type app struct {
	stdout io.Writer
	stderr io.Writer
	exit   func(code int)

	settings *settings.Settings
	loader   *config.Loader
}

func newRootCmd(stdout, stderr io.Writer, exit func(code int)) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, exit: exit}

	root := &cobra.Command{
		Use:           "staticconfig",
		Short:         "Validate and bootstrap JSON config files with a fixed structure",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	settings.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.newInitCmd(),
		a.newCheckCmd(),
		a.newShowCmd(),
		a.newGetCmd(),
		newVersionCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := settings.Get(cmd.Flags())
	if err != nil {
		return fmt.Errorf("error getting settings: %w", err)
	}
	a.settings = cfg

	log, err := logger.NewLogger("staticconfig", a.stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	cmd.SetContext(log.WithContext(cmd.Context()))

	schema, err := config.SchemaFromFile(cfg.SchemaPath)
	if err != nil {
		return err
	}

	policy := namespace.Vivify
	if cfg.IsStrict() {
		policy = namespace.Strict
	}

	a.loader = config.NewLoader(schema,
		config.WithLogger(log.GetChildLogger()),
		config.WithPolicy(policy),
		config.WithBootstrap(config.HaltOnTemplate(a.stdout, a.exit)),
	)

	log.Debug().Any("settings", cfg).Msg("received settings")
	return nil
}

// load returns the config, or nil after the bootstrap hook handled a freshly
// generated template.
func (a *app) load() (*config.Config, error) {
	res, err := a.loader.FromJSON(a.settings.ConfigPath)
	if err != nil {
		return nil, err
	}

	if res.TemplateGenerated() {
		return nil, nil
	}

	return res.Config, nil
}

func (a *app) newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the defaults to the config file as a template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.FromContext(cmd.Context())
			path := a.settings.ConfigPath

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%w: %s (use --force to overwrite)", errConfigExists, path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("error checking config file: %w", err)
			}

			defaults, err := a.loader.Defaults()
			if err != nil {
				return err
			}
			if err := defaults.ToJSON(path); err != nil {
				return err
			}

			log.Info().Str("path", path).Msg("template written")
			fmt.Fprintf(a.stdout, "wrote template to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	return cmd
}

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the config file and report unexpected options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load()
			if err != nil || cfg == nil {
				return err
			}

			logger.FromContext(cmd.Context()).Info().Str("path", cfg.Path()).Msg("config is valid")
			fmt.Fprintf(a.stdout, "%s: ok\n", cfg.Path())
			return nil
		},
	}
}

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the config merged onto the defaults",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := a.load()
			if err != nil || cfg == nil {
				return err
			}

			data, err := config.Marshal(cfg.Namespace)
			if err != nil {
				return err
			}

			_, err = a.stdout.Write(data)
			return err
		},
	}
}

func (a *app) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <option.path>",
		Short: "Print one option of the merged config as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := a.load()
			if err != nil || cfg == nil {
				return err
			}

			value, err := cfg.Resolve(args[0])
			if err != nil {
				return err
			}

			if section, ok := value.(*namespace.Namespace); ok {
				data, err := config.Marshal(section)
				if err != nil {
					return err
				}
				_, err = a.stdout.Write(data)
				return err
			}

			data, err := json.Marshal(value)
			if err != nil {
				return fmt.Errorf("error encoding value: %w", err)
			}
			_, err = fmt.Fprintln(a.stdout, string(data))
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// Overrides the root pre-run: no settings or schema are needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			printBuildInfo(cmd.OutOrStdout())
		},
	}
}
