package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/go-gh/v2/pkg/browser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/altinukshini/shop-tui/internal/api"
	"github.com/altinukshini/shop-tui/internal/config"
	"github.com/altinukshini/shop-tui/internal/logging"
	"github.com/altinukshini/shop-tui/internal/tui"
)

// session is built once per invocation before any command runs.
type session struct {
	cfg    config.Config
	client *api.Client
	log    *zap.Logger
	out    output
}

type rootFlags struct {
	configPath string
	baseURL    string
	logFile    string
	debug      bool
}

func newRootCmd(out output) *cobra.Command {
	var flags rootFlags
	s := &session{out: out, log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:           "shop-tui",
		Short:         "Browse the storefront from your terminal",
		Long:          "shop-tui is a terminal client for the storefront: home page shelves, live search, cart and wishlist.",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = s.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runTUI()
		},
	}
	cmd.SetOut(out.w)
	cmd.SetErr(out.errW)
	cmd.SetVersionTemplate(versionString() + "\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to config.toml (default "+config.DefaultPath()+")")
	pf.StringVar(&flags.baseURL, "base-url", "", "storefront base URL")
	pf.StringVar(&flags.logFile, "log-file", "", "write logs to this file")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newSearchCmd(s),
		newCartCmd(s),
		newWishlistCmd(s),
		newVersionCmd(out),
	)
	return cmd
}

// setup loads config, applies explicitly set flags and builds the logger
// and storefront client.
func (s *session) setup(cmd *cobra.Command, flags rootFlags) error {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	pf := cmd.Flags()
	if pf.Changed("base-url") {
		cfg.BaseURL = flags.baseURL
	}
	if pf.Changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if pf.Changed("debug") {
		cfg.Debug = flags.debug
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewFileLogger(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	client, err := api.NewClient(cfg, logger)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.log = logger
	s.client = client
	s.log.Debug("session ready", zap.String("base_url", cfg.BaseURL), zap.String("command", cmd.CommandPath()))
	return nil
}

func (s *session) runTUI() error {
	b := browser.New("", io.Discard, io.Discard)
	app := tui.NewApp(s.cfg, s.client, b, s.log)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
