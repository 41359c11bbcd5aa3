// Package main provides the CLI entrypoint for slynxsite.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/slynxsite/internal/carousel"
	"github.com/verte-zerg/slynxsite/internal/config"
	"github.com/verte-zerg/slynxsite/internal/content"
	"github.com/verte-zerg/slynxsite/internal/logging"
	"github.com/verte-zerg/slynxsite/internal/model"
	"github.com/verte-zerg/slynxsite/internal/nav"
	"github.com/verte-zerg/slynxsite/internal/tui"
	"github.com/verte-zerg/slynxsite/internal/typewriter"
)

const (
	defaultTypingSpeedMs = 30
	defaultFileName      = "MAIN.SX"
	maxSuggestDistance   = 3
)

var (
	siteTypingSpeed int
	siteFileName    string
	siteBadge       string
	sitePageSize    int
	siteBreakpoint  int
	siteContent     string
	siteWatch       bool
	siteLogFile     string
	siteDebug       bool

	badgesContent string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "slynxsite",
		Short:         "Slynx landing page in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runSiteCmd,
	}

	rootCmd.Flags().IntVar(&siteTypingSpeed, "typing-speed", defaultTypingSpeedMs, "milliseconds per revealed character")
	rootCmd.Flags().StringVar(&siteFileName, "file-name", defaultFileName, "file name shown in the code window")
	rootCmd.Flags().StringVar(&siteBadge, "badge", "", "feature badge selected at start")
	rootCmd.Flags().IntVar(&sitePageSize, "page-size", carousel.DefaultPageSize, "testimonials per page")
	rootCmd.Flags().IntVar(&siteBreakpoint, "breakpoint", nav.DefaultBreakpoint, "width in cells at which the inline menu is used")
	rootCmd.Flags().StringVar(&siteContent, "content", "", "YAML content file (default: built-in)")
	rootCmd.Flags().BoolVar(&siteWatch, "watch", false, "reload the content file when it changes")
	rootCmd.Flags().StringVar(&siteLogFile, "log-file", config.DefaultLogPath(), "log file path, or - to disable")
	rootCmd.Flags().BoolVar(&siteDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newContentCmd())
	rootCmd.AddCommand(newBadgesCmd())

	return rootCmd
}

func runSiteCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "typing-speed", &siteTypingSpeed, fileCfg.Hero.TypingSpeedMs)
	applyStringConfig(cmd, "file-name", &siteFileName, fileCfg.Hero.FileName)
	applyStringConfig(cmd, "badge", &siteBadge, fileCfg.Hero.Badge)
	applyIntConfig(cmd, "page-size", &sitePageSize, fileCfg.Testimonials.PageSize)
	applyIntConfig(cmd, "breakpoint", &siteBreakpoint, fileCfg.Nav.Breakpoint)
	applyStringConfig(cmd, "content", &siteContent, fileCfg.Content.Path)
	applyBoolConfig(cmd, "watch", &siteWatch, fileCfg.Content.Watch)
	applyStringConfig(cmd, "log-file", &siteLogFile, fileCfg.Log.File)
	applyBoolConfig(cmd, "debug", &siteDebug, fileCfg.Log.Debug)

	settings := model.Settings{
		TypingSpeed:  time.Duration(siteTypingSpeed) * time.Millisecond,
		FileName:     siteFileName,
		InitialBadge: siteBadge,
		PageSize:     sitePageSize,
		Breakpoint:   siteBreakpoint,
		ContentPath:  siteContent,
		WatchContent: siteWatch,
	}
	settings, notices, err := normalizeSettings(settings)
	if err != nil {
		return err
	}
	for _, n := range notices {
		logErrln(n)
	}

	logger, err := logging.New(siteLogFile, siteDebug)
	if err != nil {
		return err
	}
	defer func() {
		// Sync fails on some file types; nothing useful to do about it on exit.
		_ = logger.Sync()
	}()

	pageContent, err := content.Load(settings.ContentPath)
	if err != nil {
		return err
	}
	if err := validateBadge(settings.InitialBadge, content.BadgeIDs(pageContent)); err != nil {
		return err
	}

	for _, n := range notices {
		logger.Warn("setting adjusted", zap.String("notice", n))
	}
	logger.Info("starting",
		zap.String("content", contentLabel(settings.ContentPath)),
		zap.Duration("typing_speed", settings.TypingSpeed),
		zap.Int("page_size", settings.PageSize),
		zap.Int("breakpoint", settings.Breakpoint))

	m := tui.NewModel(settings, pageContent, logger, terminalWidth)
	program := tea.NewProgram(m, tea.WithAltScreen())

	if settings.WatchContent && settings.ContentPath != "" {
		watcher, err := content.NewWatcher(settings.ContentPath, program.Send, logger)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer func() {
			if cerr := watcher.Stop(); cerr != nil {
				logger.Warn("failed to stop content watcher", zap.Error(cerr))
			}
		}()
	} else if settings.WatchContent {
		logErrln("--watch has no effect with the built-in content")
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func terminalWidth() (int, error) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, fmt.Errorf("failed to measure terminal: %w", err)
	}
	return width, nil
}

func contentLabel(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newContentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "content",
		Short: "Print the built-in content as YAML",
		Args:  cobra.NoArgs,
		RunE:  runContentCmd,
	}
}

func runContentCmd(cmd *cobra.Command, _ []string) error {
	if _, err := cmd.OutOrStdout().Write(content.DefaultYAML()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newBadgesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badges",
		Short: "List feature badge ids",
		Args:  cobra.NoArgs,
		RunE:  runBadgesCmd,
	}
	cmd.Flags().StringVar(&badgesContent, "content", "", "YAML content file (default: built-in)")
	return cmd
}

func runBadgesCmd(cmd *cobra.Command, _ []string) error {
	c, err := content.Load(badgesContent)
	if err != nil {
		return err
	}
	if len(c.Hero.Badges) == 0 {
		logErrf("No badges found in %s\n", contentLabel(badgesContent))
		return fmt.Errorf("no badges found")
	}
	for _, line := range badgeTable(c.Hero.Badges) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func badgeTable(badges []model.Badge) []string {
	table := make([][]string, 0, len(badges))
	for i, b := range badges {
		shortcut := ""
		if i < 9 {
			shortcut = strconv.Itoa(i + 1)
		}
		primary := ""
		if b.Primary {
			primary = "yes"
		}
		lines := strings.Count(strings.TrimRight(b.Code, "\n"), "\n") + 1
		if b.Code == "" {
			lines = 0
		}
		table = append(table, []string{shortcut, b.ID, b.Label, strconv.Itoa(lines), primary})
	}
	return formatColumns([]string{"Key", "ID", "Label", "Lines", "Primary"}, table, map[int]bool{3: true})
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# slynxsite configuration
# Uncomment a value to enable it. CLI flags override config values.

[hero]
# typing-speed-ms = %d    # Milliseconds per revealed character
# file-name = %q     # File name shown in the code window
# badge = "simple"        # Feature badge selected at start

[testimonials]
# page-size = %d           # Testimonials per page

[nav]
# breakpoint = %d        # Width in cells at which the inline menu is used

[content]
# path = ""               # YAML content file; see: slynxsite content
# watch = false           # Reload the content file when it changes

[log]
# file = %q
# debug = false
`,
		defaultTypingSpeedMs,
		defaultFileName,
		carousel.DefaultPageSize,
		nav.DefaultBreakpoint,
		config.DefaultLogPath(),
	)
}

// normalizeSettings clamps non-positive typing speed and page size to their
// minimum and reports each adjustment. Other invalid values are errors.
func normalizeSettings(s model.Settings) (model.Settings, []string, error) {
	var notices []string
	if s.TypingSpeed <= 0 {
		notices = append(notices, fmt.Sprintf("--typing-speed %d is not positive; using %s", s.TypingSpeed.Milliseconds(), typewriter.MinInterval))
		s.TypingSpeed = typewriter.MinInterval
	}
	if s.PageSize <= 0 {
		notices = append(notices, fmt.Sprintf("--page-size %d is not positive; using 1", s.PageSize))
		s.PageSize = 1
	}
	if s.Breakpoint <= 0 {
		return s, nil, fmt.Errorf("--breakpoint must be > 0")
	}
	if strings.TrimSpace(s.FileName) == "" {
		return s, nil, fmt.Errorf("--file-name must not be empty")
	}
	return s, notices, nil
}

// validateBadge accepts an empty id, meaning the first badge.
func validateBadge(id string, known []string) error {
	if id == "" {
		return nil
	}
	for _, k := range known {
		if k == id {
			return nil
		}
	}
	msg := fmt.Sprintf("unknown badge %q (available: %s)", id, strings.Join(known, ", "))
	if s, ok := suggest(id, known); ok {
		msg += fmt.Sprintf("; did you mean %q?", s)
	}
	return fmt.Errorf("%s", msg)
}

// suggest returns the closest known id within maxSuggestDistance edits.
func suggest(id string, known []string) (string, bool) {
	best, bestDist := "", maxSuggestDistance+1
	for _, k := range known {
		d := levenshtein.ComputeDistance(strings.ToLower(id), strings.ToLower(k))
		if d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, best != ""
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
