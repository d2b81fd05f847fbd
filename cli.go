package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"artaura/internal/browse"
	"artaura/internal/catalog"
	"artaura/internal/stats"
)

func rootCmd() *cobra.Command {
	var (
		configPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:           "artaura",
		Short:         "Community art catalog for infrastructure projects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(serveCmd(&configPath, &debug), statsCmd(), catalogCmd())
	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func serveCmd(configPath *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			logger, err := newLogger(*debug || cfg.Log.Debug)
			if err != nil {
				return err
			}
			defer logger.Sync()

			server, err := NewServer(cfg, logger)
			if err != nil {
				return err
			}
			defer server.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Serve(ctx)
		},
	}
}

type outputFormat string

func (f outputFormat) write(w io.Writer, v any) error {
	switch f {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		node, err := yamlNode(v)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(node)
	default:
		return fmt.Errorf("unknown output format %q (want yaml or json)", string(f))
	}
}

// yamlNode converts v through its JSON form so YAML output keeps the JSON
// field names and order.
func yamlNode(v any) (*yaml.Node, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	blockStyle(&doc)
	return &doc, nil
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

var statsReports = map[string]func() any{
	"dashboard":  func() any { return stats.Dashboard() },
	"gallery":    func() any { return stats.Gallery() },
	"employment": func() any { return stats.Employment() },
	"cohesion":   func() any { return stats.CohesionDashboard() },
	"program":    func() any { return stats.ArtProgramImpact() },
	"challenges": func() any { return stats.ChallengesAddressed() },
	"learning":   func() any { return stats.LearningDashboard() },
	"workforce":  func() any { return stats.WorkforceDevelopmentImpact() },
	"user":       func() any { return stats.UserSocialImpact(stats.DefaultUserProfile(stats.UserProfile{})) },
}

func reportNames() []string {
	names := make([]string, 0, len(statsReports)+1)
	for name := range statsReports {
		names = append(names, name)
	}
	names = append(names, "project")
	sort.Strings(names)
	return names
}

func statsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "stats REPORT [PROJECT_ID]",
		Short: "Print a derived statistics report",
		Long:  fmt.Sprintf("Print a derived statistics report. Reports: %v.", reportNames()),
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFormat(format)
			if args[0] == "project" {
				if len(args) != 2 {
					return fmt.Errorf("project report needs a project id")
				}
				id, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid project id %q", args[1])
				}
				p, ok := catalog.ProjectByID(id)
				if !ok {
					return fmt.Errorf("project %d not found", id)
				}
				return out.write(cmd.OutOrStdout(), stats.EnhanceProject(p))
			}

			report, ok := statsReports[args[0]]
			if !ok {
				return fmt.Errorf("unknown report %q, want one of %v", args[0], reportNames())
			}
			return out.write(cmd.OutOrStdout(), report())
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "Output format (yaml, json)")
	return cmd
}

func catalogCmd() *cobra.Command {
	var (
		format   string
		criteria browse.Criteria
		tab      string
	)
	cmd := &cobra.Command{
		Use:       "catalog VIEW",
		Short:     "Filter, search and sort a catalog view",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"gallery", "projects", "network", "favorites", "submissions"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFormat(format)
			w := cmd.OutOrStdout()
			switch args[0] {
			case "gallery":
				return out.write(w, browse.Run(browse.Gallery, catalog.Artworks(), criteria))
			case "projects":
				return out.write(w, browse.Run(browse.Projects, catalog.Projects(), criteria))
			case "network":
				artists := catalog.Network(catalog.NetworkTab(tab))
				if artists == nil {
					return fmt.Errorf("unknown tab %q", tab)
				}
				return out.write(w, browse.Run(browse.Network, artists, criteria))
			case "favorites":
				return out.write(w, browse.Run(browse.Favorites, catalog.Favorites(), criteria))
			case "submissions":
				return out.write(w, browse.Run(browse.Submissions, catalog.Submissions(), criteria))
			default:
				return fmt.Errorf("unknown view %q", args[0])
			}
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "Output format (yaml, json)")
	cmd.Flags().StringVar(&criteria.Category, "category", browse.All, "Category filter")
	cmd.Flags().StringVarP(&criteria.Query, "query", "q", "", "Search text")
	cmd.Flags().StringVar(&criteria.Sort, "sort", "", "Sort key")
	cmd.Flags().StringVar(&tab, "tab", string(catalog.TabFollowing), "Network tab (following, followers, discover)")
	return cmd
}
