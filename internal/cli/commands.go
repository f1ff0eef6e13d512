package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/llehouerou/storesearch/internal/app"
	art "github.com/llehouerou/storesearch/internal/artwork"
	"github.com/llehouerou/storesearch/internal/browser"
	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/errmsg"
	"github.com/llehouerou/storesearch/internal/jsonutil"
	"github.com/llehouerou/storesearch/internal/logger"
	"github.com/llehouerou/storesearch/internal/notify"
	"github.com/llehouerou/storesearch/internal/present"
	"github.com/llehouerou/storesearch/internal/search"
	"github.com/llehouerou/storesearch/internal/server"
	"github.com/llehouerou/storesearch/internal/state"
	uiartwork "github.com/llehouerou/storesearch/internal/ui/artwork"
)

// runTUI runs the terminal UI.
func runTUI(cmd *cobra.Command, _ []string) error {
	opts := getOptions(cmd)
	svc, err := bootstrap(opts)
	if err != nil {
		return err
	}
	defer svc.Close()

	if opts.Debug {
		path, err := xdg.StateFile(filepath.Join("storesearch", "tea.log"))
		if err == nil {
			if f, err := tea.LogToFile(path, "tea"); err == nil {
				defer f.Close()
			}
		}
	}

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpInitialize, err))
	}
	defer stateMgr.Close()

	artCache, err := art.NewCache("")
	if err != nil {
		logger.Get().Error("%s", errmsg.Format(errmsg.OpArtworkLoad, err))
	}

	var notifier notify.Alerter
	if svc.cfg.Notifications {
		if notifier, err = notify.Connect(); err != nil {
			logger.Get().Error("desktop notifications: %v", err)
		}
	}

	m := app.New(app.Deps{
		Config:     svc.cfg,
		Searcher:   svc.searcher,
		Storefront: svc.client,
		State:      stateMgr,
		Artwork:    art.NewFetcher(artCache),
		Images:     uiartwork.Detect(),
		Notifier:   notifier,
		OpenURL:    browser.Open,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search API over HTTP",
		Long: `Serve the search state machine and its list and grid presenters as a
JSON API. All clients share one search: the most recent one wins.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().String("addr", "", "Listen address (default from config, else :8080)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	opts := getOptions(cmd)
	svc, err := bootstrap(opts)
	if err != nil {
		return err
	}
	defer svc.Close()

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = svc.cfg.ServerAddr()
	}

	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	artCache, err := art.NewCache("")
	if err != nil {
		logger.Get().Error("%s", errmsg.Format(errmsg.OpArtworkLoad, err))
	}

	srv := server.New(svc.searcher, server.Options{
		Artwork:    art.NewFetcher(artCache),
		ThumbCache: artCache,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s (store %s)\n", addr, svc.client.Country())
	return srv.Run(ctx, addr)
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <term...>",
		Short: "Run one search and print the results",
		Long: `Run one search and print the list rendering of its outcome, one item
per row. With --json the rendering is printed as JSON.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}
	cmd.Flags().Bool("json", false, "Print the list rendering as JSON")
	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, err := bootstrap(getOptions(cmd))
	if err != nil {
		return err
	}
	defer svc.Close()

	asJSON, _ := cmd.Flags().GetBool("json")
	return searchOnce(cmd.Context(), svc.searcher, strings.Join(args, " "),
		svc.cfg.GetDefaultCategory(), asJSON, cmd.OutOrStdout())
}

// searchOnce runs one search through a holder and writes the list
// rendering of the resulting state to w.
func searchOnce(ctx context.Context, searcher search.Searcher, term string,
	category catalog.Category, asJSON bool, w io.Writer,
) error {
	holder := search.NewHolder(searcher)
	defer holder.Close()

	req, ok := holder.Begin(term, category)
	if !ok {
		return fmt.Errorf("empty search term")
	}

	done := make(chan search.Completion, 1)
	go func() { done <- holder.Run(req) }()
	select {
	case c := <-done:
		if _, success := holder.Complete(c); !success {
			return fmt.Errorf("%s", errmsg.Format(errmsg.OpSearch, holder.Err()))
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	view := present.List(holder.State())
	if asJSON {
		data, err := jsonutil.MarshalIndent(view, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	return printRows(w, view)
}

func printRows(w io.Writer, view present.ListView) error {
	for _, row := range view.Rows {
		var err error
		if row.Kind == present.RowItem {
			_, err = fmt.Fprintf(w, "%3d  %s\n     %s\n", row.Index+1, row.Title, row.Subtitle)
		} else {
			_, err = fmt.Fprintln(w, row.Title)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
