package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/tylerneylon/rss/pkg/feed"
)

// serveCommand creates the serve command, a local preview server for the
// assembled feed.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Preview the assembled feed over HTTP",
		Long: `Serve the publishing tree rooted at dir (default ".") for local preview.

The feed is reassembled on every request, so edits to item files show up
on reload:

  GET /rss.xml   the assembled feed document
  GET /items     the collected items as JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runServe(cmd.Context(), dir, addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "localhost:8080", "listen address")
	return cmd
}

// runServe blocks serving the preview until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, dir, addr string) error {
	r := chi.NewRouter()
	r.Get("/rss.xml", c.handleFeed(dir))
	r.Get("/items", c.handleItems(dir))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/rss.xml", http.StatusFound)
	})

	srv := &http.Server{Addr: addr, Handler: r}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	printInfo("Previewing %s", dir)
	printKeyValue("feed", styleLink.Render("http://"+addr+"/rss.xml"))
	printKeyValue("items", styleLink.Render("http://"+addr+"/items"))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

// handleFeed reassembles and serves the feed document.
func (c *CLI) handleFeed(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ch, err := feed.ReadChannel(filepath.Join(dir, feed.RootFilename))
		if err != nil {
			c.serveError(w, err)
			return
		}
		sources, err := feed.Collect(dir)
		if err != nil {
			c.serveError(w, err)
			return
		}
		doc, err := feed.Render(ch, sources, time.Now())
		if err != nil {
			c.serveError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		fmt.Fprint(w, doc)
		c.Logger.Debugf("Served feed with %d item files", len(sources))
	}
}

// handleItems serves the collected items as JSON for quick inspection.
func (c *CLI) handleItems(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		sources, err := feed.Collect(dir)
		if err != nil {
			c.serveError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		if err := enc.Encode(sources); err != nil {
			c.Logger.Errorf("Encode items: %v", err)
		}
	}
}

// serveError logs the failure and reports it to the client.
func (c *CLI) serveError(w http.ResponseWriter, err error) {
	c.Logger.Errorf("Request failed: %v", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
