package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
)

// RunServe serves a generated site directory over HTTP for local
// preview.
func RunServe(cmd *cobra.Command, args []string) error {
	siteDir := args[0]
	addr, err := OptionalStringFlag(cmd, "addr")
	if err != nil {
		return err
	}
	if addr == "" {
		addr = ":8080"
	}

	info, err := os.Stat(siteDir)
	if err != nil {
		return fmt.Errorf("failed to access site directory %q: %w", siteDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("site path %q is not a directory", siteDir)
	}

	fmt.Printf("serving %s on %s\n", siteDir, addr)
	return http.ListenAndServe(addr, newSiteHandler(siteDir))
}

// newSiteHandler serves the files of a generated site, with index.html
// answering the root path.
func newSiteHandler(siteDir string) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Handle("/*", http.FileServer(http.Dir(siteDir)))
	return router
}
