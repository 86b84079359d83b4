// Package cli implements the command-line interface. It wires the core
// services to their adapters and exposes them as cobra commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/docsearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/corpus"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/index/bleve"
	"github.com/custodia-labs/docsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/core/services"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose    bool
	configDir  string
	corpusPath string
)

// Services the commands depend on. Populated by initServices; tests
// swap these for mocks.
var (
	searchService driving.SearchService
	filterService driving.FilterService
)

// Concrete wiring retained so long-running commands can rebuild the
// index when the corpus changes on disk.
var (
	searchSvc    *services.SearchService
	docStore     *memory.DocumentStore
	indexer      *services.IndexerService
	activeCorpus string
)

var rootCmd = &cobra.Command{
	Use:   "docsearch",
	Short: "Search the documentation corpus from the terminal",
	Long: `docsearch indexes a documentation corpus and answers ranked,
filtered, grouped search queries over it.

The corpus is loaded from a JSON export or a directory of Markdown
files with YAML frontmatter, indexed in memory at startup, and queried
with a multi-strategy plan (phrase, fuzzy, per-term, free-form).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. It is the entry point called from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.docsearch)")
	rootCmd.PersistentFlags().StringVarP(&corpusPath, "corpus", "c", "", "corpus path: JSON file or Markdown directory")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)

		// Tests inject services directly and skip wiring.
		if searchService != nil {
			return nil
		}
		return initServices(cmd.Context())
	}
}

// initServices builds the adapter stack and runs the initial index
// build. The corpus path comes from the flag, the DOCSEARCH_CORPUS
// environment variable, or the config file, in that order.
func initServices(ctx context.Context) error {
	logger.Section("Initialisation")

	cfg, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("config store: %w", err)
	}
	logger.Debug("Config loaded from %s", cfg.Path())

	path := corpusPath
	if path == "" {
		path = os.Getenv("DOCSEARCH_CORPUS")
	}
	if path == "" {
		path = cfg.GetString("corpus.path")
	}
	if path == "" {
		return fmt.Errorf("no corpus configured: pass --corpus, set DOCSEARCH_CORPUS, or set corpus.path in %s", cfg.Path())
	}

	records, err := corpus.Load(path)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	docStore = memory.NewDocumentStore()
	if err := docStore.Replace(ctx, records); err != nil {
		return fmt.Errorf("store corpus: %w", err)
	}

	index, err := bleve.New()
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	indexer = services.NewIndexerService(docStore, index)
	indexed, err := indexer.Build(ctx)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	logger.Info("Indexed %d documents", indexed)

	searchSvc = services.NewSearchService(docStore, index)
	searchSvc.SetReady(true)

	searchService = searchSvc
	filterService = services.NewFilterOptionsService(docStore)
	activeCorpus = path
	return nil
}

// reloadCorpus re-reads the corpus source and rebuilds the index into a
// fresh instance, then swaps it under the search service. Queries keep
// running against the old index until the swap.
func reloadCorpus(ctx context.Context) {
	logger.Section("Corpus reload")

	records, err := corpus.Load(activeCorpus)
	if err != nil {
		logger.Warn("Reload failed, keeping previous corpus: %v", err)
		return
	}
	if err := docStore.Replace(ctx, records); err != nil {
		logger.Warn("Reload failed, keeping previous corpus: %v", err)
		return
	}

	index, err := bleve.New()
	if err != nil {
		logger.Warn("Reload failed, keeping previous index: %v", err)
		return
	}

	indexer = services.NewIndexerService(docStore, index)
	indexed, err := indexer.Build(ctx)
	if err != nil {
		logger.Warn("Rebuild failed, keeping previous index: %v", err)
		return
	}

	searchSvc.SwapIndex(index)
	if err := filterService.Rebuild(ctx); err != nil {
		logger.Warn("Filter catalog rebuild failed: %v", err)
	}
	logger.Info("Reindexed %d documents", indexed)
}

// watchCorpus starts a filesystem watcher on the corpus source, if one
// was configured, and returns a stop function.
func watchCorpus(ctx context.Context) (func(), error) {
	if activeCorpus == "" {
		return func() {}, nil
	}

	watcher, err := corpus.NewWatcher(activeCorpus, func() {
		reloadCorpus(context.Background())
	})
	if err != nil {
		return nil, err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	go watcher.Run(watchCtx)
	return cancel, nil
}
