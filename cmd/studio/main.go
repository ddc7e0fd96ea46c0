package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptstudio/internal/catalog"
	"promptstudio/internal/config"
	"promptstudio/internal/gen"
	"promptstudio/internal/history"
	"promptstudio/internal/i18n"
	"promptstudio/internal/logging"
	"promptstudio/internal/studio"
)

var (
	// Global flags
	configPath string
	verbose    bool
	personaID  string
	langFlag   string

	cfg            *config.Config
	logger         *zap.Logger
	resolveCatalog studio.Resolver
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "Prompt Studio - faceted prompt builder and content generator",
	Long: `Prompt Studio composes image prompts and social post briefs from a
faceted option catalog, sends them to Gemini, and journals every
successful generation for reuse.

Offline commands (categories, compose, random, ideas) never touch the
API; generate, describe and translate require an API key.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Logging.Format, cfg.Logging.File)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if langFlag == "" {
			langFlag = cfg.Studio.Language
		}
		if personaID == "" {
			personaID = cfg.Studio.Persona
		}

		resolveCatalog = catalog.ForPersona
		if cfg.Studio.CatalogPath != "" {
			override, err := catalog.LoadFile(cfg.Studio.CatalogPath)
			if err != nil {
				return fmt.Errorf("failed to load catalog override: %w", err)
			}
			resolveCatalog = func(id catalog.PersonaID) *catalog.Catalog {
				if id == override.Persona.ID {
					return override
				}
				return catalog.ForPersona(id)
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// personasCmd lists the configured personas
var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List the configured personas",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range catalog.Personas() {
			fmt.Printf("%-8s %s - %s\n", p.ID, p.Name, p.Tagline)
		}
		return nil
	},
}

// categoriesCmd shows the freshly sampled category views
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the option categories with a fresh visible sample",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newOfflineSession()
		for _, v := range s.Views() {
			kind := "multi"
			if v.SingleSelect {
				kind = "single"
			}
			fmt.Printf("%s [%s] (%s)\n", v.Label, v.ID, kind)
			for _, opt := range v.Options {
				fmt.Printf("  - %s\n", opt.Localized(lang()))
			}
		}
		return nil
	},
}

// composeCmd assembles a prompt without calling the API
var composeCmd = &cobra.Command{
	Use:   "compose [main action]",
	Short: "Compose a prompt from a main action and --select options",
	Long: `Composes the final prompt offline. Options are picked by their
English canonical text:

  studio compose "walking at dusk" --select lighting="golden hour" --select style=noir`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newOfflineSession()
		s.SetMainAction(strings.Join(args, " "))
		if err := applySelects(s); err != nil {
			return err
		}
		fmt.Println(s.Prompt())
		return nil
	},
}

// randomCmd draws a random idea
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Draw a random sparse selection and print the composed prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newOfflineSession()
		s.RandomIdea()
		sel := s.Selections()
		for id, opts := range sel {
			for _, opt := range opts {
				fmt.Printf("%s: %s\n", id, opt.Localized(lang()))
			}
		}
		if prompt := s.Prompt(); prompt != "" {
			fmt.Printf("\n%s\n", prompt)
		}
		return nil
	},
}

// ideasCmd prints a shuffled page of inspiration ideas
var ideasCmd = &cobra.Command{
	Use:   "ideas",
	Short: "Print a shuffled page of inspiration ideas",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newOfflineSession()
		ideas, more := s.Ideas()
		for _, idea := range ideas {
			fmt.Printf("  - %s\n", idea.Localized(lang()))
		}
		if more {
			fmt.Println(i18n.T(lang(), "loadMoreIdeas"))
		}
		return nil
	},
}

// generateCmd sends a prompt to the backend
var generateCmd = &cobra.Command{
	Use:   "generate [theme]",
	Short: "Generate image prompts or post texts for a theme",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

// describeCmd turns a reference image into a scene description
var describeCmd = &cobra.Command{
	Use:   "describe [image file]",
	Short: "Describe a reference image as a reusable scene description",
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribe,
}

// translateCmd translates text to English
var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text to English the way generation would",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTranslate,
}

// catalogCmd inspects a YAML catalog override
var catalogCmd = &cobra.Command{
	Use:   "catalog [file]",
	Short: "Validate and print a YAML catalog override",
	Long: `Loads a catalog override file and prints its categories. With no
argument the configured studio.catalog_path is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Studio.CatalogPath
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("no catalog file given and studio.catalog_path is unset")
		}

		cat, err := catalog.LoadFile(path)
		if err != nil {
			return err
		}
		fmt.Printf("persona: %s (%s)\n", cat.Persona.Name, cat.Persona.ID)
		for _, c := range cat.Categories {
			fmt.Printf("  %-14s %3d options, %d visible\n", c.ID, len(c.Options), c.DefaultVisible)
		}
		return nil
	},
}

// historyCmd manages the generation history
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the generation history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past generations, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, closer, err := openLedger()
		if err != nil {
			return err
		}
		defer closer()

		entries := ledger.Entries()
		if len(entries) == 0 {
			fmt.Println("history is empty")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %s  [%s/%s]\n    %s\n",
				e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04"),
				e.PersonaID, e.ContentType, e.Prompt)
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete one history entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, closer, err := openLedger()
		if err != nil {
			return err
		}
		defer closer()

		if _, ok := ledger.Find(args[0]); !ok {
			return fmt.Errorf("no history entry %q", args[0])
		}
		ledger.Delete(args[0])
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the entire history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, closer, err := openLedger()
		if err != nil {
			return err
		}
		defer closer()
		ledger.Clear()
		return nil
	},
}

var (
	contentTypeFlag string
	selectFlags     []string
	imageMIME       string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "studio.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&personaID, "persona", "", "persona id (default from config)")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "display language, es or en (default from config)")

	composeCmd.Flags().StringArrayVar(&selectFlags, "select", nil, "category=option selection, repeatable")
	generateCmd.Flags().StringVar(&contentTypeFlag, "type", "image", "content type: image or post")
	generateCmd.Flags().StringArrayVar(&selectFlags, "select", nil, "category=option selection, repeatable")
	describeCmd.Flags().StringVar(&imageMIME, "mime", "image/jpeg", "image MIME type")

	historyCmd.AddCommand(historyListCmd, historyDeleteCmd, historyClearCmd)
	rootCmd.AddCommand(personasCmd, categoriesCmd, composeCmd, randomCmd, ideasCmd,
		generateCmd, describeCmd, translateCmd, catalogCmd, historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func lang() i18n.Language {
	l := i18n.Language(langFlag)
	if !l.Valid() {
		return i18n.Fallback
	}
	return l
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// nopStore backs sessions that never record history.
type nopStore struct{}

func (nopStore) Load() ([]history.Entry, error) { return nil, nil }
func (nopStore) Save([]history.Entry) error     { return nil }
func (nopStore) Remove() error                  { return nil }

// newOfflineSession builds a session without a backend client, for commands
// that never call the API.
func newOfflineSession() *studio.Session {
	ledger := history.NewLedger(nopStore{}, zap.NewNop())
	ledger.Load()
	return studio.NewSessionWithResolver(resolveCatalog, catalog.PersonaID(personaID), lang(), nil, ledger, newRNG(), logger)
}

// openLedger opens the configured history backend. The returned closer is a
// no-op for the file backend.
func openLedger() (*history.Ledger, func(), error) {
	var store history.Store
	closer := func() {}

	switch cfg.History.Backend {
	case "sqlite":
		s, err := history.NewSQLiteStore(cfg.History.Path)
		if err != nil {
			return nil, nil, err
		}
		store = s
		closer = func() { _ = s.Close() }
	default:
		if dir := filepath.Dir(cfg.History.Path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, nil, fmt.Errorf("failed to create history directory: %w", err)
			}
		}
		store = history.NewFileStore(cfg.History.Path)
	}

	ledger := history.NewLedger(store, logger)
	ledger.Load()
	return ledger, closer, nil
}

func newClient(ctx context.Context) (*gen.GeminiClient, error) {
	return gen.NewGeminiClient(ctx, gen.GeminiConfig{
		APIKey:     cfg.Gemini.APIKey,
		Model:      cfg.Gemini.Model,
		FlashModel: cfg.Gemini.FlashModel,
	}, logger)
}

// applySelects toggles every --select category=option pair into the session.
func applySelects(s *studio.Session) error {
	cat := resolveCatalog(catalog.PersonaID(personaID))
	for _, pair := range selectFlags {
		categoryID, optionKey, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --select %q (want category=option)", pair)
		}
		conf, found := cat.Category(categoryID)
		if !found {
			return fmt.Errorf("unknown category %q", categoryID)
		}
		var opt catalog.Option
		for _, o := range conf.Options {
			if o.CanonicalKey() == optionKey {
				opt = o
				break
			}
		}
		if opt == nil {
			opt = catalog.NewCustomOption(optionKey)
		}
		s.ToggleOption(categoryID, opt)
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var ct catalog.ContentType
	switch contentTypeFlag {
	case "image":
		ct = catalog.ImagePrompt
	case "post":
		ct = catalog.PostText
	default:
		return fmt.Errorf("invalid --type %q (want image or post)", contentTypeFlag)
	}

	ctx := cmd.Context()
	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	ledger, closer, err := openLedger()
	if err != nil {
		return err
	}
	defer closer()

	s := studio.NewSessionWithResolver(resolveCatalog, catalog.PersonaID(personaID), lang(), client, ledger, newRNG(), logger)
	s.SetContentType(ct)
	s.SetMainAction(strings.Join(args, " "))
	if err := applySelects(s); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, i18n.T(lang(), "generatingButton"))
	result, err := s.Submit(ctx)
	if err != nil {
		if msg := s.ErrorMessage(); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		return err
	}

	if result.ContentType == catalog.ImagePrompt {
		for i, p := range result.Prompts {
			fmt.Printf("--- %s %d ---\n%s\n\n", i18n.T(lang(), "imagePrompts"), i+1, p)
		}
		return nil
	}
	for i, p := range result.Posts {
		fmt.Printf("--- %s %d ---\n", i18n.T(lang(), "postTexts"), i+1)
		fmt.Printf("Exclusive: %s\n", p.Exclusive)
		fmt.Printf("Instagram: %s\n", p.Instagram)
		fmt.Printf("Twitter:   %s\n\n", p.Twitter)
	}
	return nil
}

func runDescribe(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	ctx := cmd.Context()
	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Fprintln(os.Stderr, i18n.T(lang(), "describingImage"))
	description, err := client.DescribeImage(ctx, data, imageMIME, lang())
	if err != nil {
		return fmt.Errorf("%s", gen.Classify(err).Message(lang()))
	}
	fmt.Println(description)
	return nil
}

func runTranslate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	translated, err := client.TranslateToEnglish(ctx, strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("%s", gen.Classify(err).Message(lang()))
	}
	fmt.Println(translated)
	return nil
}
