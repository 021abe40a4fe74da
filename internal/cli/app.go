package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gymcli/internal/api"
	"gymcli/internal/auth"
	"gymcli/internal/config"
	"gymcli/internal/cryptox"
	"gymcli/internal/filex"
	"gymcli/internal/logging"
	"gymcli/internal/repositories/credentials"
	"gymcli/internal/services"

	_ "modernc.org/sqlite"
)

// App wires the gym client together: config, credential store, API client,
// session manager, workout service and the REPL.
type App struct {
	config    *config.Config
	apiClient *api.HTTPClient
	auth      *auth.Manager
	workouts  services.WorkoutService
	log       logging.Logger
	reader    *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	dataDir := c.DataDir
	if dataDir == "" {
		var err error
		dataDir, err = filex.DefaultDataDir()
		if err != nil {
			return nil, fmt.Errorf("resolving data dir: %w", err)
		}
	} else {
		if _, err := filex.EnsureDir(dataDir); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
	}

	key, err := cryptox.LoadOrCreateKey(filepath.Join(dataDir, "device.key"))
	if err != nil {
		return nil, err
	}
	box, err := cryptox.NewBox(key)
	if err != nil {
		return nil, err
	}

	db, err := credentials.InitDatabase(ctx, filepath.Join(dataDir, "credentials.db"))
	if err != nil {
		return nil, fmt.Errorf("initializing credential database: %w", err)
	}

	store := credentials.NewSQLiteStore(db, box)
	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	session := auth.NewSession()
	manager := auth.NewManager(apiClient, apiClient, store, session, log)
	workouts := services.NewWorkoutService(apiClient, log)

	return &App{
		config:    c,
		apiClient: apiClient,
		auth:      manager,
		workouts:  workouts,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return !a.auth.Session().User().IsZero()
}

// statusLine renders the REPL prompt status: the signed-in user's name, or
// empty when anonymous.
func (a *App) statusLine() string {
	user := a.auth.Session().User()
	if user.IsZero() {
		return ""
	}
	return fmt.Sprintf("(%s)", user.Name)
}

// Ping checks whether the backend is reachable and reports the result.
func (a *App) Ping(ctx context.Context) error {
	if err := a.apiClient.Ping(ctx); err != nil {
		printErr(err)
		return err
	}
	printlnFn("Server is up.")
	return nil
}

// Run rehydrates the session once and enters the REPL. It blocks until the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.apiClient.Close()

	if err := a.apiClient.Ping(ctx); err != nil {
		a.log.Warn(ctx, "server unreachable at startup", "error", err)
		printlnFn("Warning: the server is not reachable right now.")
	}

	a.auth.Rehydrate(ctx)

	if user := a.auth.Session().User(); !user.IsZero() {
		printlnFn(fmt.Sprintf("Welcome back, %s! (type 'help' for commands)", user.Name))
	} else {
		printlnFn("Welcome to the gym client (type 'help' for commands)")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.statusLine, scanner)
}
