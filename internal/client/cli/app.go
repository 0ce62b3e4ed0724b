package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/rofaidaezzat/fashon-dashboard/internal/client/api"
	"github.com/rofaidaezzat/fashon-dashboard/internal/client/config"
	"github.com/rofaidaezzat/fashon-dashboard/internal/client/models"
	"github.com/rofaidaezzat/fashon-dashboard/internal/client/session"
	"github.com/rofaidaezzat/fashon-dashboard/internal/client/services"
	"github.com/rofaidaezzat/fashon-dashboard/internal/logging"

	_ "modernc.org/sqlite"
)

// view names the listing the navigation commands (next, prev, goto)
// currently apply to.
type view string

const (
	viewNone     view = ""
	viewProducts view = "products"
	viewMessages view = "messages"
)

// App holds the wired services and the per-listing browsing state of one
// interactive session.
type App struct {
	config         *config.Config
	authService    services.AuthService
	productService services.ProductService
	contactService services.ContactService
	store          *session.Store
	log            logging.Logger
	reader         *bufio.Reader

	// Browsing state. The item slices are the rows as last rendered, so that
	// "view 2" resolves against exactly what the user sees on screen.
	activeView   view
	productPage  int
	productList  []models.Product
	productPages int
	messagePage  int
	messageList  []models.ContactMessage
	messagePages int
}

// NewApp opens the session store and wires the API clients and services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := session.Open(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error opening session store", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, store, log)

	as := services.NewAuthService(apiClient, store, log)
	ps := services.NewProductService(apiClient, c.PageLimit, log)
	cs := services.NewContactService(apiClient, c.PageLimit, log)

	return &App{
		config:         c,
		authService:    as,
		productService: ps,
		contactService: cs,
		store:          store,
		log:            log,
		reader:         bufio.NewReader(os.Stdin),
		productPage:    1,
		messagePage:    1,
	}, nil
}

// Run starts the REPL and closes the session store when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsAuthenticated(context.Background())
}
