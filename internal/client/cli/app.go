package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/studentteacher/internal/client/client"
	"github.com/dmitrijs2005/studentteacher/internal/client/config"
)

type App struct {
	config   *config.Config
	client   client.Client
	identity *client.Identity
	email    string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	session, err := client.NewSessionStore(c.SessionDir)
	if err != nil {
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout, session)
	if err != nil {
		return nil, err
	}

	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, reader: bufio.NewReader(in), out: out}
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	fmt.Fprintf(a.out, "Connected to %s (type 'help' for commands)\n", a.config.ServerEndpointAddr)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

func (a *App) getStatus() string {
	switch {
	case a.identity != nil && a.email != "":
		return fmt.Sprintf("(%s %s)", a.email, a.identity.Role)
	case a.identity != nil:
		return fmt.Sprintf("(%s)", a.identity.Role)
	case a.isLoggedIn():
		return "(session)"
	default:
		return ""
	}
}
