package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/chatterbox-app/chatterbox/internal/client/config"
	"github.com/chatterbox-app/chatterbox/internal/client/history"
	"github.com/chatterbox-app/chatterbox/internal/client/repository"
	"github.com/chatterbox-app/chatterbox/internal/client/session"
	"github.com/chatterbox-app/chatterbox/internal/client/usecase"
)

// Uploader is the slice of the API client the record command needs
// for the direct file PUT.
type Uploader interface {
	UploadFile(ctx context.Context, uploadURL, contentType string, payload io.Reader, size int64) error
}

type Cli struct {
	session     *session.Controller
	requestLink *usecase.RequestMagicLink
	login       *usecase.LoginWithMagicToken
	logout      *usecase.Logout
	accounts    *repository.AccountRepository
	cues        *repository.CueRepository
	recordings  *repository.RecordingRepository
	uploader    Uploader
	config      *config.Store
	gate        *config.Gate
	history     *history.Store
}

func New(
	sess *session.Controller,
	requestLink *usecase.RequestMagicLink,
	login *usecase.LoginWithMagicToken,
	logout *usecase.Logout,
	accounts *repository.AccountRepository,
	cues *repository.CueRepository,
	recordings *repository.RecordingRepository,
	uploader Uploader,
	configStore *config.Store,
	gate *config.Gate,
	historyStore *history.Store,
) *Cli {
	return &Cli{
		session:     sess,
		requestLink: requestLink,
		login:       login,
		logout:      logout,
		accounts:    accounts,
		cues:        cues,
		recordings:  recordings,
		uploader:    uploader,
		config:      configStore,
		gate:        gate,
		history:     historyStore,
	}
}

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error
	switch command {
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "me":
		err = c.runMe(ctx)
	case "cues":
		err = c.runCues(ctx, args)
	case "record":
		err = c.runRecord(ctx, args)
	case "history":
		err = c.runHistory(ctx)
	case "config":
		err = c.runConfig(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func PrintUsage() {
	fmt.Println("Chatterbox Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  chatterbox [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: https://api.chatterbox.app)")
	fmt.Println("  --db PATH      Path to the local database (default: chatterbox-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login           Sign in with a magic link")
	fmt.Println("  logout          Sign out and clear the local session")
	fmt.Println("  status          Show session status")
	fmt.Println("  me              Show the account profile")
	fmt.Println("  cues [--shuffle]        List practice cues")
	fmt.Println("  record <file>           Upload a practice recording")
	fmt.Println("  history         Show the recording history")
	fmt.Println("  config          Show the runtime configuration")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  chatterbox login")
	fmt.Println("  chatterbox cues --shuffle")
	fmt.Println("  chatterbox record take1.m4a")
	fmt.Println("  chatterbox --server https://staging.chatterbox.app status")
}

// readInput reads a line from stdin.
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readSecret reads a line from stdin without echoing it. Magic tokens
// are single use but still grant a session, so they stay off the
// screen and out of the shell history.
func readSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	secretBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secretBytes)), nil
}
