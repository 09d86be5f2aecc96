package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/praxis-dev/client/api"
	"github.com/praxis-dev/client/conf"
	"github.com/praxis-dev/client/logger"
	"github.com/praxis-dev/client/session"
	"github.com/praxis-dev/client/uimsg"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, uimsg.ForError(err, uimsg.CtxGeneral))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := conf.Resolve()
	if err != nil {
		return err
	}

	logPath := flag.String("log", "", "write debug log to file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log = logger.New(f, cfg.Debug)
	}
	slog.SetDefault(log)

	sessPath, err := session.DefaultPath()
	if err != nil {
		return err
	}
	sess, err := session.NewStore(sessPath)
	if err != nil {
		return err
	}
	client := api.New(cfg.ApiBaseUrl, sess)

	ctx := logger.WithLogger(context.Background(), log)

	switch flag.Arg(0) {
	case "login":
		return cmdLogin(sess, flag.Arg(1))
	case "logout":
		return sess.SignOut()
	case "health":
		return cmdHealth(ctx, client)
	case "upload-resume":
		return cmdUploadResume(ctx, client, flag.Arg(1))
	case "":
		return runTUI(ctx, client, sess)
	}
	return fmt.Errorf("unknown command %q", flag.Arg(0))
}

// cmdLogin stores an access token issued by the identity provider.
// The token itself comes from the web app's session (token refresh is
// the provider's job, not ours).
func cmdLogin(sess *session.Store, token string) error {
	if token == "" {
		return fmt.Errorf("usage: praxis login <access-token>")
	}
	if err := sess.SetToken(token); err != nil {
		return err
	}
	claims, _ := sess.Claims()
	fmt.Printf("Sessão iniciada como %s\n", claims.Email)
	return nil
}

func cmdHealth(ctx context.Context, client *api.Client) error {
	if err := client.Health(ctx); err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}

func cmdUploadResume(ctx context.Context, client *api.Client, path string) error {
	if path == "" {
		return fmt.Errorf("usage: praxis upload-resume <file>")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	resume, err := client.UploadResumeFile(ctx, filepath.Base(path), data, "")
	if err != nil {
		return err
	}
	fmt.Printf("Currículo enviado: %s (id %d)\n", resume.Title, resume.ID)
	return nil
}

func runTUI(ctx context.Context, client *api.Client, sess *session.Store) error {
	if _, ok := sess.Claims(); !ok {
		return fmt.Errorf("no active session; run: praxis login <access-token>")
	}
	p := tea.NewProgram(initialModel(ctx, client, sess))
	_, err := p.Run()
	return err
}
