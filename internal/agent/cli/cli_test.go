package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/siteauth/internal/agent/cli"
	"github.com/IvanChernomyrdin/siteauth/internal/agent/config"
)

// fakeServer отвечает как siteauth для одного пользователя a@x.com / secret123.
func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()

	registered := map[string]bool{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/register", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		email, _ := req["email"].(string)
		if registered[email] {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"ok":false,"message":"Email already registered"}`))
			return
		}
		registered[email] = true
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true,"message":"Registered"}`))
	})
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		if req.Email != "a@x.com" || req.Password != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"ok":false,"message":"Invalid credentials"}`))
			return
		}
		w.Write([]byte(`{"ok":true,"message":"Logged in","user":{"id":1,"fullname":"Alice","email":"a@x.com"}}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newApp(t *testing.T, serverURL string) *cli.App {
	t.Helper()
	return &cli.App{
		ServerURL:   serverURL,
		ProfilePath: filepath.Join(t.TempDir(), "profile.json"),
		Profile:     &config.Profile{},
	}
}

func run(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// nil заставит cobra взять os.Args
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRegisterCmd_Success(t *testing.T) {
	srv := fakeServer(t)
	app := newApp(t, srv.URL)

	out, err := run(cli.NewRegisterCmd(app), "--email", "a@x.com", "--password", "secret123", "--fullname", "Alice")
	require.NoError(t, err)
	require.Contains(t, out, "registration successful: Registered")
}

func TestRegisterCmd_Conflict(t *testing.T) {
	srv := fakeServer(t)
	app := newApp(t, srv.URL)

	_, err := run(cli.NewRegisterCmd(app), "--email", "a@x.com", "--password", "secret123")
	require.NoError(t, err)

	_, err = run(cli.NewRegisterCmd(app), "--email", "a@x.com", "--password", "secret123")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Email already registered")
}

func TestRegisterCmd_PasswordFromStdin(t *testing.T) {
	srv := fakeServer(t)
	app := newApp(t, srv.URL)

	cmd := cli.NewRegisterCmd(app)
	cmd.SetIn(strings.NewReader("secret123\n"))

	out, err := run(cmd, "--email", "b@x.com", "--password-stdin")
	require.NoError(t, err)
	require.Contains(t, out, "registration successful")
}

func TestRegisterCmd_PromptsForPassword(t *testing.T) {
	srv := fakeServer(t)
	app := newApp(t, srv.URL)

	orig := cli.ReadPassword
	t.Cleanup(func() { cli.ReadPassword = orig })

	called := false
	cli.ReadPassword = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		called = true
		require.False(t, fromStdin)
		return "secret123", nil
	}

	_, err := run(cli.NewRegisterCmd(app), "--email", "c@x.com")
	require.NoError(t, err)
	require.True(t, called)
}

func TestRegisterCmd_EmailRequired(t *testing.T) {
	app := newApp(t, "http://127.0.0.1:1")

	_, err := run(cli.NewRegisterCmd(app), "--password", "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "email")
}

func TestLoginCmd_SavesProfile(t *testing.T) {
	srv := fakeServer(t)
	app := newApp(t, srv.URL)

	out, err := run(cli.NewLoginCmd(app), "--email", "a@x.com", "--password", "secret123")
	require.NoError(t, err)
	require.Contains(t, out, "login ok: a@x.com (id=1)")

	// проверим, что профиль реально сохранился в файл
	loaded, err := config.Load(app.ProfilePath)
	require.NoError(t, err)
	require.Equal(t, int64(1), loaded.UserID)
	require.Equal(t, "a@x.com", loaded.Email)
	require.NotNil(t, loaded.Fullname)
	require.Equal(t, "Alice", *loaded.Fullname)
	require.Equal(t, srv.URL, loaded.Server)
	require.False(t, loaded.LoggedInAt.IsZero())
}

func TestLoginCmd_InvalidCredentials_DoesNotSave(t *testing.T) {
	srv := fakeServer(t)
	app := newApp(t, srv.URL)

	_, err := run(cli.NewLoginCmd(app), "--email", "a@x.com", "--password", "wrong")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid credentials")

	loaded, err := config.Load(app.ProfilePath)
	require.NoError(t, err)
	require.False(t, loaded.LoggedIn())
}

func TestRoot_LoginWhoamiLogout(t *testing.T) {
	srv := fakeServer(t)
	profilePath := filepath.Join(t.TempDir(), "profile.json")

	newRoot := func() *cobra.Command {
		return cli.NewRootCmdWithApp(&cli.App{ProfilePath: profilePath}, "dev", "unknown")
	}

	_, err := run(newRoot(), "whoami")
	require.ErrorIs(t, err, cli.ErrNotLoggedIn)

	_, err = run(newRoot(), "--server", srv.URL, "login", "--email", "a@x.com", "--password", "secret123")
	require.NoError(t, err)

	out, err := run(newRoot(), "whoami")
	require.NoError(t, err)
	require.Contains(t, out, "id=1")
	require.Contains(t, out, "email=a@x.com")
	require.Contains(t, out, "fullname=Alice")
	require.Contains(t, out, "server="+srv.URL)

	out, err = run(newRoot(), "logout")
	require.NoError(t, err)
	require.Contains(t, out, "logged out")

	_, err = run(newRoot(), "whoami")
	require.ErrorIs(t, err, cli.ErrNotLoggedIn)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(cli.NewVersionCmd("1.2.3", "2026-01-01"))
	require.NoError(t, err)
	require.Equal(t, "siteauth 1.2.3 (built 2026-01-01)\n", out)
}

func TestRoot_VersionShowsServer(t *testing.T) {
	root := cli.NewRootCmdWithApp(&cli.App{ProfilePath: filepath.Join(t.TempDir(), "profile.json")}, "dev", "unknown")

	out, err := run(root, "--server", "http://example.com:3000", "version")
	require.NoError(t, err)
	require.Contains(t, out, "siteauth dev (built unknown)")
	require.Contains(t, out, "server: http://example.com:3000")
}
