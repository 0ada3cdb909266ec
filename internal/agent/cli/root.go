// Package cli реализует командный интерфейс (CLI) клиента siteauth.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локального профиля (последний успешный вход);
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/siteauth/internal/agent/config"
)

// DefaultServerURL — адрес сервера, если --server не задан.
const DefaultServerURL = "http://127.0.0.1:3000"

// App содержит состояние CLI-приложения, разделяемое между командами.
type App struct {
	// ServerURL — базовый URL сервера siteauth.
	ServerURL string

	// ProfilePath — путь к файлу профиля.
	ProfilePath string
	// Profile — загруженный профиль. Пустой, если входа ещё не было.
	Profile *config.Profile
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются командой version.
// В PersistentPreRunE определяется путь к профилю и загружается профиль;
// если ProfilePath уже задан (тесты), используется он.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}
	return newRootCmd(app, buildVersion, buildDate)
}

// NewRootCmdWithApp — то же, что NewRootCmd, но поверх готового App.
func NewRootCmdWithApp(app *App, buildVersion, buildDate string) *cobra.Command {
	return newRootCmd(app, buildVersion, buildDate)
}

func newRootCmd(app *App, buildVersion, buildDate string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "siteauth",
		Short: "siteauth CLI — регистрация и вход на сервере siteauth",
		Long: `siteauth CLI.

Команды:
  register  Регистрация нового пользователя
  login     Вход (данные пользователя сохраняются в профиль)
  whoami    Показать пользователя из профиля
  logout    Удалить профиль
  version   Версия и дата сборки

Примеры:

Регистрация:
  siteauth register --email test@example.com --fullname "Test User"
  (пароль будет запрошен без эха)

Вход:
  siteauth login --email test@example.com --password StrongPass123

Другой сервер:
  siteauth --server http://example.com:3000 whoami
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.ProfilePath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.ProfilePath = p
			}

			profile, err := config.Load(app.ProfilePath)
			if err != nil {
				return fmt.Errorf("load profile %s: %w", app.ProfilePath, err)
			}
			app.Profile = profile
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", DefaultServerURL, "server base URL")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewWhoamiCmd(app))
	cmd.AddCommand(NewLogoutCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
