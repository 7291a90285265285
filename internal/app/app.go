// Package app wires the application's services together.
package app

import (
	"github.com/nfrund/compliance-shell/internal/assets"
	"github.com/nfrund/compliance-shell/internal/config"
	"github.com/nfrund/compliance-shell/internal/profile"
	"github.com/nfrund/compliance-shell/internal/router"
	"github.com/nfrund/compliance-shell/internal/server"
	"github.com/nfrund/compliance-shell/internal/shell"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// New returns an injector providing every service built from cfg. Services
// are constructed lazily on first invocation.
func New(cfg *config.Config) do.Injector {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.Provide(i, provideRoutes)
	do.Provide(i, provideAssets)
	do.Provide(i, provideProfileClient)
	do.Provide(i, provideShell)
	do.Provide(i, provideLoads)
	do.Provide(i, provideServer)
	return i
}

func provideRoutes(i do.Injector) (router.Table, error) {
	return router.Default(), nil
}

func provideAssets(i do.Injector) (afero.Fs, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return assets.NewFS(cfg.AssetsDir), nil
}

func provideProfileClient(i do.Injector) (*profile.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return profile.NewClient(cfg.ProfileURL(), cfg.FetchTimeout), nil
}

func provideShell(i do.Injector) (*shell.Shell, error) {
	return shell.New(do.MustInvoke[*profile.Client](i)), nil
}

func provideLoads(i do.Injector) (*shell.Registry, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return shell.NewRegistry(cfg.LoadTTL), nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	s := server.New(server.Dependencies{
		Config: do.MustInvoke[*config.Config](i),
		Shell:  do.MustInvoke[*shell.Shell](i),
		Loads:  do.MustInvoke[*shell.Registry](i),
		Routes: do.MustInvoke[router.Table](i),
		Assets: do.MustInvoke[afero.Fs](i),
	})
	s.RegisterRoutes()
	return s, nil
}
