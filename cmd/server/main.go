package main

import (
	"go.uber.org/fx"

	"github.com/andrasnagy-data/userauth/internal/components/user"
	"github.com/andrasnagy-data/userauth/internal/server"
	"github.com/andrasnagy-data/userauth/internal/shared/config"
	"github.com/andrasnagy-data/userauth/internal/shared/database"
	"github.com/andrasnagy-data/userauth/internal/shared/logging"
)

func main() {
	fx.New(
		fx.Provide(
			config.NewConfig,
			logging.NewLogger,
			database.NewPgxPool,
			server.NewServer,
			server.NewHealthSrvc,
			server.NewHealthHandler,
			user.NewRepo,
			user.NewIssuer,
			user.NewService,
			fx.Annotate(user.NewRouter, fx.ResultTags(`name:"userRouter"`)),
		),
		fx.Invoke(database.RunMigrations, server.Register),
	).Run()
}
