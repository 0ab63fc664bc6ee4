package main

import (
	"go.uber.org/fx"

	appfx "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
