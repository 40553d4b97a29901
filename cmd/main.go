package main

import "warehouse/cmd/app"

func main() {
	app.Args.Parse()

	app.StartInit()

	app.InitDefault()
	app.InitConnections()
	Router := app.InitRouter()

	app.EndInit()

	app.Start(Router)
}
