package main

import (
	"caloriex-backend/config"
	"caloriex-backend/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":8080")
}
