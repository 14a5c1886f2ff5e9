package main

import "github.com/isaqueks/tasks/internal/app"

// @title           Tasks API
// @version         1.0
// @description     Multi-tenant task manager for freelancers: companies, tasks, observations and a weekly board.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
