package main

import "fittrack_backend/internal/app"

func main() {
	app.Run()
}
