package main

import "sitecrew/internal/app/server"

func main() {
	server.Run()
}
