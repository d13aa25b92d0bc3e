package main

import (
	"github.com/Bossnicks/lofi-music-service/internal/gateway"
)

func main() {
	gw := gateway.NewGateway("http://localhost:11000", "http://localhost:12000", "http://localhost:13000")
	gw.Start(":9999")
}
