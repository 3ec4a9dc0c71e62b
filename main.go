package main

import (
	"log"
	"os"
)

// @title Coffee Order API
// @version 1.0
// @description Drink customization, pricing and cart API
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
