package main

import (
	"context"
	"log"

	"github.com/nsqlite/litedb/internal/litecli"
)

func main() {
	if err := litecli.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
