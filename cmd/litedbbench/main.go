package main

import (
	"context"
	"log"

	"github.com/nsqlite/litedb/internal/litebench"
)

func main() {
	if err := litebench.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
