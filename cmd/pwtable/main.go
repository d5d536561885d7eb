// Binary pwtable prints password tables: grids of random characters from
// which passwords are read as paths of coordinates.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/pwtable/pwtable/pwtable"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := (pwtable.Context{}).Execute(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}
