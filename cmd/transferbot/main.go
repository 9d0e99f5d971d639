// Binary transferbot sends an SPL token transfer and records it in transfers.csv.
package main

import (
	"os"

	"walletlog-go/internal/cli"
)

func main() {
	os.Exit(cli.NewTransfer().Execute(os.Args[1:]))
}
