// Binary balancebot records a wallet's SOL balance in balance.csv.
package main

import (
	"os"

	"walletlog-go/internal/cli"
)

func main() {
	os.Exit(cli.NewBalance().Execute(os.Args[1:]))
}
