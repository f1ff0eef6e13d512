package main

import "github.com/llehouerou/storesearch/internal/cli"

func main() {
	cli.Execute()
}
