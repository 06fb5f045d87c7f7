// Command treediff prints the minimum-cost edit mapping between two trees.
package main

import "github.com/HuygensING/alexandria-markup-sub001/cmd/treediff/internal/cli"

func main() {
	cli.Execute()
}
