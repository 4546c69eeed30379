// Package main provides the fuser CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/fuser/ir"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("fuser %s\n", version)
	case "demo":
		if err := demo(); err != nil {
			fmt.Fprintf(os.Stderr, "demo: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("fuser - typed expression graph builder")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Build a sample graph and print its statements")
}

// demo builds blocks = ceilDiv(int(x + n), n) over a 2-D tensor.
func demo() error {
	a := ir.NewArena()

	x, err := a.NewTensor(ir.Shape{128, 64}, ir.Float)
	if err != nil {
		return err
	}
	n := a.NewScalar(ir.Int)

	sum, err := a.Add(x, n)
	if err != nil {
		return err
	}
	idx, err := a.CastOp(ir.Int, sum)
	if err != nil {
		return err
	}
	if _, err := a.CeilDiv(idx, n); err != nil {
		return err
	}

	fmt.Printf("inputs: %d, values: %d, statements: %d\n", len(a.Inputs()), a.NumValues(), a.NumStatements())
	fmt.Print(a)
	return nil
}
