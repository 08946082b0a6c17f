package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/peanobrain"
	"github.com/unixpickle/peanobrain/exprtree"
	"github.com/unixpickle/serializer"
)

// maxQuerySteps caps derivations of malformed input.
const maxQuerySteps = 1000

func main() {
	if len(os.Args) != 2 {
		essentials.Die("Usage:", os.Args[0], "<net_file>")
	}
	var net *peanobrain.Network
	if err := serializer.LoadAny(os.Args[1], &net); err != nil {
		essentials.Die("Failed to load network:", err)
	}
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Expr> ")
		if !in.Scan() {
			break
		}
		tree, err := exprtree.Parse(in.Text())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		runQuery(net, tree)
	}
}

// runQuery prints the rule-engine derivation of tree next
// to the network's predicted derivation.
func runQuery(net *peanobrain.Network, tree *exprtree.Tree) {
	trace, err := peanobrain.Reduce(tree, maxQuerySteps)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	for _, t := range trace {
		fmt.Println("rules:", t)
	}

	t := tree
	for step := 0; step < maxQuerySteps; step++ {
		script, next, err := net.Step(t)
		if err != nil {
			fmt.Fprintln(os.Stderr, "prediction failed:", err)
			return
		}
		if len(script) == 0 {
			break
		}
		fmt.Println("net:  ", next)
		t = next
	}
	if t.Equal(trace[len(trace)-1]) {
		fmt.Println("network agrees with the rules")
	} else {
		fmt.Println("network disagrees with the rules")
	}
}
