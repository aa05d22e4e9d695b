// Command rek is a small driver around the regex package and its
// internal/arith collaborator, mirroring the demo flow in
// original_source/src/main.cpp: parse a regex, show its postfix form and
// reconstructed infix form, optionally match it against an input, and feed
// any positional arguments through the arithmetic parser.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/regexthompson/regexthompson/internal/arith"
	"github.com/regexthompson/regexthompson/regex"
)

func main() {
	regexFlag := flag.String("regex", "", "regex to compile")
	inputFlag := flag.String("input", "", "input string to match against -regex")
	postfixFlag := flag.String("postfix", "", "postfix expression to round-trip through FromPostfix")
	dumpFlag := flag.Bool("dump", false, "print the NFA built from -regex")
	flag.Parse()

	if *postfixFlag != "" {
		runPostfix(*postfixFlag)
	}

	if *regexFlag != "" {
		runRegex(*regexFlag, *inputFlag, *dumpFlag)
	}

	for _, arg := range flag.Args() {
		parseArith(arg)
	}
}

func runPostfix(postfix string) {
	infix, err := regex.FromPostfix(postfix)
	if err != nil {
		log.Fatalf("from_postfix %q: %v", postfix, err)
	}
	fmt.Printf("%s -> %s\n", postfix, infix)
}

func runRegex(re, input string, dump bool) {
	postfix, err := regex.ToPostfix(re)
	if err != nil {
		log.Fatalf("to_postfix %q: %v", re, err)
	}
	fmt.Printf("regex:   %s\n", re)
	fmt.Printf("postfix: %s\n", postfix)

	if reconstructed, err := regex.FromPostfix(postfix); err == nil {
		fmt.Printf("infix:   %s\n", reconstructed)
	}

	nfa, err := regex.BuildNFA(re)
	if err != nil {
		log.Fatalf("build_nfa %q: %v", re, err)
	}

	if dump {
		fmt.Print(dumpNFA(nfa))
	}

	if input != "" {
		matched, err := regex.Matches(re, input)
		if err != nil {
			log.Fatalf("matches %q %q: %v", re, input, err)
		}
		fmt.Printf("matches(%q, %q) = %v\n", re, input, matched)
	}
}

// dumpNFA renders an NFA's structure for -dump, in the spirit of
// FlyGinger-rek/src/rek.go's convertNFAToString: one line per node,
// showing its kind and outgoing links by index.
func dumpNFA(nfa *regex.NFA) string {
	var sb strings.Builder
	nodes := nfa.Describe()
	fmt.Fprintf(&sb, "NFA with %d node(s), head %d\n", len(nodes), nfa.Head())
	for i, n := range nodes {
		fmt.Fprintf(&sb, "node %d: %s\n", i, n)
	}
	return sb.String()
}

func parseArith(input string) {
	lex := arith.NewLexer(input)
	p := arith.NewParser(lex)

	for {
		expr, err := p.Next()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		if expr == nil {
			return
		}
		arith.PrintTree(expr, func(line string) { fmt.Println(line) })
	}
}
