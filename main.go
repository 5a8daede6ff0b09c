// Command sic evaluates programs written in the Symmetric Interaction
// Calculus: it reads a source file, optionally appends a `-i` expression
// as a `main` definition, reduces the program to normal form, and prints
// the result.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/srvictormaia/sic-go/sic"
)

var (
	input string
	stats bool
)

func init() {
	flag.StringVar(&input, "i", "", "input expression, bound to `main` and appended to the source file")
	flag.StringVar(&input, "input", "", "long form of -i")
	flag.BoolVar(&stats, "s", false, "print reduction statistics after the result")
	flag.BoolVar(&stats, "stats", false, "long form of -s")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 1 {
		glog.Exitf("usage: %s [-i EXPR] [-s] FILE", os.Args[0])
	}
	file := flag.Arg(0)

	code, err := os.ReadFile(file)
	if err != nil {
		glog.Exitf("reading %s: %v", file, err)
	}

	if input != "" {
		code = sic.WithMain(code, input)
	}

	term, err := sic.Parse(code)
	if err != nil {
		glog.Exitf("%v", err)
	}

	norm, s, err := sic.Eval(term)
	if err != nil {
		glog.Exitf("%v", err)
	}
	glog.V(1).Infof("reduced %s: %+v", file, s)

	fmt.Println(string(sic.Print(norm)))
	if stats {
		fmt.Printf("%+v\n", s)
	}
}
