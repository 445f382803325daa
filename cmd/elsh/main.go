package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	elruntime "github.com/extendable-lang/el-runtime"
	"github.com/extendable-lang/el-runtime/engine"
	"github.com/extendable-lang/el-runtime/lib/file"
	"github.com/extendable-lang/el-runtime/runtime"
)

// argList collects repeated -arg flags in call order.
type argList []string

func (a *argList) String() string {
	return strings.Join(*a, ",")
}

func (a *argList) Set(v string) error {
	*a = append(*a, v)
	return nil
}

func main() {
	var args argList
	var (
		call        = flag.String("call", "", "Function to call as library:function")
		list        = flag.Bool("list", false, "List registered functions and exit")
		interactive = flag.Bool("i", false, "Interactive console with TUI")
		debug       = flag.Bool("debug", false, "Log operation detail to stderr")
	)
	flag.Var(&args, "arg", "Argument to pass (repeatable, in order)")
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		engine.SetLogger(logger)
		runtime.SetLogger(logger)
		file.SetLogger(logger)
	}

	reg, err := runtime.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		printFunctions(reg)
		return
	}

	// With no work on the command line, a terminal gets the console.
	if *interactive || (*call == "" && stdinIsTerminalNow()) {
		if err := runInteractive(reg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *call == "" {
		fmt.Fprintln(os.Stderr, "Usage: elsh -call library:function [-arg value ...]")
		fmt.Fprintln(os.Stderr, "       elsh -list")
		fmt.Fprintln(os.Stderr, "       elsh -i  (interactive console)")
		os.Exit(1)
	}

	if err := run(reg, *call, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(reg *runtime.Registry, call string, args []string) error {
	out, err := reg.Call(call, args...)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func printFunctions(reg *runtime.Registry) {
	fmt.Println("Registered functions:")
	for _, lib := range reg.Libraries() {
		sigs := make(map[string]elruntime.Signature)
		for _, sig := range reg.Signatures(lib) {
			sigs[sig.Name] = sig
		}
		for _, fn := range reg.Functions(lib) {
			if sig, ok := sigs[fn]; ok {
				fmt.Printf("  %s:%s(%s)  %s\n", lib, fn, strings.Join(sig.Params, ", "), sig.Doc)
			} else {
				fmt.Printf("  %s:%s\n", lib, fn)
			}
		}
	}
}
