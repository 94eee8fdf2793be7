package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/lsvpa/vlparse"
)

type args struct {
	inputPath *string
	logLevel  *string
	noMmap    *bool
}

func readArgs() *args {
	a := &args{
		inputPath: flag.String("input", "", "Path to the Verilog file"),
		logLevel:  flag.String("log-level", "info", "Driver log level (debug, info, warn, error)"),
		noMmap:    flag.Bool("no-mmap", false, "Read the input file instead of memory-mapping it"),
	}
	flag.Parse()
	return a
}

func main() {
	a := readArgs()

	if *a.inputPath == "" {
		log.Fatal("Input file not informed")
	}

	cfg := vlparse.NewConfig()
	cfg.SetString("driver.log_level", *a.logLevel)
	if *a.noMmap {
		cfg.SetBool("driver.mmap_input", false)
	}

	d, err := vlparse.ParseDesign(*a.inputPath, cfg)
	if err != nil {
		log.Fatal(err)
	}

	for _, ntk := range d.Modules {
		kind := "module"
		if ntk.Blackbox {
			kind = "blackbox"
		}
		fmt.Printf("%s %s: %d port(s), %d box(es)\n",
			kind, d.Interner.String(ntk.Name), len(ntk.Ports), len(ntk.Boxes))
	}
}
