package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fujiwara/teamcheck"
)

var (
	trapSignals = []os.Signal{
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	}
)

func main() {
	log.SetOutput(teamcheck.NewLogFilter(teamcheck.DefaultLogLevel, os.Stderr))
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)

	var cli teamcheck.CLI
	parser, err := kong.New(&cli,
		kong.Name("teamcheck"),
		kong.Description("Read n and n integers, print YES if the largest fits in sum/3 teams, NO otherwise."),
	)
	if err != nil {
		log.Println("[error]", err)
		os.Exit(1)
	}

	kongCtx, err := parser.Parse(os.Args[1:])
	if err != nil {
		log.Println("[error]", err)
		os.Exit(1)
	}

	cmdName := kongCtx.Command()
	if cmdName == "version" {
		fmt.Printf("teamcheck version %s\n", teamcheck.Version)
		return
	}

	conf, err := cli.Options()
	if err != nil {
		log.Println("[error]", err)
		os.Exit(1)
	}
	log.SetOutput(teamcheck.NewLogFilter(conf.LogLevel, os.Stderr))
	log.Println("[debug] teamcheck", teamcheck.Version)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, trapSignals...)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		// reads from stdin do not return on cancel, so bail out here
		sig := <-sigCh
		log.Println("[info] SIGNAL", sig, "shutting down")
		cancel()
		os.Exit(2)
	}()

	switch cmdName {
	case "check":
		err = teamcheck.RunFiles(ctx, conf.Input, conf.Output, os.Stdin, os.Stdout)
	default:
		err = fmt.Errorf("command %s not exist", cmdName)
	}
	if err != nil {
		log.Println("[error]", err)
		os.Exit(1)
	}
}
