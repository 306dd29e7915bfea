package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"blindsteg/internal/cli"
)

func main() {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM) // subscribe to system signals
	onKill := func(c chan os.Signal) {
		<-c
		if err := cli.StopProfilers(); err != nil {
			fmt.Fprintf(os.Stderr, "Error flushing profiles: %v\n", err)
		}
		os.Exit(0)
	}

	go onKill(c)

	if err := cli.RootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		_ = cli.StopProfilers()
		os.Exit(1)
	}
}
