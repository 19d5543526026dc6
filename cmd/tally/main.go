package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/clarktrimble/sabot"

	"tally"
	"tally/store/duck"
	"tally/util"
)

const (
	cfgFile = "tally.yaml"
	mode    = 0644
)

func main() {

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	written, err := util.SampleConfig(tally.SampleConfig, cfgFile, mode)
	check(err)
	if written {
		fmt.Printf("wrote sample config to %s\n", cfgFile)
	}

	cfg := &tally.Config{}
	err = util.LoadConfig(cfg, cfgFile)
	check(err)

	_, err = util.SampleConfig(tally.SampleLayout, cfg.Layout, mode)
	check(err)

	logFile := util.OpenLog(cfg.LogFile, mode)
	defer util.CloseLog(logFile)

	lgr := &sabot.Sabot{Writer: logFile}
	lgr.Info(ctx, "starting up", "config", cfg)

	dk, err := duck.New(lgr)
	check(err)
	defer dk.Close()

	err = cfg.New(dk, lgr).Run(ctx)
	if err != nil {
		lgr.Error(ctx, "run failed", err)
	}
	check(err)

	lgr.Info(ctx, "shutting down")
}

func check(err error) {

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}
}
