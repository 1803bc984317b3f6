package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	lib "github.com/ratticon/trainboard"
	"github.com/ratticon/trainboard/config"
	"github.com/ratticon/trainboard/display"
	"github.com/ratticon/trainboard/odpt"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to board configuration")
	displayKind := flag.String("display", "lcd", "lcd|console")
	once := flag.Bool("once", false, "run a single refresh cycle and exit")
	flag.Parse()

	lib.InitLogging()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var disp display.Display
	switch *displayKind {
	case "console":
		disp = display.NewConsole(cfg.Display.Width, cfg.Display.Rows)
	case "lcd":
		log.Printf("initializing %dx%d LCD...", cfg.Display.Width, cfg.Display.Rows)
		lcd, err := display.OpenLCD(cfg.Display.I2CBus, cfg.Display.I2CAddr, cfg.Display.Width, cfg.Display.Rows)
		if err != nil {
			log.Fatalf("display: %v", err)
		}
		defer lcd.Close()
		disp = lcd
	default:
		log.Fatalf("unknown display %q", *displayKind)
	}

	client := odpt.NewClient(cfg.APIKey, time.Duration(cfg.TimeoutSeconds)*time.Second)
	loop := lib.NewLoop(cfg, client, disp)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *once {
		loop.Cycle(ctx)
		return
	}
	loop.Run(ctx)
}
