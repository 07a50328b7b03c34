// Command keyreaderctl polls the primary keyboard and prints the number of
// tracked keys currently held down, optionally draining press/release
// events from the device queue. "keyreaderctl list" enumerates all HID
// devices so you can check which keyboard the session will bind.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sstallion/go-hid"

	"github.com/seagrayinc/hidkeys/internal/iokit"
	"github.com/seagrayinc/hidkeys/pkg/keyreader"
)

func main() {
	queue := flag.Bool("queue", false, "also drain press/release events from the device queue")
	interval := flag.Duration("interval", 250*time.Millisecond, "polling interval")
	debug := flag.Bool("debug", false, "report error pseudo-key state while polling")
	verbose := flag.Bool("v", false, "log session tracing to stderr")
	flag.Parse()

	if flag.Arg(0) == "list" {
		if err := listDevices(); err != nil {
			fmt.Fprintf(os.Stderr, "list failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM, syscall.SIGINT,
	)
	defer stop()

	backend, err := iokit.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	cfg := keyreader.Config{
		EnableQueue: *queue,
		DebugChecks: *debug,
		OnError: func(msg string) {
			fmt.Fprintln(os.Stderr, msg)
		},
	}
	if *verbose {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	r := keyreader.New(backend, cfg)
	defer r.Close()

	for _, p := range r.Properties() {
		fmt.Println(p)
	}

	for {
		if ctx.Err() != nil {
			break
		}

		n := r.Count()
		if n < 0 {
			fmt.Fprintln(os.Stderr, "keyboard session is not usable")
			os.Exit(1)
		}
		fmt.Printf("depressed keys: %d\n", n)

		if *queue {
			events, err := r.Drain()
			if err != nil {
				fmt.Fprintf(os.Stderr, "drain: %v\n", err)
			}
			for _, ev := range events {
				state := "release"
				if ev.Pressed {
					state = "press"
				}
				fmt.Printf("%s %s (usage 0x%02X) at %s\n",
					state, ev.Key, ev.Usage, ev.Timestamp.Format(time.RFC3339Nano))
			}
		}

		select {
		case <-ctx.Done():
		case <-time.After(*interval):
		}
	}
}

func listDevices() error {
	if err := hid.Init(); err != nil {
		return err
	}
	defer hid.Exit()

	return hid.Enumerate(hid.VendorIDAny, hid.ProductIDAny, func(info *hid.DeviceInfo) error {
		fmt.Printf("%04x:%04x usage %04x:%04x %q %q %s\n",
			info.VendorID, info.ProductID,
			info.UsagePage, info.Usage,
			info.MfrStr, info.ProductStr,
			info.Path)
		return nil
	})
}
