// Command glide replays a recorded gesture script against a carousel and
// prints the renderer snapshot after each gesture settles.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/zoobzio/glide"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("glide", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "carousel.yaml", "carousel config file (YAML or JSON)")
		scriptPath = fs.String("script", "", "gesture script to replay")
		watch      = fs.Bool("watch", false, "keep running and reload the config file on change")
		fps        = fs.Int("fps", 60, "settle animation frame rate")
		logLevel   = fs.String("log-level", "warn", "log level: debug, info, warn, error")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *fps <= 0 {
		fmt.Fprintf(stderr, "invalid -fps %d\n", *fps)
		return 2
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(stderr, "invalid -log-level: %v\n", err)
		return 2
	}
	glide.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer glide.SetLogger(nil)

	data, err := os.ReadFile(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "read config: %v\n", err)
		return 1
	}
	cfg, err := glide.LoadConfig(data, nil)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}

	interval := time.Second / time.Duration(*fps)
	easing, err := glide.EasingByName(cfg.Easing)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	animator := glide.NewFrameAnimator(glide.Tween(easing))
	carousel, err := glide.NewFromConfig(cfg, glide.WithAnimator(animator))
	if err != nil {
		fmt.Fprintf(stderr, "create carousel: %v\n", err)
		return 1
	}

	out := &printer{enc: json.NewEncoder(stdout)}

	if *watch {
		apply := glide.ApplyTo(carousel)
		reloader := glide.NewReloader(glide.NewFileWatcher(*configPath), func(ctx context.Context, cfg glide.Config) error {
			if err := apply(ctx, cfg); err != nil {
				return err
			}
			return out.print(carousel.Snapshot())
		})
		if err := reloader.Start(ctx); err != nil {
			fmt.Fprintf(stderr, "start reloader: %v\n", err)
			return 1
		}
	}

	if *scriptPath != "" {
		script, err := loadScript(*scriptPath)
		if err != nil {
			fmt.Fprintf(stderr, "load script: %v\n", err)
			return 1
		}
		if err := replay(ctx, carousel, animator, interval, script, out); err != nil {
			fmt.Fprintf(stderr, "replay: %v\n", err)
			return 1
		}
	} else if !*watch {
		if err := out.print(carousel.Snapshot()); err != nil {
			fmt.Fprintf(stderr, "write snapshot: %v\n", err)
			return 1
		}
	}

	if *watch {
		<-ctx.Done()
	}
	return 0
}

// replay drives each gesture through its channel and settles it frame by frame.
func replay(ctx context.Context, c *glide.Carousel[string, string], a *glide.FrameAnimator, interval time.Duration, s Script, out *printer) error {
	for i, g := range s.Gestures {
		if err := ctx.Err(); err != nil {
			return err
		}
		dir, err := g.Direction()
		if err != nil {
			return fmt.Errorf("gesture %d: %w", i, err)
		}
		ch := c.Channel(dir)
		for _, d := range g.Deltas {
			ch.Change(ctx, d)
		}
		if !ch.Release(ctx, g.Velocity) {
			glide.Logger().Warn("gesture skipped", "index", i, "channel", g.Channel)
			continue
		}
		a.Flush(interval)
		if err := out.print(c.Snapshot()); err != nil {
			return err
		}
	}
	return nil
}

// printer serialises snapshot lines written from the replay loop and the
// reloader goroutine.
type printer struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func (p *printer) print(s glide.Snapshot[string, string]) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enc.Encode(s)
}
