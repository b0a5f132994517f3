// Package main provides the CLI entry point for webmrec.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/webmrec/pkg/adapters/ffmpegwebp"
	"github.com/user/webmrec/pkg/adapters/filesink"
	"github.com/user/webmrec/pkg/adapters/framefile"
	"github.com/user/webmrec/pkg/adapters/ggpattern"
	"github.com/user/webmrec/pkg/adapters/logger"
	"github.com/user/webmrec/pkg/adapters/nullsink"
	"github.com/user/webmrec/pkg/adapters/osfilesystem"
	"github.com/user/webmrec/pkg/adapters/webmprobe"
	"github.com/user/webmrec/pkg/config"
	"github.com/user/webmrec/pkg/muxer"
	"github.com/user/webmrec/pkg/pipeline"
	"github.com/user/webmrec/pkg/ports"
	"github.com/user/webmrec/pkg/recorder"
	"github.com/user/webmrec/pkg/summarizer"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "webmrec",
		Usage:   l10n.T("Compile still frames into WebM video"),
		Version: version,
		Commands: []*cli.Command{
			encodeCommand(),
			demoCommand(),
			inspectCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// sessionFlags are shared by the commands that compile frames.
func sessionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output WebM file path (required)"), Category: l10n.T("Output")},
		&cli.StringFlag{Name: "summary", Usage: l10n.T("Output compile summary to file (.md or .json)"), Category: l10n.T("Output")},
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file"), Category: l10n.T("Session")},
		&cli.Float64Flag{Name: "fps", Usage: l10n.T("Frame rate; each frame lasts 1000/fps ms"), Category: l10n.T("Session")},
		&cli.Float64Flag{Name: "quality", Aliases: []string{"q"}, Usage: l10n.T("WebP quality for re-encoded frames (0.0-1.0)"), Category: l10n.T("Session")},
		&cli.StringFlag{Name: "quality-preset", Usage: l10n.T("Quality preset (low, medium, high)"), Category: l10n.T("Session")},
		&cli.Float64Flag{Name: "max-cluster-ms", Usage: l10n.T("Maximum cluster duration in milliseconds"), Category: l10n.T("Session")},
		&cli.IntFlag{Name: "workers", Usage: l10n.T("Parallel frame decoders (0 = number of CPUs)"), Category: l10n.T("Session")},
		&cli.StringFlag{Name: "ffmpeg", Usage: l10n.T("Path to ffmpeg executable"), Category: l10n.T("Session")},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output"), Category: l10n.T("Debug")},
		&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output"), Category: l10n.T("Debug")},
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output"), Category: l10n.T("Logging")},
	}
}

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     l10n.T("Compile a directory of images into a WebM file"),
		ArgsUsage: "<dir>",
		Flags: append(sessionFlags(),
			&cli.IntFlag{Name: "width", Usage: l10n.T("Scale decoded images to this width"), Category: l10n.T("Input")},
			&cli.IntFlag{Name: "height", Usage: l10n.T("Scale decoded images to this height"), Category: l10n.T("Input")},
		),
		Action: runEncode,
	}
}

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: l10n.T("Compile a generated test pattern into a WebM file"),
		Flags: append(sessionFlags(),
			&cli.IntFlag{Name: "frames", Usage: l10n.T("Number of frames to generate"), Category: l10n.T("Input")},
			&cli.IntFlag{Name: "width", Usage: l10n.T("Frame width"), Category: l10n.T("Input")},
			&cli.IntFlag{Name: "height", Usage: l10n.T("Frame height"), Category: l10n.T("Input")},
		),
		Action: runDemo,
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     l10n.T("Show the structure of a WebM file"),
		ArgsUsage: "<file.webm>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: l10n.T("Print the report as JSON")},
		},
		Action: runInspect,
	}
}

// loadConfig reads the YAML file if given and applies flag overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("fps") {
		cfg.FPS = c.Float64("fps")
	}
	if c.IsSet("quality-preset") {
		cfg.Quality = recorder.PresetQuality(recorder.QualityPreset(c.String("quality-preset")))
	}
	if c.IsSet("quality") {
		cfg.Quality = c.Float64("quality")
	}
	if c.IsSet("max-cluster-ms") {
		cfg.MaxClusterDurationMs = c.Float64("max-cluster-ms")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("ffmpeg") {
		cfg.FFmpegPath = c.String("ffmpeg")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("frames") {
		cfg.Demo.Frames = c.Int("frames")
	}
	if c.Command.Name == "demo" {
		if c.IsSet("width") {
			cfg.Demo.Width = c.Int("width")
		}
		if c.IsSet("height") {
			cfg.Demo.Height = c.Int("height")
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(c *cli.Context, cfg config.Config) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// app holds the adapters wired for one command run.
type app struct {
	cfg     config.Config
	log     ports.Logger
	fs      ports.FileSystem
	session *recorder.Session
}

func newApp(c *cli.Context) (*app, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	log := newLogger(c, cfg)
	fs := osfilesystem.New()

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs)
	} else {
		sink = nullsink.New()
	}

	encoder := ffmpegwebp.New(cfg.FFmpegPath, log)
	session := recorder.New(cfg.ToRecorderConfig(), encoder, sink, log)

	return &app{cfg: cfg, log: log, fs: fs, session: session}, nil
}

func runEncode(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("Input directory argument is required"), 2)
	}
	dir := c.Args().First()

	a, err := newApp(c)
	if err != nil {
		return err
	}

	loader := framefile.New(a.fs, a.log)
	loader.FitWidth = c.Int("width")
	loader.FitHeight = c.Int("height")

	frames, err := loader.LoadDir(dir)
	if err != nil {
		a.log.Error("Failed to read input: %s", err)
		return err
	}

	reencoded := false
	for _, f := range frames {
		if _, ok := f.Source.(pipeline.PixelBuffer); ok {
			reencoded = true
		}
		a.session.Append(f.Source, 0)
	}

	return a.compile(c, dir, len(frames), reencoded)
}

func runDemo(c *cli.Context) error {
	a, err := newApp(c)
	if err != nil {
		return err
	}

	demo := a.cfg.Demo
	pattern := ggpattern.New(demo.Width, demo.Height,
		config.ParseColor(demo.BackgroundColor),
		config.ParseColor(demo.ForegroundColor))

	a.log.Info("Generating %d demo frames", demo.Frames)
	for _, img := range pattern.Frames(demo.Frames) {
		a.session.AppendImage(img, 0)
	}

	return a.compile(c, "demo", demo.Frames, true)
}

func (a *app) compile(c *cli.Context, input string, frameCount int, reencoded bool) error {
	ctx, cancel := signalContext(a.log)
	defer cancel()

	result, err := a.session.Compile(ctx)
	if err != nil {
		return err
	}

	output := c.String("output")
	if err := a.fs.WriteFile(output, result.Data); err != nil {
		a.log.Error("Failed to write output: %s", err)
		return fmt.Errorf("write output: %w", err)
	}
	a.log.Info("Output saved to %s", output)

	if path := c.String("summary"); path != "" {
		a.writeSummary(path, output, input, frameCount, reencoded, result)
	}
	return nil
}

func (a *app) writeSummary(path, output, input string, frameCount int, reencoded bool, result muxer.Result) {
	rc := a.session.Config()
	settings := summarizer.Settings{
		FPS:                  rc.FPS,
		Quality:              rc.Quality,
		MaxClusterDurationMs: rc.MaxClusterDurationMs,
	}
	if reencoded {
		settings.ImageEncoder = "ffmpeg (libwebp)"
	}

	summary := summarizer.NewBuilder().
		WithSource(input, frameCount).
		WithSettings(settings).
		WithResult(output, result).
		Build()

	writer := summarizer.NewWriter(summarizer.ForPath(path, summarizer.WithVersion(version)), a.fs)
	if err := writer.Write(path, summary); err != nil {
		a.log.Warn("Failed to write summary: %s", err)
		return
	}
	a.log.Info("Summary saved to %s", path)
}

func runInspect(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("WebM file argument is required"), 2)
	}

	data, err := osfilesystem.New().ReadFile(c.Args().First())
	if err != nil {
		return err
	}

	report, err := webmprobe.ProbeBytes(data)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, string(out))
		return nil
	}

	printReport(c, report, len(data))
	return nil
}

func printReport(c *cli.Context, r webmprobe.Report, size int) {
	w := c.App.Writer
	fmt.Fprintf(w, "%s: %s v%d (%s)\n", l10n.T("Doc type"), r.DocType, r.DocTypeVersion, r.MuxingApp)
	fmt.Fprintf(w, "%s: %.1f ms\n", l10n.T("Duration"), r.DurationMs)
	fmt.Fprintf(w, "%s: %d bytes\n", l10n.T("File size"), size)
	fmt.Fprintf(w, "%s: #%d %s %dx%d\n", l10n.T("Track"), r.Track.Number, r.Track.CodecID, r.Track.Width, r.Track.Height)
	fmt.Fprintf(w, "%s: %d, %s: %d\n", l10n.T("Clusters"), len(r.Clusters), l10n.T("Frames"), r.FrameCount())

	for i, cl := range r.Clusters {
		fmt.Fprintf(w, "  %s %d @ %d ms\n", l10n.T("Cluster"), i, cl.TimecodeMs)
		for _, b := range cl.Blocks {
			fmt.Fprintf(w, "    +%5d ms  %7d bytes  %dx%d  keyframe=%t\n",
				b.RelativeTimecodeMs, b.Size, b.Width, b.Height, b.Keyframe)
		}
	}
}
