// Command glprobe loads the gibberlink core, runs hardware capability
// detection, and prints the decoded report. With -watch it stays attached
// and prints hardware events as the core emits them.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gibberlink-dev/gibberlink-bridge/application/config"
	"github.com/gibberlink-dev/gibberlink-bridge/application/schema"
	"github.com/gibberlink-dev/gibberlink-bridge/bridge"
	"github.com/gibberlink-dev/gibberlink-bridge/callback"
	"github.com/gibberlink-dev/gibberlink-bridge/domain/entities"
	"github.com/gibberlink-dev/gibberlink-bridge/domain/ports"
	"github.com/gibberlink-dev/gibberlink-bridge/host"
	"github.com/gibberlink-dev/gibberlink-bridge/hostfuncs"
	"github.com/gibberlink-dev/gibberlink-bridge/infrastructure/parser"
	"github.com/gibberlink-dev/gibberlink-bridge/wireformat"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML bridge config file")
	corePath := flag.String("core", "", "path to the gibberlink core module (overrides config)")
	watch := flag.Duration("watch", 0, "stay attached and print hardware events for this duration")
	printSchema := flag.Bool("schema", false, "print the event and report JSON schemas and exit")
	flag.Parse()

	if *printSchema {
		if err := dumpSchemas(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	cfg, err := loadConfig(*configPath, *corePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.SlogLevel(cfg)}))
	slog.SetDefault(logger)

	if err := run(context.Background(), cfg, logger, *watch); err != nil {
		logger.Error("probe failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *entities.BridgeConfig, logger *slog.Logger, watch time.Duration) error {
	wasmBytes, err := os.ReadFile(cfg.CorePath)
	if err != nil {
		return fmt.Errorf("failed to read core module: %w", err)
	}

	// The registry is shared between the emit_hardware_event host function
	// and the bridge's register/unregister surface.
	callbacks := callback.NewRegistry()

	registry, err := hostfuncs.NewRegistry(
		hostfuncs.WithMiddleware(hostfuncs.PanicRecoveryMiddleware(), hostfuncs.SlogMiddleware(logger)),
		hostfuncs.WithByteHandler(wireformat.FuncEmitHardwareEvent, hostfuncs.NewEmitEventHandler(callbacks)),
		hostfuncs.WithByteHandler(wireformat.FuncLogMessage, hostfuncs.NewLogMessageHandler(logger)),
	)
	if err != nil {
		return fmt.Errorf("failed to create host function registry: %w", err)
	}

	executor, err := host.NewExecutor(ctx,
		host.WithHostFunctions(registry),
		host.WithLogger(logger),
		host.WithMaxEventSize(cfg.MaxEventSize),
		host.WithMaxReportSize(cfg.MaxReportSize),
	)
	if err != nil {
		return fmt.Errorf("failed to create executor: %w", err)
	}
	defer executor.Close(ctx)

	core, err := executor.LoadCore(ctx, wasmBytes)
	if err != nil {
		return fmt.Errorf("failed to load core: %w", err)
	}

	b := bridge.New(core, bridge.WithLogger(logger), bridge.WithCallbackRegistry(callbacks))

	mask := b.DetectHardwareCapabilities(ctx)
	if mask == nil {
		fmt.Println("capability detection returned no data")
	} else if report, err := entities.DecodeCapabilityMask(mask); err != nil {
		logger.Warn("capability mask has unexpected shape", "error", err, "length", len(mask))
		fmt.Printf("raw capability mask: %x\n", mask)
	} else {
		out, _ := json.MarshalIndent(report, "", "  ")
		fmt.Printf("capability report:\n%s\n", out)
	}

	fmt.Printf("ultrasonic: %v\n", b.CheckUltrasonicHardwareAvailable(ctx))
	fmt.Printf("laser:      %v\n", b.CheckLaserHardwareAvailable(ctx))
	fmt.Printf("photodiode: %v\n", b.CheckPhotodiodeHardwareAvailable(ctx))
	fmt.Printf("camera:     %v\n", b.CheckCameraHardwareAvailable(ctx))

	if watch > 0 {
		b.RegisterHardwareEventCallback(ports.EventCallbackFunc(func(ev entities.HardwareEvent) {
			fmt.Printf("event: %s/%s at %s (%d payload bytes)\n",
				ev.Subsystem, ev.Kind, ev.Timestamp.Format(time.RFC3339), len(ev.Payload))
		}))
		defer b.UnregisterHardwareEventCallback()

		logger.Info("watching for hardware events", "duration", watch)
		select {
		case <-time.After(watch):
		case <-ctx.Done():
		}
	}

	return nil
}

func loadConfig(configPath, corePath string) (*entities.BridgeConfig, error) {
	if configPath != "" {
		loader := config.NewLoader(parser.NewYamlConfigParser())
		cfg, err := loader.Load(configPath)
		if err != nil {
			return nil, err
		}
		if corePath != "" {
			cfg.CorePath = corePath
		}
		return cfg, nil
	}

	if corePath == "" {
		return nil, fmt.Errorf("either -config or -core is required")
	}
	cfg := entities.DefaultBridgeConfig()
	cfg.CorePath = corePath
	return &cfg, nil
}

func dumpSchemas() error {
	eventSchema, err := schema.HardwareEvent()
	if err != nil {
		return err
	}
	reportSchema, err := schema.CapabilityReport()
	if err != nil {
		return err
	}
	fmt.Printf("hardware event wire schema:\n%s\n\ncapability report schema:\n%s\n", eventSchema, reportSchema)
	return nil
}
