package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"aiupstart.com/code-architect/internal/architect"
	"aiupstart.com/code-architect/internal/config"
	"aiupstart.com/code-architect/internal/llm"
	"aiupstart.com/code-architect/internal/metrics"
	"aiupstart.com/code-architect/internal/prompt"
	"aiupstart.com/code-architect/internal/session"
	"aiupstart.com/code-architect/internal/utils"
)

func main() {
	_ = godotenv.Load() // Loads .env file if present

	var (
		configPath  = flag.String("config", "config/architect.yaml", "path to app config")
		presetsPath = flag.String("models", "config/models.yaml", "path to model presets")
		modelFlag   = flag.String("model", "", "override the configured model")
		outDir      = flag.String("out", "", "override the artifact output directory")
	)
	flag.Parse()

	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		fmt.Println("Please set the GROQ_API_KEY environment variable.")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		utils.Logger.Warn().Err(err).Str("path", *configPath).
			Msg("Config not loaded, using defaults")
		cfg = config.Default()
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Println(err)
		return
	}
	if *modelFlag != "" {
		cfg.DefaultModel = *modelFlag
	}
	if *outDir != "" {
		cfg.ArtifactDir = *outDir
	}

	// Model presets file is optional; when present it gates model choice.
	if presets, err := config.LoadModelPresets(*presetsPath); err == nil {
		if !presets.Enabled(cfg.DefaultModel) {
			utils.Logger.Warn().Str("model", cfg.DefaultModel).
				Msg("Model is not enabled in the presets file")
		}
	}

	metrics.StartMetricsServer(cfg.MetricsAddr)

	client := llm.NewGroqClient(apiKey, cfg.BaseURL)
	svc := architect.New(client, architect.Options{
		DefaultModel:     cfg.DefaultModel,
		FenceTag:         cfg.FenceTag,
		BuildTemperature: cfg.BuildTemperature,
		DebugTemperature: cfg.DebugTemperature,
		MaxTokens:        cfg.MaxTokens,
	})

	switch flag.Arg(0) {
	case "build":
		runBuild(svc, cfg, strings.Join(flag.Args()[1:], " "))
	case "debug":
		runDebug(svc)
	case "doc":
		runDoc(svc, flag.Arg(1))
	default:
		fmt.Println("usage: architect [flags] build <app description>")
		fmt.Println("       architect [flags] debug")
		fmt.Println("       architect [flags] doc <source file>")
	}
}

func runBuild(svc *architect.Service, cfg *config.Config, description string) {
	if description == "" {
		fmt.Print("Describe the app you want to build: ")
		description = readLine()
	}
	if description == "" {
		fmt.Println("Nothing to build.")
		return
	}

	result, err := svc.Build(context.Background(), architect.BuildRequest{Description: description})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if result.Sections.Preamble != "" {
		fmt.Println(strings.TrimSpace(result.Sections.Preamble))
	}
	if result.Sections.HasCode {
		path, err := utils.WriteArtifact(cfg.ArtifactDir, result.Filename, result.Sections.Code)
		if err != nil {
			fmt.Printf("Could not save artifact: %v\n", err)
			return
		}
		fmt.Printf("\nSaved %s (%s)\n", path, result.MIME)
	} else {
		fmt.Println("\nThe response contained no code block.")
	}
	if result.Sections.Trailing != "" {
		fmt.Println("\n--- Setup notes ---")
		fmt.Println(strings.TrimSpace(result.Sections.Trailing))
	}
}

func runDebug(svc *architect.Service) {
	sess := session.NewDebug(prompt.DebugGreeting)
	fmt.Printf("[Assistant]: %s\n", prompt.DebugGreeting)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Print("[You]: ")
		if !scanner.Scan() {
			break
		}
		query := scanner.Text()
		if query == "exit" || query == "quit" {
			break
		}
		if strings.TrimSpace(query) == "" {
			continue
		}
		reply, err := svc.Debug(context.Background(), sess, query)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Printf("[Assistant]: %s\n", reply.Content)
	}
}

func runDoc(svc *architect.Service, path string) {
	if path == "" {
		fmt.Println("usage: architect doc <source file>")
		return
	}
	code, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	result, err := svc.Document(context.Background(), architect.DocRequest{Code: string(code)})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(result.Content)
}

func readLine() string {
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}
