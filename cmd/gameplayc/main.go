// gameplayc is a scripting console over the gameplayutils library: it hosts the
// embedded Lua interpreter from the console package and feeds it command strings,
// either one-shot (-c), from script files, or interactively line-by-line. A glTF
// scene can be loaded up front so search commands have entities to work with.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gitlab.com/greyxor/slogor"
	"gopkg.in/yaml.v3"

	"github.com/countzer0/gameplayutils"
	"github.com/countzer0/gameplayutils/console"
)

type config struct {
	ScriptPaths []string `yaml:"script_paths"`
	Scene       string   `yaml:"scene"`
	LogLevel    string   `yaml:"log_level"`
}

func loadConfig(path string) (config, error) {

	conf := config{}

	if path == "" {
		return conf, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return conf, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("parsing config: %w", err)
	}

	return conf, nil

}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {

	configPath := flag.String("config", "", "path to a YAML config file")
	command := flag.String("c", "", "run a single command string and exit")
	scenePath := flag.String("scene", "", "glTF scene file to load entities from")
	scriptPath := flag.String("scripts", "", "extra script directory, searched for startup scripts")
	flag.Parse()

	conf, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *scenePath != "" {
		conf.Scene = *scenePath
	}
	if *scriptPath != "" {
		conf.ScriptPaths = append(conf.ScriptPaths, *scriptPath)
	}

	logger := slog.New(slogor.NewHandler(
		os.Stderr,
		slogor.SetLevel(logLevel(conf.LogLevel)),
		slogor.SetTimeFormat(time.TimeOnly),
	))
	slog.SetDefault(logger)

	c := console.New(console.Options{
		ScriptPaths: conf.ScriptPaths,
		Logger:      logger,
	})
	defer c.Close()

	if conf.Scene != "" {
		scene, err := gameplayutils.LoadSceneFromGLTFFile(conf.Scene)
		if err != nil {
			logger.Error("failed to load scene", "path", conf.Scene, "err", err)
			os.Exit(1)
		}
		c.SetEntities(scene.EntityList())
		logger.Info("scene loaded", "path", conf.Scene, "entities", len(scene.Entities))
	}

	if err := c.RunStartupScripts(); err != nil {
		logger.Error("startup scripts failed", "err", err)
		os.Exit(1)
	}

	if *command != "" {
		if err := c.ExecuteCommand(*command); err != nil {
			logger.Error("command failed", "err", err)
			os.Exit(1)
		}
		return
	}

	// Positional arguments are script files to run in order.
	for _, path := range flag.Args() {
		if err := c.RunFile(path); err != nil {
			logger.Error("script failed", "err", err)
			os.Exit(1)
		}
	}
	if flag.NArg() > 0 {
		return
	}

	// Interactive mode: every line is a command string forwarded to the interpreter.
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}
		if line != "" {
			if err := c.ExecuteCommand(line); err != nil {
				logger.Error("command failed", "err", err)
			}
		}
		fmt.Print("> ")
	}

}
