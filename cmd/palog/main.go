package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	service "github.com/kardianos/service"

	"github.com/palog/palog/internal/config"
	"github.com/palog/palog/internal/eventlog"
	"github.com/palog/palog/internal/logging"
	"github.com/palog/palog/internal/paths"
	"github.com/palog/palog/internal/terminal"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

// Event ID used when runtime file failures are mirrored to the event log.
const eventFileFailure uint32 = 1001

func usage(w io.Writer) {
	fmt.Fprintln(w, "palog usage:")
	fmt.Fprintln(w, "  palog print <severity> <title> <message>  # print to the console")
	fmt.Fprintln(w, "  palog log <severity> <title> <message>    # append to the log file")
	fmt.Fprintln(w, "  palog emit <severity> <title> <message>   # print and log")
	fmt.Fprintln(w, "  palog demo                                # show every severity")
	fmt.Fprintln(w, "  palog config                              # show effective configuration")
	fmt.Fprintln(w, "  palog eventlog-install                    # register the event source (Windows)")
	fmt.Fprintln(w, "  palog version                             # show version/build info")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Severities: success, error, warn, info, debug, trace")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PALOG_ROOT   override data root (default: ProgramData/Palog on Windows)")
	fmt.Fprintln(w, "  PALOG_LOG_TO_FILE, PALOG_LOG_FILE, PALOG_LOG_DIR, PALOG_MAX_FILE_SIZE,")
	fmt.Fprintln(w, "  PALOG_TIMESTAMP_FORMAT, PALOG_COLOR (auto|always|never)")
}

func main() {
	root := paths.DefaultRoot()
	p := paths.FromRoot(root)
	if err := paths.Ensure(p); err != nil {
		log.Fatalf("failed to ensure paths: %v", err)
	}

	cfg, err := config.Load(p.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	os.Exit(run(os.Args[1:], p, cfg, os.Stdout))
}

// run executes one command and returns the process exit code.
func run(args []string, p paths.Paths, cfg *config.Config, stdout io.Writer) int {
	if len(args) < 1 {
		usage(stdout)
		return 1
	}

	logger := newLogger(p, cfg, stdout)
	defer func() {
		if err := logger.Close(); err != nil {
			logger.Print("Error", fmt.Sprintf("close log file: %v", err), logging.Error)
		}
	}()

	cmd := args[0]
	switch cmd {
	case "print", "log", "emit":
		if len(args) < 4 {
			fmt.Fprintf(stdout, "%s requires <severity> <title> <message>\n", cmd)
			usage(stdout)
			return 1
		}
		severity, err := logging.ParseSeverity(args[1])
		if err != nil {
			fmt.Fprintln(stdout, err)
			return 1
		}
		title, message := args[2], strings.Join(args[3:], " ")
		switch cmd {
		case "print":
			logger.Print(title, message, severity)
		case "log":
			logger.Log(title, message, severity)
		default:
			logger.PrintAndLog(title, message, severity)
		}
	case "demo":
		runDemo(logger)
	case "config":
		if err := showConfig(stdout, cfg); err != nil {
			logger.Print("Error", err.Error(), logging.Error)
			return 1
		}
	case "eventlog-install":
		if err := eventlog.Install(); err != nil {
			logger.Print("Error", fmt.Sprintf("install event source: %v", err), logging.Error)
			return 1
		}
		logger.Print("Success", "registered event source "+eventlog.Source, logging.Success)
	case "version":
		printVersion(stdout)
	default:
		fmt.Fprintf(stdout, "unknown command: %s\n", cmd)
		usage(stdout)
		return 1
	}
	return 0
}

// newLogger builds the Logger for console and applies cfg. Invalid settings
// are reported on the console and the defaults stay in place.
func newLogger(p paths.Paths, cfg *config.Config, console io.Writer) *logging.Logger {
	logger := logging.New()
	logger.SetConsole(console)
	if f, ok := console.(*os.File); ok {
		logger.SetColor(terminal.Interactive(f))
	} else {
		logger.SetColor(false)
	}

	applied := *cfg
	if applied.LogDir == "" {
		applied.LogDir = p.LogsDir
	}
	if err := applied.Apply(logger); err != nil {
		logger.Print("Config", strings.ReplaceAll(err.Error(), "\n", "; "), logging.Warn)
	}

	// Nobody watches the console of a service; keep failures visible.
	if !service.Interactive() {
		logger.SetErrorHandler(eventlog.Mirror(eventFileFailure))
	}
	return logger
}

func runDemo(logger *logging.Logger) {
	logger.Print("Success!", "This is a success message.", logging.Success)
	logger.Print("Info", "This is an info message.", logging.Info)
	logger.Print("Warn", "This is a warning message.", logging.Warn)
	logger.Print("Trace", "This is a trace message.", logging.Trace)
	logger.Print("Debug", "This is a debug message.", logging.Debug)
	logger.Print("Error!", "This is an error message.", logging.Error)
	logger.Print("", "This message has no title.", logging.Info)

	logger.Log("Test", "It's a message!", logging.Info)
	logger.PrintAndLog("You can see me", "On your screen and in your files, if the logging is turned on.", logging.Info)
}

func showConfig(w io.Writer, cfg *config.Config) error {
	out, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = w.Write(out)
	return err
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "palog %s (commit %s, build %s)\n", version, commit, buildDate)
}
