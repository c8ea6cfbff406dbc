package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sankey/internal/chart"
	"sankey/internal/config"
	"sankey/internal/logging"
	"sankey/internal/model"
	"sankey/internal/render"
	"sankey/internal/tui"
	"sankey/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gg"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "sankeyviz",
		Repository: "sankey",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/sankeyviz/sankey/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sankey [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "sankey draws a single-source flow diagram from a text file.\n")
		fmt.Fprintf(os.Stderr, "Line 1 is the title, line 2 the source label, and every further line\n")
		fmt.Fprintf(os.Stderr, "is a flow: name, magnitude[, r, g, b].\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sankey budget.txt               # Write budget.png\n")
		fmt.Fprintf(os.Stderr, "  sankey -o out.svg budget.txt    # Write SVG\n")
		fmt.Fprintf(os.Stderr, "  sankey --tui budget.txt         # Preview in the terminal\n")
		fmt.Fprintf(os.Stderr, "  sankey --report budget.txt      # Print bar geometry\n")
		fmt.Fprintf(os.Stderr, "  sankey --web                    # Start Web Mode on http://localhost:8080\n")
	}

	outputFlag := pflag.StringP("output", "o", "", "Image file to write (default <file>.png)")
	formatFlag := pflag.StringP("format", "f", "", "Image format: png or svg (default from --output extension)")
	curveFlag := pflag.String("curve", "", "Band shape: sine or linear (default sine)")
	widthFlag := pflag.Int("width", 0, "Canvas width in pixels (default 1000)")
	heightFlag := pflag.Int("height", 0, "Canvas height in pixels (default 700)")
	configFlag := pflag.StringP("config", "c", "", "YAML configuration file")
	reportFlag := pflag.BoolP("report", "r", false, "Print a report of flows, colours and bar geometry")
	jsonFlag := pflag.BoolP("json", "j", false, "Output the diagram and layout as JSON")
	tuiFlag := pflag.BoolP("tui", "t", false, "Preview the diagram in the terminal")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode")
	addrFlag := pflag.String("addr", "", "Listen address for Web Mode (default :8080)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Log debug details to stderr; with --report, include drawing statistics")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("sankey version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	logger := logging.New(os.Stderr, *verboseFlag)
	logging.SetLogger(logger)
	gg.SetLogger(logger)

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(&cfg, ".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(&cfg, *curveFlag, *widthFlag, *heightFlag, *outputFlag, *addrFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := chart.OptionsFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *webFlag {
		if err := web.StartServer(cfg.Addr, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	inputFile, ok := inputPath(pflag.Args())
	if !ok {
		pflag.Usage()
		os.Exit(2)
	}

	if *tuiFlag {
		runTuiMode(inputFile, opts)
		return
	}

	c, err := chart.Load(inputFile, opts)
	if err != nil {
		fmt.Fprint(os.Stderr, chart.Describe(err, inputFile))
		os.Exit(1)
	}

	if *reportFlag {
		fmt.Print(chart.Report(c, *verboseFlag))
		return
	}

	if *jsonFlag {
		runJsonMode(c)
		return
	}

	runExportMode(c, inputFile, cfg.Output, *formatFlag)
}

// applyFlags lays explicitly set flags over the configuration.
func applyFlags(cfg *config.Config, curve string, width, height int, output, addr string) error {
	if curve != "" {
		c, err := render.ParseCurve(curve)
		if err != nil {
			return err
		}
		cfg.Curve = c
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if output != "" {
		cfg.Output = output
	}
	if addr != "" {
		cfg.Addr = addr
	}
	return cfg.Validate()
}

// inputPath returns the document to read: the single argument, or a name
// read from stdin when none was given.
func inputPath(args []string) (string, bool) {
	switch len(args) {
	case 1:
		return args[0], true
	case 0:
		fmt.Print("Please enter the name of the file: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		name := strings.TrimSpace(line)
		if name == "" && err != nil {
			return "", false
		}
		return name, name != ""
	default:
		return "", false
	}
}

func runExportMode(c *chart.Chart, inputFile, output, format string) {
	output, format, err := exportTarget(inputFile, output, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	f, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing diagram to %s: %v\n", output, err)
		os.Exit(1)
	}

	switch format {
	case "svg":
		err = c.RenderSVG(f)
	default:
		err = c.RenderPNG(f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing diagram to %s: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("Diagram saved to %s\n", output)
}

// exportTarget settles the output file and image format. An explicit format
// picks the default file's extension; otherwise the extension of output
// picks the format. Anything but png or svg is an error.
func exportTarget(inputFile, output, format string) (string, string, error) {
	format = strings.ToLower(format)
	if output == "" {
		ext := ".png"
		if format == "svg" {
			ext = ".svg"
		}
		output = strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile)) + ext
	}
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}

	switch format {
	case "png", "svg":
		return output, format, nil
	case "":
		return "", "", fmt.Errorf("cannot tell the image format of %q (use --format png or svg)", output)
	default:
		return "", "", fmt.Errorf("unknown image format %q (use png or svg)", format)
	}
}

func runJsonMode(c *chart.Chart) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTuiMode(inputFile string, opts chart.Options) {
	m := tui.InitialModel(inputFile, opts)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
