package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: report2docx <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render report text files to .docx")
	fmt.Fprintln(w, "  analyze    Generate a meal report for a patient and render it")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'report2docx help <command>' for details on a specific command.")
}

// printLayoutUsage prints the layout flags shared by render and analyze.
func printLayoutUsage(w io.Writer) {
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "      --title <s>           Title paragraph (default \"메디푸드 분석 리포트\")")
	fmt.Fprintln(w, "      --font <s>            Font for every run (default \"맑은 고딕\")")
	fmt.Fprintln(w, "      --font-size <f>       Base size in points (default 10)")
	fmt.Fprintln(w, "      --table-width <f>     Total table width in inches (default 7)")
	fmt.Fprintln(w, "      --lang <tag>          East-Asian language tag (default ko-KR)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "File name:")
	fmt.Fprintln(w, "      --name-prefix <s>     Prefix (default medifood_report)")
	fmt.Fprintln(w, "      --name-date <s>       Date pattern (default MMDD)")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets: iso, compact, monthday, korean")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --preview             Also write an HTML preview")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: report2docx render <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render report text files (.md, .markdown, .txt) to .docx.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Report file or directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output directory, or .docx file for a single input")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printLayoutUsage(w)
}

// printAnalyzeUsage prints usage for the analyze command.
func printAnalyzeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: report2docx analyze [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ask the generation service for a meal report and render it to .docx.")
	fmt.Fprintln(w, "The raw report is saved next to the document as .md.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Patient:")
	fmt.Fprintln(w, "      --age <n>             Age in years (required)")
	fmt.Fprintln(w, "      --gender <s>          male, female, 남성, 여성 (required)")
	fmt.Fprintln(w, "  -d, --condition <s>       Condition, repeatable or comma-separated")
	fmt.Fprintln(w, "      --medication <s>      Current medication")
	fmt.Fprintln(w, "      --symptoms <s>        Symptoms text")
	fmt.Fprintln(w, "      --symptoms-file <p>   Read symptoms from a file")
	fmt.Fprintln(w, "      --list-conditions     Print accepted conditions and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generation:")
	fmt.Fprintln(w, "      --model <s>           Model name (default gemini-3-flash-preview)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Request timeout (default 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default current directory)")
	fmt.Fprintln(w)
	printLayoutUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  GEMINI_API_KEY            API key (or the variable named by generation.apiKeyEnv)")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "analyze":
		printAnalyzeUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: report2docx version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: report2docx help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
