package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// layoutFlags holds document layout overrides.
type layoutFlags struct {
	title      string
	font       string
	fontSize   float64
	tableWidth float64
	language   string
	prefix     string
	dateFormat string
}

// outputFlags holds output destination flags.
type outputFlags struct {
	dir     string
	preview bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common  commonFlags
	layout  layoutFlags
	output  outputFlags
	workers int
}

// patientFlags holds the patient profile for analyze.
type patientFlags struct {
	age          int
	gender       string
	conditions   []string
	medication   string
	symptoms     string
	symptomsFile string
}

// generationFlags holds generation-service overrides.
type generationFlags struct {
	model   string
	timeout string
}

// analyzeFlags holds all flags for the analyze command.
type analyzeFlags struct {
	common         commonFlags
	layout         layoutFlags
	output         outputFlags
	patient        patientFlags
	generation     generationFlags
	listConditions bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addLayoutFlags adds document layout flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVar(&f.font, "font", "", "font applied to every run")
	fs.Float64Var(&f.fontSize, "font-size", 0, "base font size in points")
	fs.Float64Var(&f.tableWidth, "table-width", 0, "total table width in inches")
	fs.StringVar(&f.language, "lang", "", "East-Asian language tag (BCP 47)")
	fs.StringVar(&f.prefix, "name-prefix", "", "output file name prefix")
	fs.StringVar(&f.dateFormat, "name-date", "", "output file name date pattern")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output directory (render also accepts a .docx file)")
	fs.BoolVar(&f.preview, "preview", false, "also write an HTML preview")
}

// addPatientFlags adds patient profile flags to a FlagSet.
func addPatientFlags(fs *flag.FlagSet, f *patientFlags) {
	fs.IntVar(&f.age, "age", 0, "patient age (required)")
	fs.StringVar(&f.gender, "gender", "", "patient gender: male, female (required)")
	fs.StringSliceVarP(&f.conditions, "condition", "d", nil, "medical condition, repeatable")
	fs.StringVar(&f.medication, "medication", "", "current medication")
	fs.StringVar(&f.symptoms, "symptoms", "", "symptoms text")
	fs.StringVar(&f.symptomsFile, "symptoms-file", "", "read symptoms from file")
}

// addGenerationFlags adds generation-service flags to a FlagSet.
func addGenerationFlags(fs *flag.FlagSet, f *generationFlags) {
	fs.StringVar(&f.model, "model", "", "generation model")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "generation timeout (e.g., 90s, 2m)")
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, usage io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &renderFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addLayoutFlags(fs, &f.layout)
	addOutputFlags(fs, &f.output)

	fs.Usage = func() { printRenderUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseAnalyzeFlags parses analyze command flags and returns positional args.
func parseAnalyzeFlags(args []string, usage io.Writer) (*analyzeFlags, []string, error) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &analyzeFlags{}

	fs.BoolVar(&f.listConditions, "list-conditions", false, "print accepted conditions and exit")
	addCommonFlags(fs, &f.common)
	addLayoutFlags(fs, &f.layout)
	addOutputFlags(fs, &f.output)
	addPatientFlags(fs, &f.patient)
	addGenerationFlags(fs, &f.generation)

	fs.Usage = func() { printAnalyzeUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseError keeps flag.ErrHelp intact and marks other failures as usage errors.
func parseError(err error) error {
	if err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
