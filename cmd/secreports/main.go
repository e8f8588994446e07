package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mkenealy/secreports/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		company    string
		outputDir  string
		userAgent  string
		formsCSV   string
		configPath string
		cacheDir   string
		attempts   int
		verbose    bool
	)

	flag.StringVar(&company, "company", "", "Company name to fetch reports for; omit for interactive mode")
	flag.StringVar(&outputDir, "out", "sec_filings", "Directory under which per-company artifacts are written")
	uaDefault := os.Getenv("SEC_USER_AGENT")
	if uaDefault == "" {
		uaDefault = "secreports/1.0 (mkenealy@outlook.com)"
	}
	flag.StringVar(&userAgent, "ua", uaDefault, "User-Agent with contact details, required by SEC fair-access policy")
	flag.StringVar(&formsCSV, "forms", "10-K,10-Q", "Comma-separated form types to download")
	flag.StringVar(&configPath, "config", "", "Optional YAML config file; flags take precedence")
	flag.StringVar(&cacheDir, "cache.dir", "", "Directory for the raw filing cache; empty disables caching")
	flag.IntVar(&attempts, "fetch.attempts", 3, "Fetch attempts per request, including the first")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		OutputDir:   outputDir,
		UserAgent:   userAgent,
		Forms:       splitCSV(formsCSV),
		CacheDir:    cacheDir,
		MaxAttempts: attempts,
		Verbose:     verbose,
	}
	defaults := app.Config{
		OutputDir:   "sec_filings",
		UserAgent:   uaDefault,
		Forms:       []string{"10-K", "10-Q"},
		MaxAttempts: 3,
	}
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load config file")
		}
		app.ApplyFileConfig(&cfg, fc, defaults)
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if err := app.ValidateConfig(cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	a := app.New(cfg)

	log.Info().Msg("fetching the company CIK map from the SEC")
	cikMap, err := a.LoadCIKMap(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load CIK map")
	}

	if company != "" {
		if err := a.RunCompany(ctx, company, cikMap); err != nil {
			log.Fatal().Err(err).Str("company", company).Msg("run failed")
		}
		return
	}

	// Interactive mode: one company per prompt until "exit".
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, "Enter a company name (or 'exit' to quit): ")
		if !scanner.Scan() {
			break
		}
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		if strings.EqualFold(name, "exit") {
			break
		}
		if err := a.RunCompany(ctx, name, cikMap); err != nil {
			log.Error().Err(err).Str("company", name).Msg("run failed")
		}
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
