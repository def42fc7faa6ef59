// Command tabverb runs a YAML-configured verb pipeline over a DKVP-encoded
// record stream read from stdin, writing transformed records to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"tabverb/internal/config"
	"tabverb/internal/diag"
	"tabverb/internal/iolines"
	"tabverb/internal/metrics"
	"tabverb/pkg/dslerr"
	"tabverb/pkg/verb"
)

func main() {
	var (
		pipelineFile string
		metricsAddr  string
	)
	flag.StringVar(&pipelineFile, "pipeline", "", "Path to pipeline YAML file")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "Address to serve /metrics on (empty disables)")
	flag.Parse()

	argv0 := os.Args[0]
	logger := diag.New(argv0)

	if pipelineFile == "" {
		if env := os.Getenv("TABVERB_PIPELINE_FILE"); env != "" {
			pipelineFile = env
		}
	}

	if metricsAddr != "" {
		go serveMetrics(metricsAddr, logger)
	}

	if err := run(argv0, pipelineFile, os.Stdin, os.Stdout, os.Stderr, logger); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", argv0, err)
		os.Exit(1)
	}
}

func serveMetrics(addr string, logger *diag.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Errorf("metrics server stopped: %v", err)
	}
}

// run wires config + registry + pipeline + DKVP codec together and drains
// stdin to completion, feeding exactly one trailing nil to signal
// end-of-stream per §4.2/§5.
func run(argv0, pipelineFile string, stdin io.Reader, stdout io.Writer, stderr io.Writer, logger *diag.Logger) error {
	cfg, err := config.Load(pipelineFile)
	if err != nil {
		return fmt.Errorf("loading pipeline config: %w", err)
	}

	reg := verb.NewRegistry()
	verbs, err := config.Build(argv0, cfg, reg, stderr)
	if err != nil {
		return fmt.Errorf("building pipeline: %w", err)
	}
	pipeline := verb.NewPipeline(verbs)
	pipeline.OnDrop = func(verbName string) {
		metrics.RecordsDropped.WithLabelValues("default", verbName).Inc()
	}
	pipeline.OnVerbDuration = func(verbName string, seconds float64) {
		metrics.VerbDuration.WithLabelValues("default", verbName).Observe(seconds)
	}
	defer pipeline.Close()

	reader := iolines.NewReader(stdin)
	writer := iolines.NewWriter(stdout)

	var sec2gmtErr error
	for {
		rec, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("reading record: %w", readErr)
		}

		metrics.RecordsIn.WithLabelValues("default").Inc()
		out := pipeline.Feed(rec)

		for _, r := range out {
			if r == nil {
				continue
			}
			metrics.RecordsOut.WithLabelValues("default").Inc()
			if err := writer.Write(r); err != nil {
				return fmt.Errorf("writing record: %w", err)
			}
		}

		if err := firstFatalVerbError(verbs); err != nil {
			sec2gmtErr = err
			break
		}
	}

	if sec2gmtErr == nil {
		pipeline.Feed(nil)
		sec2gmtErr = firstFatalVerbError(verbs)
	}

	if sec2gmtErr != nil {
		component, code := "verb", "unknown"
		if dslErr, ok := sec2gmtErr.(*dslerr.DSLError); ok {
			component, code = dslErr.Component, dslErr.Code
		}
		metrics.ErrorsTotal.WithLabelValues(component, code).Inc()
		logger.Fatalf("fatal verb error: %v", sec2gmtErr)
		return sec2gmtErr
	}
	return nil
}

// firstFatalVerbError checks every Sec2GMT verb in the pipeline for a
// scan failure recorded during the most recent Feed, per §7 item 4.
func firstFatalVerbError(verbs []verb.Verb) error {
	for _, v := range verbs {
		if s, ok := v.(*verb.Sec2GMT); ok {
			if err := s.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}
