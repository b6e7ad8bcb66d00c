package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/blockforge/mcaddon"
	"github.com/blockforge/mcaddon/builtin"
	"github.com/blockforge/mcaddon/schema"
	"github.com/blockforge/mcaddon/template"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "version":
		fmt.Println("mcaddon " + version)
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "mcaddon CLI\n\nUsage:\n  mcaddon version\n  mcaddon validate [-watch] [-context ctx.yaml] file.json [...]\n\nNotes:\n  - validate loads each document through the full pipeline (template\n    expansion, version resolution, schema validation, entity mapping).\n  - -watch re-runs on file changes, skipping unchanged content.")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var watch bool
	var contextPath string
	var strictDup bool
	fs.BoolVar(&watch, "watch", false, "watch the files and re-validate on change")
	fs.StringVar(&contextPath, "context", "", "YAML or JSON template context file")
	fs.BoolVar(&strictDup, "strict-duplicates", false, "treat duplicate JSON keys as errors")
	_ = fs.Parse(args)
	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	pipe := mcaddon.NewPipeline(builtin.Default(), schema.Default()).
		WithPreprocessor(template.Preprocessor())

	opt := mcaddon.Options{OnDuplicateKey: mcaddon.Warn}
	opt.Warn = func(it mcaddon.Issue) {
		log.Warnw("duplicate key", "pointer", it.Path, "message", it.Message)
	}
	if strictDup {
		opt.OnDuplicateKey = mcaddon.Error
	}
	if contextPath != "" {
		ctx, err := template.LoadContext(contextPath)
		if err != nil {
			log.Fatalw("loading template context", "path", contextPath, "error", err)
		}
		opt.Context = ctx
	}

	run := func() bool {
		ok := true
		for _, path := range paths {
			if !validateOne(log, pipe, path, opt) {
				ok = false
			}
		}
		return ok
	}

	if !watch {
		if !run() {
			os.Exit(1)
		}
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalw("starting watcher", "error", err)
	}
	defer func() { _ = watcher.Close() }()
	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			log.Fatalw("watching file", "path", path, "error", err)
		}
	}
	run()

	// Editors fire several events per save; fingerprints skip re-validating
	// content that did not actually change.
	seen := map[string]uint64{}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			seen[path] = xxhash.Sum64(data)
		}
	}
	log.Infow("watching for changes", "files", len(paths))
	for {
		select {
		case ev, open := <-watcher.Events:
			if !open {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			data, err := os.ReadFile(ev.Name)
			if err != nil {
				continue
			}
			sum := xxhash.Sum64(data)
			if seen[ev.Name] == sum {
				continue
			}
			seen[ev.Name] = sum
			validateOne(log, pipe, ev.Name, opt)
		case err, open := <-watcher.Errors:
			if !open {
				return
			}
			log.Warnw("watch error", "error", err)
		}
	}
}

func validateOne(log *zap.SugaredLogger, pipe *mcaddon.Pipeline, path string, opt mcaddon.Options) bool {
	es, err := pipe.LoadAll(path, opt)
	if err != nil {
		if iss, ok := mcaddon.AsIssues(err); ok {
			for _, it := range iss {
				log.Errorw("invalid document",
					"path", path, "pointer", it.Path, "code", it.Code, "message", it.Message)
			}
		} else {
			log.Errorw("invalid document", "path", path, "error", err)
		}
		return false
	}
	for _, e := range es {
		log.Infow("valid document",
			"path", path,
			"type", e.Type.Name,
			"identifier", e.ID.String(),
			"format_version", e.Version.String())
	}
	return true
}
