// Command phrasegen generates a set of Thai phrases for English speakers and
// prints the result as JSON.
//
// Flags:
//
//	--config            path to YAML config (default: CONFIG_PATH or ./config.yaml)
//	--level             proficiency level, e.g. "Beginner" or "god-mode"
//	--topics            specific topics, free text
//	--discuss           topics to discuss, free text
//	--count             number of phrases to produce
//	--tone              tone level 1-10 (0 uses the configured default)
//	--avoid             comma-separated English phrases to avoid
//	--existing-from-db  also avoid phrases already stored in the database
//	--out               write JSON to this file instead of stdout
//	--migrate           apply database migrations before generating
//	--show              print a stored run by id and exit
//
// Exit codes: 0 = success, 1 = error, 2 = the run produced no phrases.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/heartmarshall/phrasegen-backend/internal/app"
	"github.com/heartmarshall/phrasegen-backend/internal/domain"
	"github.com/heartmarshall/phrasegen-backend/internal/service/generation"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	levelFlag := flag.String("level", "", "proficiency level")
	topicsFlag := flag.String("topics", "", "specific topics")
	discussFlag := flag.String("discuss", "", "topics to discuss")
	countFlag := flag.Int("count", 10, "number of phrases to produce")
	toneFlag := flag.Int("tone", 0, "tone level 1-10 (0 = configured default)")
	avoidFlag := flag.String("avoid", "", "comma-separated phrases to avoid")
	fromDBFlag := flag.Bool("existing-from-db", false, "avoid phrases already stored")
	outFlag := flag.String("out", "", "output file (default stdout)")
	migrateFlag := flag.Bool("migrate", false, "apply migrations first")
	showFlag := flag.String("show", "", "print stored run by id")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, closeOut := openOutput(*outFlag)
	defer closeOut()

	if *showFlag != "" {
		id, err := uuid.Parse(*showFlag)
		if err != nil {
			log.Fatalf("invalid --show id: %v", err)
		}
		if err := app.Show(ctx, *configFlag, id, out); err != nil {
			log.Fatalf("show: %v", err)
		}
		return
	}

	var level domain.ProficiencyLevel
	if *levelFlag != "" {
		var err error
		if level, err = domain.ParseProficiencyLevel(*levelFlag); err != nil {
			log.Fatalf("%v", err)
		}
	}

	err := app.Run(ctx, app.RunOptions{
		ConfigPath: *configFlag,
		Request: generation.Request{
			Level:           level,
			SpecificTopics:  *topicsFlag,
			TopicsToDiscuss: *discussFlag,
			Count:           *countFlag,
			ToneLevel:       *toneFlag,
			ExistingPhrases: splitList(*avoidFlag),
			AvoidStored:     *fromDBFlag,
		},
		Migrate: *migrateFlag,
		Out:     out,
	})
	switch {
	case errors.Is(err, domain.ErrNoPhrases):
		log.Printf("generation: %v", err)
		closeOut()
		os.Exit(2)
	case err != nil:
		closeOut()
		log.Fatalf("generation: %v", err)
	}
}

func openOutput(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stdout, func() {}
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	var closed bool
	return f, func() {
		if !closed {
			closed = true
			_ = f.Close()
		}
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
