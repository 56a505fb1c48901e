package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"

	"github.com/AIdirectory/DeepJ/internal/config"
	"github.com/AIdirectory/DeepJ/internal/dataset"
	"github.com/AIdirectory/DeepJ/internal/encoding"
	"github.com/AIdirectory/DeepJ/internal/midiio"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for splitting and sampling")
	batches := flag.Int("batches", 1, "demo batches to draw after loading")
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("DeepJ data pipeline %s (styles: %v, seed: %d)", releaseVersion, cfg.Styles, *seed)

	codec := encoding.New(cfg.NumNotes, cfg.TimeQuantization)
	loader := dataset.NewLoader(cfg, codec, midiio.NewParser(codec))

	corpus, err := loader.Load()
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	log.Printf("Corpus: %d composition(s) across %d style(s)", corpus.Len(), len(corpus.Styles))

	rng := rand.New(rand.NewSource(*seed))
	split, err := dataset.SplitCorpus(corpus, cfg.ValidationSplit, rng)
	if err != nil {
		log.Fatalf("Failed to split corpus: %v", err)
	}
	log.Printf("Split: %d training, %d validation", len(split.Train), len(split.Val))

	sampler, err := dataset.NewSampler(codec, split.Train, cfg.TransposeRange, rng)
	if err != nil {
		log.Fatalf("Failed to build sampler: %v", err)
	}
	batcher := dataset.NewBatcher(sampler)

	for i := 0; i < *batches; i++ {
		b, err := batcher.Batch(cfg.BatchSize, cfg.SeqLen)
		if err != nil {
			log.Fatalf("Failed to draw batch: %v", err)
		}
		log.Printf("Batch %d: events [%d x %d], styles [%d], progress [%d x %d x %d]",
			i+1, len(b.Events), len(b.Events[0]), len(b.Styles),
			len(b.Progress), len(b.Progress[0]), len(b.Progress[0][0]))
	}
}
