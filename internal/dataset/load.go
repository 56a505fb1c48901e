package dataset

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/remeh/sizedwaitgroup"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/AIdirectory/DeepJ/internal/config"
	"github.com/AIdirectory/DeepJ/internal/encoding"
)

// Parser turns a score file into an ordered sequence of non-negative
// event codes.
type Parser interface {
	Parse(path string) ([]int, error)
}

// Loader builds the corpus: it enumerates each style's files, parses
// them in parallel, validates the event codes, and attaches style tags
// and progress labels.
type Loader struct {
	cfg    *config.Config
	codec  encoding.Codec
	parser Parser
}

func NewLoader(cfg *config.Config, codec encoding.Codec, parser Parser) *Loader {
	return &Loader{cfg: cfg, codec: codec, parser: parser}
}

// Load parses every style directory into a corpus. Per-file failures
// (unreadable files, sequences shorter than the window length, event
// codes outside the configured ranges) are logged and skipped; only an
// empty corpus is fatal.
func (l *Loader) Load() (*Corpus, error) {
	corpus := &Corpus{Styles: l.cfg.Styles, codec: l.codec}

	styleFiles := make([][]string, len(l.cfg.Styles))
	total := 0
	for i, style := range l.cfg.Styles {
		files, err := scoreFiles(filepath.Join(l.cfg.DataDir, style))
		if err != nil {
			return nil, fmt.Errorf("enumerating style %s: %w", style, err)
		}
		styleFiles[i] = files
		total += len(files)
	}
	if total == 0 {
		return nil, &InsufficientDataError{Context: "no score files under " + l.cfg.DataDir}
	}

	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("Loading: "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
		),
	)

	for tag, style := range l.cfg.Styles {
		comps := l.loadStyle(tag, styleFiles[tag], bar)

		eventSum := 0
		for _, c := range comps {
			eventSum += len(c.Events)
		}
		if len(comps) > 0 {
			log.Printf("Loaded %d %s file(s) with average event count %s",
				len(comps), style, humanize.Comma(int64(eventSum/len(comps))))
		} else {
			log.Printf("Loaded no usable %s files", style)
		}

		corpus.Compositions = append(corpus.Compositions, comps...)
	}
	p.Wait()

	if corpus.Len() == 0 {
		return nil, &InsufficientDataError{Context: "no usable compositions in " + l.cfg.DataDir}
	}
	return corpus, nil
}

// loadStyle parses one style's files over a bounded worker pool. Each
// file is independent, so parsing is embarrassingly parallel; results
// are collected under a mutex and ordered by path afterwards so corpus
// order does not depend on goroutine scheduling.
func (l *Loader) loadStyle(tag int, files []string, bar *mpb.Bar) []*Composition {
	type loaded struct {
		path string
		comp *Composition
	}

	var mu sync.Mutex
	var results []loaded

	swg := sizedwaitgroup.New(l.cfg.LoadWorkers)
	for _, path := range files {
		swg.Add()
		go func(path string) {
			defer swg.Done()
			defer bar.Increment()

			comp, err := l.loadFile(tag, path)
			if err != nil {
				log.Printf("Skipping %s: %v", path, err)
				return
			}
			mu.Lock()
			results = append(results, loaded{path: path, comp: comp})
			mu.Unlock()
		}(path)
	}
	swg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].path < results[j].path })
	comps := make([]*Composition, len(results))
	for i, r := range results {
		comps[i] = r.comp
	}
	return comps
}

func (l *Loader) loadFile(tag int, path string) (*Composition, error) {
	seq, err := l.parser.Parse(path)
	if err != nil {
		return nil, err
	}
	if len(seq) < l.cfg.SeqLen {
		return nil, &TooShortError{Path: path, Length: len(seq), Min: l.cfg.SeqLen}
	}

	// A code outside the configured ranges means the parser and the
	// codec disagree; abort this file rather than reinterpret it.
	for _, code := range seq {
		if _, err := l.codec.Classify(code); err != nil {
			return nil, err
		}
	}

	return &Composition{
		Events:   seq,
		Style:    tag,
		Progress: ProgressMatrix(len(seq), l.cfg.CategoryLevel),
	}, nil
}

func scoreFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".mid", ".midi":
			files = append(files, path)
		}
		return nil
	})
	if os.IsNotExist(err) {
		log.Printf("Style directory %s does not exist", dir)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
