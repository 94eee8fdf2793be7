package vlparse

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// source owns the backing bytes for one parsed file, plus however they
// were obtained, so Close can release an mmap without the caller
// needing to know whether mmap was actually used.
type source struct {
	data   []byte
	mapped bool
}

// OpenSource maps path into memory when cfg.GetBool("driver.mmap_input")
// is set, falling back to a plain read otherwise -- a zero-length file
// cannot be mmap'd, so that case always falls back too. Every I/O
// failure is wrapped with github.com/pkg/errors at this boundary;
// nothing below the driver ever imports it, keeping the parser itself
// free of error-wrapping overhead on its hot path.
func OpenSource(path string, cfg *Config) (*source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "vlparse: can't open %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "vlparse: can't stat %s", path)
	}

	if cfg.GetBool("driver.mmap_input") && info.Size() > 0 {
		data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_PRIVATE)
		if err != nil {
			return nil, errors.Wrapf(err, "vlparse: can't mmap %s", path)
		}
		return &source{data: data, mapped: true}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "vlparse: can't read %s", path)
	}
	return &source{data: data, mapped: false}, nil
}

// Close releases an mmap'd source's pages; a no-op for a plain read.
func (s *source) Close() error {
	if !s.mapped {
		return nil
	}
	return errors.Wrap(unix.Munmap(s.data), "vlparse: can't munmap input")
}

// ParseDesign reads every module in path into a Design, logging one
// structured entry per module outcome at the level cfg selects. It
// stops at the first Fatal status; Recovered and Primitive modules are
// logged and parsing continues.
func ParseDesign(path string, cfg *Config) (*Design, error) {
	log := newDriverLogger(cfg)

	src, err := OpenSource(path, cfg)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	it := NewInterner()
	d := &Design{Interner: it, Config: cfg}
	p := NewPrs(src.data, it)
	li := NewLineIndex(src.data)

	for {
		status := p.ReadModule(d)
		switch status {
		case StatusEOF:
			log.WithField("modules", len(d.Modules)).Info("design parsed")
			return d, nil
		case StatusOK:
			log.WithField("module", it.String(d.Modules[len(d.Modules)-1].Name)).Debug("module parsed")
		case StatusPrimitive:
			log.WithField("module", it.String(p.known[len(p.known)-1])).Debug("primitive module skipped")
		case StatusRecovered:
			last := d.Modules[len(d.Modules)-1]
			log.WithFields(logrus.Fields{
				"module": it.String(last.Name),
				"error":  li.Annotate(p.Err()),
			}).Warn("module recovered as blackbox")
		case StatusFatal:
			log.WithField("error", li.Annotate(p.Err())).Error("fatal parse error")
			return d, p.Err()
		}
	}
}

// newDriverLogger builds a logrus.Logger at the level named by
// cfg's "driver.log_level" string, defaulting to Info on an
// unrecognized name rather than failing the whole parse over a typo
// in a config file.
func newDriverLogger(cfg *Config) *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.GetString("driver.log_level"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
