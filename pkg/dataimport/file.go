package dataimport

import (
	"context"
	"os"

	"github.com/admpub/log"
	"github.com/admpub/tail"

	"github.com/admpub/groupbar/pkg/chart"
)

// ReadFile applies every line of the file at path to m. It stops at the first
// line that cannot be applied.
func ReadFile(path string, m *chart.Model) error {
	// the reader waits for a missing file to appear
	if _, err := os.Stat(path); err != nil {
		return err
	}
	ti, err := tail.TailFile(path, tail.Config{})
	if err != nil {
		return err
	}
	p := NewParser(m)
	for line := range ti.Lines {
		if line.Err != nil {
			stop(ti)
			return line.Err
		}
		if err = p.Parse(line.Text); err != nil {
			stop(ti)
			return err
		}
	}
	return nil
}

// Follow calls apply with every line of the file at path, existing ones first,
// then new ones as they are appended, until ctx is done. Lines that apply
// rejects are logged and skipped.
func Follow(ctx context.Context, path string, apply func(line string) error) error {
	ti, err := tail.TailFile(path, tail.Config{Follow: true})
	if err != nil {
		return err
	}
	defer stop(ti)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-ti.Lines:
			if !ok {
				return nil
			}
			if line.Err != nil {
				log.Warnf(`[%s] %v`, path, line.Err)
				continue
			}
			if err := apply(line.Text); err != nil {
				log.Warnf(`[%s] %v`, path, err)
			}
		}
	}
}

// stop drains the lines the reader may still be sending so that Stop does
// not block on it.
func stop(ti *tail.Tail) {
	go func() {
		for range ti.Lines {
		}
	}()
	ti.Stop()
}
