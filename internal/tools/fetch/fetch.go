// Package fetch downloads API description sources from any location
// go-getter understands (local files, http(s), git, s3, ...).
package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"
	fgetter "github.com/hashicorp/go-getter"
	"github.com/krateoplatformops/oasdocs/internal/logger"
	"github.com/krateoplatformops/provider-runtime/pkg/logging"
)

// Fetcher retrieves remote or local files into memory. It is safe for
// concurrent use.
type Fetcher struct {
	log      *logger.Logger
	attempts uint
	delay    time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithLogger sets the logger used to report retries.
func WithLogger(l logging.Logger) Option {
	return func(f *Fetcher) {
		f.log = logger.From(l)
	}
}

// WithRetry sets how many times a download is attempted and the initial
// backoff between attempts.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(f *Fetcher) {
		if attempts > 0 {
			f.attempts = attempts
		}
		if delay >= 0 {
			f.delay = delay
		}
	}
}

func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		log:      logger.New(nil, false),
		attempts: 3,
		delay:    500 * time.Millisecond,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Fetch returns the content found at src. Relative local paths are
// resolved against the working directory.
func (f *Fetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	workDir, err := os.MkdirTemp("", "oasdocs-")
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	dst := filepath.Join(workDir, "source")

	err = retry.Do(
		func() error {
			return f.get(ctx, dst, src)
		},
		retry.Context(ctx),
		retry.Attempts(f.attempts),
		retry.Delay(f.delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			f.log.Warn("Retrying download", err, "source", src, "attempt", n+1)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", src, err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src, err)
	}
	return data, nil
}

// get downloads src with a client of its own. go-getter's package-level
// getters are bound to the last client that configured them, so they
// cannot be shared between concurrent downloads.
func (f *Fetcher) get(ctx context.Context, dst, src string) error {
	pwd, err := os.Getwd()
	if err != nil {
		return retry.Unrecoverable(fmt.Errorf("failed to get working directory: %w", err))
	}

	client := &fgetter.Client{
		Ctx:     ctx,
		Src:     src,
		Dst:     dst,
		Pwd:     pwd,
		Mode:    fgetter.ClientModeFile,
		Getters: newGetters(),
	}
	return client.Get()
}

func newGetters() map[string]fgetter.Getter {
	httpGetter := &fgetter.HttpGetter{Netrc: true}

	return map[string]fgetter.Getter{
		"file":  new(fgetter.FileGetter),
		"git":   new(fgetter.GitGetter),
		"gcs":   new(fgetter.GCSGetter),
		"hg":    new(fgetter.HgGetter),
		"s3":    new(fgetter.S3Getter),
		"http":  httpGetter,
		"https": httpGetter,
	}
}
