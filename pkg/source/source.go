package source

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog/log"
)

// Open returns a reader over a feed source, which may be a local path or an
// HTTP(S) URL. Gzipped sources are transparently decompressed. A source
// that cannot be opened is fatal to the run, so the error carries enough
// context to diagnose it.
func Open(pathOrURL string) (io.ReadCloser, error) {
	name := pathOrURL

	var file *os.File
	var err error

	if isValidURL(pathOrURL) {
		file, err = downloadTempFile(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("download %s: %w", pathOrURL, err)
		}

		parsed, _ := url.Parse(pathOrURL)
		name = parsed.Path
	} else {
		file, err = os.Open(pathOrURL)
		if err != nil {
			return nil, err
		}
	}

	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("gzip %s: %w", pathOrURL, err)
		}

		return &gzipReadCloser{gzip: gzipReader, file: file}, nil
	}

	return file, nil
}

func isValidURL(toTest string) bool {
	u, err := url.Parse(toTest)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return u.Scheme == "http" || u.Scheme == "https"
}

// downloadTempFile fetches a URL into an unlinked temporary file, retrying
// transient failures with exponential backoff.
func downloadTempFile(sourceURL string) (*os.File, error) {
	var tempFile *os.File

	operation := func() error {
		resp, err := http.Get(sourceURL)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %s", resp.Status)
		}

		file, err := os.CreateTemp(os.TempDir(), "pulse-feed-")
		if err != nil {
			return backoff.Permanent(err)
		}
		// Unlink immediately so the temp file disappears on close
		os.Remove(file.Name())

		if _, err := io.Copy(file, resp.Body); err != nil {
			file.Close()
			return err
		}

		if _, err := file.Seek(0, io.SeekStart); err != nil {
			file.Close()
			return backoff.Permanent(err)
		}

		tempFile = file
		return nil
	}

	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("url", sourceURL).Dur("retry_in", wait).Msg("Feed download failed")
	}

	err := backoff.RetryNotify(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4), notify)
	if err != nil {
		return nil, err
	}

	log.Info().Str("url", sourceURL).Msg("Downloaded feed")

	return tempFile, nil
}

type gzipReadCloser struct {
	gzip *gzip.Reader
	file io.Closer
}

func (g *gzipReadCloser) Read(p []byte) (int, error) {
	return g.gzip.Read(p)
}

func (g *gzipReadCloser) Close() error {
	gzipErr := g.gzip.Close()
	fileErr := g.file.Close()

	if gzipErr != nil {
		return gzipErr
	}
	return fileErr
}
