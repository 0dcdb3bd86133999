package dataset

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

const fetchRetries = 4

// open resolves a table source to a reader. Remote fetches only happen at
// load time, so they may retry; route requests never do.
func open(source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetch(source)
	}

	return os.Open(source)
}

func fetch(url string) (io.ReadCloser, error) {
	var body []byte

	operation := func() error {
		response, err := http.Get(url)
		if err != nil {
			return err
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			return fmt.Errorf("fetch %s: status %d", url, response.StatusCode)
		}

		body, err = io.ReadAll(response.Body)

		return err
	}

	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("url", url).Str("retry-in", wait.String()).Msg("Dataset fetch failed")
	}

	retryBackoff := backoff.NewExponentialBackOff()
	if err := backoff.RetryNotify(operation, backoff.WithMaxRetries(retryBackoff, fetchRetries), notify); err != nil {
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(body)), nil
}
