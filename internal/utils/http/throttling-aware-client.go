package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Retry-After is rounded to whole seconds, waiting a bit longer prevents premature retry.
const retryAfterPadding = 750 * time.Millisecond

//NewThrottlingAwareClient Wraps given client and retries requests answered with HTTP 429.
func NewThrottlingAwareClient(httpClient *http.Client, requestLogger func(format string, args ...interface{})) *http.Client {
	client := retryablehttp.NewClient()
	client.HTTPClient = httpClient
	client.Logger = debugLogger{inner: requestLogger}

	client.RetryMax = 5
	client.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if err != nil || resp == nil {
			return false, err
		}
		return resp.StatusCode == http.StatusTooManyRequests, nil
	}
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Backoff = func(min, max time.Duration, attemptNum int, resp *http.Response) time.Duration {
		if resp == nil {
			return retryablehttp.DefaultBackoff(min, max, attemptNum, resp)
		}

		wait, ok := retryAfter(resp.Header.Get("retry-after"), time.Now())
		if !ok {
			requestLogger("Unusable retry-after header '%v', backing off exponentially", resp.Header.Get("retry-after"))
			return retryablehttp.DefaultBackoff(min, max, attemptNum, resp)
		}
		return wait
	}

	return client.StandardClient()
}

// retryAfter parses both forms of the header: delay in seconds and HTTP date.
func retryAfter(header string, now time.Time) (time.Duration, bool) {
	if header == "" {
		return 0, false
	}

	if seconds, err := strconv.Atoi(header); err == nil {
		if seconds < 0 {
			return 0, false
		}
		return time.Duration(seconds)*time.Second + retryAfterPadding, true
	}

	at, err := time.Parse(time.RFC1123, header)
	if err != nil {
		return 0, false
	}

	at = at.Add(retryAfterPadding)

	var duration time.Duration = 0
	if at.After(now) {
		duration = at.Sub(now)
	}
	return duration, true
}

type debugLogger struct {
	inner func(format string, args ...interface{})
}

func (l debugLogger) Printf(format string, args ...interface{}) {
	// Fix weird format of inner logging...
	format = strings.ReplaceAll(format, "[DEBUG] ", "")
	format = strings.ReplaceAll(format, "%s", "%v")
	l.inner(format, args...)
}
