package pumpfun

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	BaseURL = "https://frontend-api-v3.pump.fun"

	userAgent = "pumpfun-client-go/1.0"
)

type Config struct {
	// APIKey is the optional bearer token. Falls back to PUMPFUN_API_KEY.
	APIKey string

	// BaseURL overrides the production endpoint, mainly for tests.
	BaseURL string

	// MaxRetries bounds retries for transient failures, 429 included.
	MaxRetries int

	// BackoffFactor is the base retry wait, doubled on each attempt.
	BackoffFactor time.Duration

	// MinRequestInterval is the minimum spacing between consecutive requests.
	MinRequestInterval time.Duration

	Timeout time.Duration
}

// Client is a synchronous client for the pump.fun frontend API. It is not
// safe for concurrent use; create one client per goroutine if needed.
type Client struct {
	http          *resty.Client
	logger        *logrus.Logger
	limiter       *limiter
	maxRetries    int
	backoffFactor time.Duration
	pageDelay     time.Duration

	// Injection points for tests. Production code never touches these.
	sleep func(time.Duration)
	now   func() time.Time
}

func NewClient(config Config, logger *logrus.Logger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = BaseURL
	}
	if config.MaxRetries <= 0 {
		config.MaxRetries = 3
	}
	if config.BackoffFactor <= 0 {
		config.BackoffFactor = 1 * time.Second
	}
	if config.MinRequestInterval <= 0 {
		config.MinRequestInterval = 100 * time.Millisecond
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}

	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("PUMPFUN_API_KEY")
	}

	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	client.SetTimeout(config.Timeout)
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", userAgent)
	if apiKey != "" {
		client.SetHeader("Authorization", "Bearer "+apiKey)
	}

	return &Client{
		http:          client,
		logger:        logger,
		limiter:       newLimiter(config.MinRequestInterval),
		maxRetries:    config.MaxRetries,
		backoffFactor: config.BackoffFactor,
		pageDelay:     500 * time.Millisecond,
		sleep:         time.Sleep,
		now:           time.Now,
	}
}

// APIError is a non-2xx response with the server's error message when one
// could be parsed.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

var retryableStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// request performs one logical API call: throttle, send, track rate limit
// headers, and retry 429/5xx/transport failures under a single bounded
// policy. Retries apply to GET and POST only.
func (c *Client) request(method, endpoint string, params map[string]string) ([]byte, error) {
	log := c.logger.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"method":     method,
		"endpoint":   endpoint,
		"params":     params,
	})

	maxAttempts := c.maxRetries + 1
	if method != http.MethodGet && method != http.MethodPost {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if wait := c.limiter.delay(c.now()); wait > 0 {
			log.WithField("wait", wait).Debug("Throttling before request")
			c.sleep(wait)
		}

		req := c.http.R()
		if len(params) > 0 {
			req.SetQueryParams(params)
		}

		resp, err := req.Execute(method, endpoint)
		c.limiter.observe(c.now())

		if err != nil {
			lastErr = err
			if attempt+1 < maxAttempts {
				wait := c.backoff(attempt)
				log.WithError(err).WithField("wait", wait).Warn("Request failed, retrying")
				c.sleep(wait)
			}
			continue
		}

		c.limiter.update(resp.Header())
		log.WithFields(logrus.Fields{
			"remaining": c.limiter.remaining,
			"limit":     c.limiter.limit,
		}).Debug("Rate limit state updated")

		status := resp.StatusCode()
		switch {
		case status == http.StatusTooManyRequests:
			lastErr = newAPIError(resp)
			if attempt+1 < maxAttempts {
				wait := retryAfter(resp.Header(), c.backoff(attempt))
				log.WithField("wait", wait).Warn("Rate limit exceeded, waiting before retry")
				c.sleep(wait)
			}
		case retryableStatuses[status]:
			lastErr = newAPIError(resp)
			if attempt+1 < maxAttempts {
				wait := c.backoff(attempt)
				log.WithFields(logrus.Fields{"status": status, "wait": wait}).Warn("Server error, retrying")
				c.sleep(wait)
			}
		case status >= 400:
			apiErr := newAPIError(resp)
			log.WithField("status", status).WithError(apiErr).Error("API request failed")
			return nil, apiErr
		default:
			return resp.Body(), nil
		}
	}

	log.WithError(lastErr).Error("Request failed after exhausting retries")
	return nil, fmt.Errorf("request failed after %d attempts: %w", maxAttempts, lastErr)
}

func (c *Client) backoff(attempt int) time.Duration {
	return c.backoffFactor * time.Duration(1<<attempt)
}

// retryAfter honors the Retry-After header on 429 responses, in whole
// seconds, falling back to the regular backoff when absent or unparsable.
func retryAfter(h http.Header, fallback time.Duration) time.Duration {
	if v, err := strconv.Atoi(h.Get("Retry-After")); err == nil && v >= 0 {
		return time.Duration(v) * time.Second
	}
	return fallback
}

func newAPIError(resp *resty.Response) *APIError {
	msg := strings.TrimSpace(string(resp.Body()))

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Error != "" {
			msg = body.Error
		} else if body.Message != "" {
			msg = body.Message
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}
