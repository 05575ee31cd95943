/************************************************************************************
 *
 * corvus, a lightweight Go client SDK for a hosted chat platform
 *
 * SPDX-License-Identifier: BSD-3-Clause
 *
 * Copyright 2026 corvus contributors
 *
 * Licensed under the BSD 3-Clause License.
 * See the LICENSE file for details.
 *
 ************************************************************************************/

package corvus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	apiVersion    = "v10"
	defaultApiURL = "https://discord.com/api/" + apiVersion

	defaultMaxRetries         = 1
	defaultGlobalCapacity     = 50
	defaultGlobalWindow       = 1 * time.Second
	defaultInvalidCapacity    = 10000
	defaultInvalidWindow      = 10 * time.Minute
	defaultRequestTimeout     = 30 * time.Second
)

// AuthScheme selects the Authorization header scheme a RestEngine signs
// its requests with.
type AuthScheme int

const (
	AuthSchemeBot AuthScheme = iota
	AuthSchemeBearer
)

func (a AuthScheme) String() string {
	if a == AuthSchemeBearer {
		return "Bearer"
	}
	return "Bot"
}

// RequestKind distinguishes interaction-response requests (exempt from
// the global rate-limit window) from every other standard request. This
// replaces the boolean flag threaded through the teacher's older
// call-with-data helpers with a named, self-documenting enum.
type RequestKind int

const (
	RequestKindStandard RequestKind = iota
	RequestKindInteraction
)

// Request is a single REST call, independent of how many times the
// engine ends up retrying it.
type Request struct {
	Method string
	URL    string
	Body   []byte
	Reason string
	Kind   RequestKind

	// BodyIsJSON defaults to true for POST/PUT/PATCH with a non-empty
	// Body; set false for multipart bodies that carry their own
	// Content-Type in Headers.
	BodyIsJSON bool
	Headers    map[string]string

	// Timeout overrides the engine's default per-request timeout. Zero
	// means "use the engine default".
	Timeout time.Duration
}

// RestEngine is the REST engine (spec.md component F): it owns the base
// URL, auth, user agent, retry policy, the rate-limit ledger, and a
// transport dependency, and is safe to call from multiple goroutines
// concurrently.
type RestEngine struct {
	transport HTTPTransport
	clock     Clock
	ledger    *rateLimitLedger
	logger    Logger

	baseURL    string
	authScheme AuthScheme
	token      string
	userAgent  string

	maxRetries     int
	defaultTimeout time.Duration
}

// RestEngineConfig configures a new RestEngine.
type RestEngineConfig struct {
	Transport HTTPTransport
	Clock     Clock
	Logger    Logger

	BaseURL    string
	AuthScheme AuthScheme
	Token      string
	UserAgent  string

	MaxRetries      int
	DefaultTimeout  time.Duration
	GlobalCapacity  int
	GlobalWindow    time.Duration
	InvalidCapacity int
	InvalidWindow   time.Duration
}

// NewRestEngine builds a RestEngine, filling unset config fields with the
// spec-documented defaults.
func NewRestEngine(cfg RestEngineConfig) *RestEngine {
	if cfg.Transport == nil {
		cfg.Transport = NewDefaultHTTPTransport(nil)
	}
	if cfg.Clock == nil {
		cfg.Clock = NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultApiURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "DiscordBot (https://github.com/corvusdev/corvus, 1)"
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.DefaultTimeout <= 0 {
		cfg.DefaultTimeout = defaultRequestTimeout
	}
	if cfg.GlobalCapacity <= 0 {
		cfg.GlobalCapacity = defaultGlobalCapacity
	}
	if cfg.GlobalWindow <= 0 {
		cfg.GlobalWindow = defaultGlobalWindow
	}
	if cfg.InvalidCapacity <= 0 {
		cfg.InvalidCapacity = defaultInvalidCapacity
	}
	if cfg.InvalidWindow <= 0 {
		cfg.InvalidWindow = defaultInvalidWindow
	}

	return &RestEngine{
		transport:      cfg.Transport,
		clock:          cfg.Clock,
		ledger:         newRateLimitLedger(cfg.Clock, cfg.GlobalCapacity, cfg.GlobalWindow, cfg.InvalidCapacity, cfg.InvalidWindow),
		logger:         cfg.Logger,
		baseURL:        cfg.BaseURL,
		authScheme:     cfg.AuthScheme,
		token:          cfg.Token,
		userAgent:      cfg.UserAgent,
		maxRetries:     cfg.MaxRetries,
		defaultTimeout: cfg.DefaultTimeout,
	}
}

// normalizeURL prepends the base URL to a relative path, or validates
// that an absolute URL shares the configured base.
func (r *RestEngine) normalizeURL(path string) (string, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		if !strings.HasPrefix(path, r.baseURL) {
			return "", fmt.Errorf("corvus: absolute URL %q does not match configured base %q", path, r.baseURL)
		}
		return path, nil
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return r.baseURL + path, nil
}

// routePath strips the base URL and query string from a full request
// path, leaving the template-eligible portion RouteKey normalizes.
func routePath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path
}

// Execute runs req through the retry loop described in spec.md §4.F and
// returns the raw response body on success. Resource wrapper methods
// decode the body into their typed model.
func (r *RestEngine) Execute(req Request) Result[io.ReadCloser] {
	fullURL, err := r.normalizeURL(req.URL)
	if err != nil {
		return Err[io.ReadCloser](&APIError{Status: StatusInvalidArg, Message: err.Error()})
	}

	route := RouteKey(req.Method, routePath(req.URL), req.Kind)
	isInteraction := req.Kind == RequestKindInteraction

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = r.defaultTimeout
	}
	deadline := r.clock.Now().Add(timeout)

	return r.execute(req, fullURL, route, isInteraction, deadline)
}

func (r *RestEngine) buildHeaders(req Request) map[string]string {
	h := make(map[string]string, len(req.Headers)+4)
	for k, v := range req.Headers {
		h[k] = v
	}
	if _, ok := h["Authorization"]; !ok && r.token != "" {
		h["Authorization"] = r.authScheme.String() + " " + r.token
	}
	h["User-Agent"] = r.userAgent
	h["Accept"] = "application/json"
	bodyIsJSON := req.BodyIsJSON || (len(req.Body) > 0 && req.Headers["Content-Type"] == "")
	if bodyIsJSON && isBodyMethod(req.Method) {
		if _, ok := h["Content-Type"]; !ok {
			h["Content-Type"] = "application/json"
		}
	}
	if req.Reason != "" {
		h["X-Audit-Log-Reason"] = req.Reason
	}
	return h
}

func isBodyMethod(method string) bool {
	return method == "POST" || method == "PUT" || method == "PATCH"
}

// execute runs the bounded retry loop: pre-flight wait, transport call,
// post-flight ledger update, 429 retry.
func (r *RestEngine) execute(req Request, fullURL, route string, isInteraction bool, deadline time.Time) Result[io.ReadCloser] {
	headers := r.buildHeaders(req)

	attempts := r.maxRetries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		if wait, status := r.ledger.PreFlight(route, isInteraction); wait > 0 {
			if !r.ledger.SleepBudget(wait, deadline) {
				return Err[io.ReadCloser](&APIError{Status: StatusTimeout, Message: "rate limit wait exceeds deadline"})
			}
			r.logger.WithFields(map[string]any{"route": route, "wait": wait.String()}).Debug("pre-flight wait")
			_ = status
			r.clock.Sleep(wait)
		}

		ctx, cancel := context.WithDeadline(context.Background(), deadline)
		resp, err := r.transport.Do(ctx, HTTPRequest{
			Method:  req.Method,
			URL:     fullURL,
			Headers: headers,
			Body:    req.Body,
		})
		cancel()

		if err != nil {
			return Err[io.ReadCloser](&APIError{Status: StatusNetwork, Message: err.Error()})
		}

		rlHeaders := parseRateLimitHeaders(func(key string) string { return resp.Header.Get(key) })

		if resp.StatusCode == 429 {
			bodyBytes, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			body429, bodyStatus := parseRateLimitBody429(bodyBytes)
			var body429Ptr *rateLimitBody429
			if bodyStatus == StatusOK {
				body429Ptr = &body429
			}
			r.ledger.PostFlight(route, resp.StatusCode, rlHeaders, body429Ptr)

			if attempt == attempts-1 {
				return Err[io.ReadCloser](&APIError{Status: StatusRateLimited, HTTPStatus: 429, Message: body429.Message})
			}

			wait := rlHeaders.RetryAfter
			if body429Ptr != nil && body429Ptr.RetryAfter > wait {
				wait = body429Ptr.RetryAfter
			}
			if wait <= 0 {
				wait = 1
			}
			waitDur := time.Duration(wait * float64(time.Second))
			if !r.ledger.SleepBudget(waitDur, deadline) {
				return Err[io.ReadCloser](&APIError{Status: StatusTimeout, Message: "429 retry wait exceeds deadline"})
			}
			r.clock.Sleep(waitDur)
			continue
		}

		r.ledger.PostFlight(route, resp.StatusCode, rlHeaders, nil)

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			status := statusFromHTTP(resp.StatusCode)
			apiErr := decodeAPIError(resp.Body, status, resp.StatusCode)
			resp.Body.Close()
			return Err[io.ReadCloser](apiErr)
		}

		return Ok[io.ReadCloser](resp.Body)
	}

	return Err[io.ReadCloser](errors.New("corvus: max retries reached"))
}

// decodeAPIError reads and closes body, best-effort parsing the
// platform's structured error shape. A parse failure still yields an
// APIError with the HTTP-derived Status.
func decodeAPIError(body io.Reader, status Status, httpStatus int) *APIError {
	apiErr := &APIError{Status: status, HTTPStatus: httpStatus}
	bodyBytes, err := io.ReadAll(body)
	if err != nil || len(bodyBytes) == 0 {
		return apiErr
	}
	var parsed struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  any    `json:"errors"`
	}
	if err := NewDefaultJSONCodec().Unmarshal(bodyBytes, &parsed); err == nil {
		apiErr.Code = parsed.Code
		apiErr.Message = parsed.Message
		apiErr.Errors = parsed.Errors
	}
	return apiErr
}

