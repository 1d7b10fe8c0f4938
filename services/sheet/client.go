package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Actions recognized by the record store. The store interprets them; this
// client only tags the payload.
const (
	ActionCreate      = "create"
	ActionGetServices = "getServices"
	ActionGetSlots    = "getSlots"
	ActionGetBookings = "getBookings"
	ActionListAll     = "list_all"
)

// Body is the record store's parsed JSON reply. Fields beyond the few this
// service inspects are passed through untouched.
type Body map[string]interface{}

// OK reports whether the store marked the operation successful. A 2xx
// status alone proves nothing; the flag is authoritative.
func (b Body) OK() bool {
	ok, _ := b["ok"].(bool)
	return ok
}

// Reason returns the store's reason code, if any.
func (b Body) Reason() string {
	s, _ := b["reason"].(string)
	return s
}

// CreatedAtUTC returns the store-side creation timestamp, if supplied.
func (b Body) CreatedAtUTC() string {
	s, _ := b["createdAtUTC"].(string)
	return s
}

// Result is the uniform outcome of one record store call.
type Result struct {
	HTTPStatus int
	Body       Body
}

// Client sends action-tagged payloads to the record store.
type Client interface {
	Send(ctx context.Context, payload map[string]interface{}) Result
}

// HTTPClient is the production implementation: one POST per call against
// the configured Apps Script web app URL.
type HTTPClient struct {
	hc     *http.Client
	url    string
	logger *zap.Logger
}

func NewHTTPClient(url string, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		hc:     &http.Client{Timeout: 30 * time.Second},
		url:    url,
		logger: logger,
	}
}

// Send serializes the payload and performs the POST. It never returns an
// error: transport failures and unparseable replies collapse into a
// synthetic 500 result so callers branch on data, not exceptions.
func (c *HTTPClient) Send(ctx context.Context, payload map[string]interface{}) Result {
	raw, err := json.Marshal(payload)
	if err != nil {
		return c.failure("failed to encode sheet payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(raw))
	if err != nil {
		return c.failure("failed to build sheet request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return c.failure("error calling sheet endpoint", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return c.failure("error reading sheet response", err)
	}

	var body Body
	if err := json.Unmarshal(data, &body); err != nil {
		return c.failure("sheet returned a non-JSON response", err)
	}

	// Status and body pass through as-is, even for 4xx/5xx replies; the
	// orchestrator decides what they mean.
	return Result{HTTPStatus: res.StatusCode, Body: body}
}

func (c *HTTPClient) failure(msg string, err error) Result {
	c.logger.Error(msg, zap.Error(err))
	return Result{
		HTTPStatus: http.StatusInternalServerError,
		Body:       Body{"ok": false, "error": msg + ": " + err.Error()},
	}
}
