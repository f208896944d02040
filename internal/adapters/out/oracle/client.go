// Package oracle implements the RouteOracle port against the external
// route-optimization service's HTTP API.
//
// The oracle is advisory. Every failure mode of this client (network
// errors, timeouts, non-2xx responses, malformed bodies) is reported as an
// error wrapping errs.ErrOracleUnavailable so callers can isolate oracle
// trouble from their own failures and degrade to "no recommendation".
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"
	"parcelroute/internal/core/ports"
	"parcelroute/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// Config holds the explicit construction options of the oracle client.
// The base URL is required; the timeout defaults to 5s and bounds every call.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// HTTPClient overrides the transport, primarily for tests.
	HTTPClient *http.Client
}

// Client calls the route oracle over HTTP. Implements ports.RouteOracle.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient instantiates the oracle client with sane defaults.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("oracle base URL")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}, nil
}

// nextStopResponse mirrors the oracle's next-stop payload. The pickup
// endpoint names the parcel "parcel_id" while the delivery endpoint uses
// "delivery_id"; both are decoded.
type nextStopResponse struct {
	Status          string `json:"status"`
	NextDestination *struct {
		ParcelID   string `json:"parcel_id"`
		DeliveryID string `json:"delivery_id"`
	} `json:"next_destination"`
}

// NextStop asks the oracle for the driver's next recommended stop.
// Returns (nil, nil) when the oracle has no recommendation or names a parcel
// id this service cannot parse. The delivery lookup forwards the caller's
// credential verbatim and rejects an empty one before any I/O.
func (c *Client) NextStop(
	ctx context.Context,
	lifecycle parcel.Lifecycle,
	driverID kernel.UUID,
	credential string,
) (*ports.NextStop, error) {
	if err := lifecycle.Validate(); err != nil {
		return nil, err
	}

	var req *http.Request
	var err error
	switch lifecycle {
	case parcel.LifecycleDelivery:
		if strings.TrimSpace(credential) == "" {
			return nil, errs.NewMissingCredentialError("Authorization")
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodGet,
			c.baseURL+"/api/delivery/next", nil)
		if err == nil {
			req.Header.Set("Authorization", credential)
		}
	default:
		req, err = http.NewRequestWithContext(ctx, http.MethodGet,
			fmt.Sprintf("%s/api/pickup/next/%s", c.baseURL, driverID.String()), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("create next-stop request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var payload nextStopResponse
	if err = c.doJSON(req, "next "+lifecycle.String()+" stop", &payload); err != nil {
		return nil, err
	}

	if payload.Status != "success" || payload.NextDestination == nil {
		return nil, nil
	}

	rawID := payload.NextDestination.ParcelID
	if rawID == "" {
		rawID = payload.NextDestination.DeliveryID
	}
	if rawID == "" {
		return nil, nil
	}

	parcelID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		// An unparseable recommendation is treated as no recommendation
		// rather than a failure of the caller's operation.
		return nil, nil
	}

	return &ports.NextStop{ParcelID: parcelID}, nil
}

// NotifyCompletion reports a completed parcel back to the oracle.
func (c *Client) NotifyCompletion(
	ctx context.Context,
	lifecycle parcel.Lifecycle,
	parcelID kernel.UUID,
) error {
	if err := lifecycle.Validate(); err != nil {
		return err
	}
	if err := parcelID.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(map[string]string{"parcelId": parcelID.String()})
	if err != nil {
		return fmt.Errorf("encode completion payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/%s/complete", c.baseURL, lifecycle.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doJSON(req, lifecycle.String()+" completion", nil)
}

// AllPickupsCompleted asks whether every pickup in the oracle's plan is done.
func (c *Client) AllPickupsCompleted(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/pickup/all-completed", nil)
	if err != nil {
		return false, fmt.Errorf("create all-completed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var payload struct {
		Completed bool `json:"completed"`
	}
	if err = c.doJSON(req, "all pickups completed", &payload); err != nil {
		return false, err
	}

	return payload.Completed, nil
}

// doJSON executes the request and decodes a 2xx JSON body into out (when out
// is non-nil). Any transport error or non-2xx status becomes an
// OracleUnavailableError for the named operation.
func (c *Client) doJSON(req *http.Request, operation string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewOracleUnavailableError(operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.NewOracleUnavailableError(operation,
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b))))
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errs.NewOracleUnavailableError(operation, fmt.Errorf("empty response body"))
		}
		return errs.NewOracleUnavailableError(operation, err)
	}

	return nil
}
