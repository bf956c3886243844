package keycloak

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxResponseSize caps how much of a response body is read into memory.
const maxResponseSize = 4 << 20 // 4MB

// do executes one authenticated admin request. path must already be
// escaped. On an unexpected status the returned error is an *APIError
// carrying the provider's status code and message.
func (c *Client) do(ctx context.Context, method, path string, reqBody any, expect ...int) ([]byte, http.Header, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("authenticate: %w", err)
	}

	var bodyReader io.Reader
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := readBody(resp)
	if err != nil {
		return nil, resp.Header, fmt.Errorf("read response: %w", err)
	}

	if !statusExpected(resp.StatusCode, expect) {
		return respBody, resp.Header, newAPIError(resp.StatusCode, respBody)
	}
	return respBody, resp.Header, nil
}

// doJSON executes an admin request and unmarshals the response into result.
func (c *Client) doJSON(ctx context.Context, method, path string, reqBody, result any, expect ...int) error {
	body, _, err := c.do(ctx, method, path, reqBody, expect...)
	if err != nil {
		return err
	}
	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

func readBody(resp *http.Response) ([]byte, error) {
	return io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
}

// statusExpected defaults to 200 OK when no explicit codes are given.
func statusExpected(code int, expect []int) bool {
	if len(expect) == 0 {
		return code == http.StatusOK
	}
	for _, e := range expect {
		if code == e {
			return true
		}
	}
	return false
}
