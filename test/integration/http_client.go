//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/issue-tracker/internal/api/middleware"
)

// HTTPClient drives the router in-process, optionally acting as a user.
type HTTPClient struct {
	router *gin.Engine
	actor  uint
}

func NewHTTPClient(router *gin.Engine, actor uint) *HTTPClient {
	return &HTTPClient{router: router, actor: actor}
}

type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

func (c *HTTPClient) Do(method, path string, body interface{}) (*Response, error) {
	var bodyReader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		bodyReader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.actor != 0 {
		req.Header.Set(middleware.UserIDHeader, strconv.FormatUint(uint64(c.actor), 10))
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	return &Response{
		StatusCode: w.Code,
		Body:       w.Body.Bytes(),
		Headers:    w.Header(),
	}, nil
}

func (c *HTTPClient) GET(path string) (*Response, error) {
	return c.Do(http.MethodGet, path, nil)
}

func (c *HTTPClient) POST(path string, body interface{}) (*Response, error) {
	return c.Do(http.MethodPost, path, body)
}

func (c *HTTPClient) PATCH(path string, body interface{}) (*Response, error) {
	return c.Do(http.MethodPatch, path, body)
}

func (c *HTTPClient) DELETE(path string) (*Response, error) {
	return c.Do(http.MethodDelete, path, nil)
}

// DecodeJSON decodes JSON response body into target
func (r *Response) DecodeJSON(target interface{}) error {
	return json.Unmarshal(r.Body, target)
}

// GetErrorMessage extracts error message from response
func (r *Response) GetErrorMessage() string {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return string(r.Body)
	}
	if msg, ok := errResp["error"].(string); ok {
		return msg
	}
	return string(r.Body)
}
