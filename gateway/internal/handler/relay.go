package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Eursukkul/shareit/gateway/internal/client"
	"github.com/labstack/echo/v4"
)

const defaultPageSize = 10

// Forwarder sends validated requests on to the server.
type Forwarder interface {
	Do(ctx context.Context, method, path string, query url.Values, userID int64, body any) (*client.Response, error)
	GetItem(ctx context.Context, userID, itemID int64) (*client.Response, error)
	InvalidateItem(ctx context.Context, itemID int64)
	FlushItems(ctx context.Context)
}

// relay writes the server's answer back unchanged.
func relay(c echo.Context, resp *client.Response, err error) error {
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			return echo.NewHTTPError(http.StatusBadGateway, "server unavailable")
		}
		return err
	}
	if len(resp.Body) == 0 {
		return c.NoContent(resp.Status)
	}
	return c.Blob(resp.Status, echo.MIMEApplicationJSON, resp.Body)
}

func succeeded(resp *client.Response, err error) bool {
	return err == nil && resp.Status >= 200 && resp.Status < 300
}

// bookingItemID reads item.id from a booking response body.
func bookingItemID(body []byte) int64 {
	var b struct {
		Item struct {
			ID int64 `json:"id"`
		} `json:"item"`
	}
	if err := json.Unmarshal(body, &b); err != nil {
		return 0
	}
	return b.Item.ID
}

// bindAndValidate decodes the JSON body into req and runs e.Validator on it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(req)
}

func pageQuery(from, size int) url.Values {
	return url.Values{
		"from": {strconv.Itoa(from)},
		"size": {strconv.Itoa(size)},
	}
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}
