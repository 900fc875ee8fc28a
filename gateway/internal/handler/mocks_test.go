package handler

import (
	"context"
	"net/url"

	"github.com/Eursukkul/shareit/gateway/internal/client"
)

type forwardedCall struct {
	method string
	path   string
	query  url.Values
	userID int64
	body   any
}

type mockForwarder struct {
	doFn        func(ctx context.Context, method, path string, query url.Values, userID int64, body any) (*client.Response, error)
	getItemFn   func(ctx context.Context, userID, itemID int64) (*client.Response, error)
	calls       []forwardedCall
	invalidated []int64
	flushes     int
}

func (m *mockForwarder) Do(ctx context.Context, method, path string, query url.Values, userID int64, body any) (*client.Response, error) {
	m.calls = append(m.calls, forwardedCall{method: method, path: path, query: query, userID: userID, body: body})
	if m.doFn == nil {
		return &client.Response{Status: 200, Body: []byte(`{}`)}, nil
	}
	return m.doFn(ctx, method, path, query, userID, body)
}

func (m *mockForwarder) GetItem(ctx context.Context, userID, itemID int64) (*client.Response, error) {
	return m.getItemFn(ctx, userID, itemID)
}

func (m *mockForwarder) InvalidateItem(_ context.Context, itemID int64) {
	m.invalidated = append(m.invalidated, itemID)
}

func (m *mockForwarder) FlushItems(context.Context) {
	m.flushes++
}
