package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Sternrassler/phrase-client/pkg/cache"
)

// process turns a response into a result stored in target and returns the
// headers the caller should see. It closes the response body.
//
// Status 304 is answered from the response store. A fresh success is
// decoded by content family and, when it carries an ETag, stored with the
// payload written before its validator.
func (c *Client) process(ctx context.Context, key cache.RequestKey, resp *http.Response, target any) (http.Header, error) {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 399 {
		body, _ := io.ReadAll(resp.Body)
		return resp.Header, NewStatusError(resp.StatusCode, string(body))
	}

	if resp.StatusCode == http.StatusNotModified {
		return c.serveNotModified(ctx, key, resp, target)
	}

	family, mediaType, err := ParseContentFamily(resp.Header.Get("Content-Type"))
	if err != nil {
		return resp.Header, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.Header, WrapError(KindTransport, "read response body", err)
	}

	payload := cache.Payload{
		ContentType: mediaType,
		Link:        resp.Header.Values("Link"),
		Body:        body,
	}
	switch family {
	case FamilyJSON:
		payload.Kind = cache.PayloadStructured
	case FamilyRaw:
		payload.Kind = cache.PayloadRaw
	}

	if err := decodePayload(payload, target); err != nil {
		return resp.Header, err
	}

	if etag := cache.ETagFromResponse(resp); etag != "" {
		c.store(ctx, key, etag, payload)
	}
	return resp.Header, nil
}

func (c *Client) serveNotModified(ctx context.Context, key cache.RequestKey, resp *http.Response, target any) (http.Header, error) {
	cache.NotModifiedResponses.Inc()

	payload, err := c.responses.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			c.logger.Warn().Err(err).Str("key", key.String()).Msg("Response lookup failed")
		}
		// Without a payload the validator only produces more 304s.
		if delErr := c.validators.Delete(ctx, key); delErr != nil {
			c.logger.Warn().Err(delErr).Str("key", key.String()).Msg("Failed to drop orphaned validator")
		}
		return resp.Header, WrapError(KindNotModifiedWithoutCache,
			fmt.Sprintf("not modified but no cached response for %s", key), err)
	}

	c.logger.Debug().
		Str("key", key.String()).
		Bool("cache_hit", true).
		Msg("304 Not Modified - using cache")

	header := resp.Header.Clone()
	if len(header.Values("Link")) == 0 {
		for _, link := range payload.Link {
			header.Add("Link", link)
		}
	}
	return header, decodePayload(payload, target)
}

func (c *Client) store(ctx context.Context, key cache.RequestKey, etag string, payload cache.Payload) {
	if err := c.responses.Set(ctx, key, payload); err != nil {
		c.logger.Warn().Err(err).Str("key", key.String()).Msg("Failed to cache response")
		return
	}
	if err := c.validators.Set(ctx, key, etag); err != nil {
		c.logger.Warn().Err(err).Str("key", key.String()).Msg("Failed to cache validator")
		return
	}
	c.logger.Debug().
		Str("key", key.String()).
		Str("etag", etag).
		Str("kind", payload.Kind.String()).
		Msg("Cached response")
}

// decodePayload writes payload into target. A nil target discards the
// payload. *[]byte receives a copy of the body for either kind; any other
// target only accepts structured payloads.
func decodePayload(payload cache.Payload, target any) error {
	if target == nil {
		return nil
	}

	if b, ok := target.(*[]byte); ok {
		if b == nil {
			return NewError(KindInvalidTarget, "nil *[]byte target")
		}
		*b = append([]byte(nil), payload.Body...)
		return nil
	}

	switch payload.Kind {
	case cache.PayloadStructured:
		if err := json.Unmarshal(payload.Body, target); err != nil {
			var invalid *json.InvalidUnmarshalError
			if errors.As(err, &invalid) {
				return WrapError(KindInvalidTarget, fmt.Sprintf("decode %s into %T", payload.ContentType, target), err)
			}
			return WrapError(KindDecode, fmt.Sprintf("decode %s", payload.ContentType), err)
		}
		return nil
	case cache.PayloadRaw:
		return NewError(KindInvalidTarget, fmt.Sprintf("%s body needs a *[]byte target, got %T", payload.ContentType, target))
	default:
		return NewError(KindDecode, fmt.Sprintf("unknown payload kind %s", payload.Kind))
	}
}
