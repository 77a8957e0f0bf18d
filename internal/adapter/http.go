// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-feed-keeper/internal/config"
	"github.com/MKhiriev/go-feed-keeper/internal/logger"
	"github.com/MKhiriev/go-feed-keeper/internal/utils"
	"github.com/MKhiriev/go-feed-keeper/models"
	"github.com/go-resty/resty/v2"
)

// Feed API v3 endpoints.
const (
	pathCollections    = "/v3/collections"
	pathStreamContents = "/v3/streams/contents"
	pathStreamIDs      = "/v3/streams/ids"
	pathMarkers        = "/v3/markers"
	pathEntriesMget    = "/v3/entries/.mget"
)

type httpFeedService struct {
	client   *utils.HTTPClient
	limiter  *rateLimiter
	pageSize int
	now      func() time.Time

	logger *logger.Logger
}

// NewHTTPFeedService builds the resty-backed [FeedService] for the API at
// adapterCfg.HTTPAddress.
func NewHTTPFeedService(adapterCfg config.ClientAdapter, logger *logger.Logger) (FeedService, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpFeedService{
		client:   client,
		limiter:  newRateLimiter(adapterCfg.RequestsPerSecond),
		pageSize: adapterCfg.PageSize,
		now:      time.Now,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpFeedService) GetCollections(ctx context.Context, creds models.Credentials) ([]models.RemoteCollection, error) {
	var dtos []collectionDTO

	req, err := h.authedRequest(ctx, creds)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetResult(&dtos).Get(pathCollections)
	if err = h.checkResponse("get collections", resp, err); err != nil {
		return nil, err
	}

	collections := make([]models.RemoteCollection, 0, len(dtos))
	for _, d := range dtos {
		collections = append(collections, d.toModel())
	}
	return collections, nil
}

func (h *httpFeedService) GetStreamContents(ctx context.Context, creds models.Credentials, streamReq models.StreamRequest) (models.RemoteStreamContents, error) {
	var dto streamContentsDTO

	req, err := h.authedRequest(ctx, creds)
	if err != nil {
		return models.RemoteStreamContents{}, err
	}

	resp, err := req.
		SetQueryParams(h.streamQuery(streamReq)).
		SetResult(&dto).
		Get(pathStreamContents)
	if err = h.checkResponse("get stream contents", resp, err); err != nil {
		return models.RemoteStreamContents{}, err
	}

	return models.RemoteStreamContents{
		Items:        toEntryModels(dto.Items),
		Continuation: dto.Continuation,
	}, nil
}

func (h *httpFeedService) GetStreamIDs(ctx context.Context, creds models.Credentials, streamReq models.StreamRequest) (models.RemoteStreamIDs, error) {
	var dto streamIDsDTO

	req, err := h.authedRequest(ctx, creds)
	if err != nil {
		return models.RemoteStreamIDs{}, err
	}

	resp, err := req.
		SetQueryParams(h.streamQuery(streamReq)).
		SetResult(&dto).
		Get(pathStreamIDs)
	if err = h.checkResponse("get stream ids", resp, err); err != nil {
		return models.RemoteStreamIDs{}, err
	}

	return models.RemoteStreamIDs{IDs: dto.IDs, Continuation: dto.Continuation}, nil
}

func (h *httpFeedService) MarkArticles(ctx context.Context, creds models.Credentials, ids []string, action models.MarkAction) error {
	marker, ok := markerActions[action]
	if !ok {
		return fmt.Errorf("%w: unknown mark action %q", ErrBadRequest, action)
	}
	if len(ids) == 0 {
		return nil
	}

	req, err := h.authedRequest(ctx, creds)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(markersDTO{Action: marker, Type: markerTypeEntries, EntryIDs: ids}).
		Post(pathMarkers)

	return h.checkResponse("mark articles", resp, err)
}

func (h *httpFeedService) GetEntries(ctx context.Context, creds models.Credentials, ids []string) ([]models.RemoteStreamItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var dtos []entryDTO

	req, err := h.authedRequest(ctx, creds)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(entriesRequestDTO{IDs: ids}).
		SetResult(&dtos).
		Post(pathEntriesMget)
	if err = h.checkResponse("get entries", resp, err); err != nil {
		return nil, err
	}

	return toEntryModels(dtos), nil
}

// Wait blocks until the rate limiter lets the next request through or ctx
// is done. It covers the token bucket and any Retry-After window opened by
// a 429.
func (h *httpFeedService) Wait(ctx context.Context) error {
	if err := h.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("wait for rate limiter: %w", ctxErr)
		}
		return fmt.Errorf("wait for rate limiter: %w: %w", ErrRateLimited, err)
	}
	return nil
}

// authedRequest checks the credentials and returns a request carrying the
// bearer token. Pacing is left to Wait.
func (h *httpFeedService) authedRequest(ctx context.Context, creds models.Credentials) (*resty.Request, error) {
	if err := checkCredentials(creds, h.now()); err != nil {
		return nil, err
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(strings.TrimSpace(creds.Secret)), nil
}

func (h *httpFeedService) checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		if resp != nil && resp.StatusCode() != 0 && !resp.IsSuccess() {
			return h.mapStatus(op, resp)
		}
		if resp != nil && resp.IsSuccess() {
			// body could not be decoded into the result type
			return fmt.Errorf("%s: %w: %w", op, ErrBadResponse, err)
		}
		return mapRequestError(op, err)
	}

	return h.mapStatus(op, resp)
}

func (h *httpFeedService) mapStatus(op string, resp *resty.Response) error {
	err := mapHTTPError(resp)
	if err == nil {
		return nil
	}

	var rateErr *RateLimitError
	if errors.As(err, &rateErr) {
		h.limiter.Backoff(rateErr.RetryAfter)
	}

	h.logger.Warn().
		Str("func", "httpFeedService.mapStatus").
		Str("op", op).
		Int("status", resp.StatusCode()).
		Err(err).
		Msg("feed API request failed")

	return fmt.Errorf("%s: %w", op, err)
}

func (h *httpFeedService) streamQuery(req models.StreamRequest) map[string]string {
	q := map[string]string{"streamId": req.StreamID}

	count := req.Count
	if count <= 0 {
		count = h.pageSize
	}
	if count > 0 {
		q["count"] = strconv.Itoa(count)
	}
	if req.Continuation != "" {
		q["continuation"] = req.Continuation
	}
	if req.NewerThan != nil {
		q["newerThan"] = strconv.FormatInt(req.NewerThan.UnixMilli(), 10)
	}
	if req.UnreadOnly {
		q["unreadOnly"] = "true"
	}
	return q
}
