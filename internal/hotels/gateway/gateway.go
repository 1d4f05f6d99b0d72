package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	hotelserrors "luxestay/internal/hotels/errors"
	"luxestay/pkg/client"
	"luxestay/pkg/config"
	"luxestay/pkg/logger"
)

const (
	Engine     = "google_hotels"
	LinkPrefix = "https://serpapi.com/"
)

// Payload is a decoded upstream JSON object.
type Payload = map[string]any

type Gateway interface {
	Search(ctx context.Context, opts SearchOptions) (Payload, error)
	Detail(ctx context.Context, propertyToken, checkIn, checkOut string, locale Locale) (Payload, error)
	DetailByLink(ctx context.Context, link string) (Payload, error)
}

type serpApiGateway struct {
	client     *client.HttpClient
	apiKey     string
	defaults   Locale
	linkPrefix string
	log        *logger.Logger
}

func NewSerpApiGateway(cfg *config.Config) Gateway {
	return &serpApiGateway{
		client: client.NewHttpClient(cfg.SerpApiBaseURL, cfg.UpstreamTimeout).WithRateLimit(cfg.UpstreamRPS),
		apiKey: cfg.SerpApiKey,
		defaults: Locale{
			Currency: cfg.HotelsCurrency,
			Country:  cfg.HotelsCountry,
			Language: cfg.HotelsLanguage,
		},
		linkPrefix: LinkPrefix,
		log:        cfg.Log,
	}
}

func (g *serpApiGateway) Search(ctx context.Context, opts SearchOptions) (Payload, error) {
	query := opts.values()
	g.applyDefaults(query, opts.Locale)

	payload, err := g.fetch(ctx, query)
	if err != nil {
		g.log.Error("Hotel search failed", "q", opts.Query, "error", err)
		return nil, err
	}
	g.log.Info("Hotel search successful", "q", opts.Query)
	return payload, nil
}

func (g *serpApiGateway) Detail(ctx context.Context, propertyToken, checkIn, checkOut string, locale Locale) (Payload, error) {
	query := url.Values{}
	query.Set("property_token", propertyToken)
	setString(query, "check_in_date", checkIn)
	setString(query, "check_out_date", checkOut)
	g.applyDefaults(query, locale)

	payload, err := g.fetch(ctx, query)
	if err != nil {
		g.log.Error("Hotel detail lookup failed", "property_token", propertyToken, "error", err)
		return nil, err
	}
	g.log.Info("Hotel detail lookup successful", "property_token", propertyToken)
	return payload, nil
}

func (g *serpApiGateway) DetailByLink(ctx context.Context, link string) (Payload, error) {
	target, err := RewriteLink(link, g.apiKey, g.linkPrefix)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.GETURL(ctx, target, nil)
	payload, err := decode(resp, err)
	if err != nil {
		g.log.Error("Hotel detail lookup from link failed", "error", err)
		return nil, err
	}
	g.log.Info("Hotel detail lookup from link successful")
	return payload, nil
}

// RewriteLink keeps the link's own query parameters, overwrites api_key and
// adds the engine only when the link does not name one.
func RewriteLink(link, apiKey, prefix string) (string, error) {
	if !strings.HasPrefix(link, prefix) {
		return "", hotelserrors.ErrInvalidLink
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("%w: %v", hotelserrors.ErrInvalidLink, err)
	}

	query := parsed.Query()
	query.Set("api_key", apiKey)
	if !query.Has("engine") {
		query.Set("engine", Engine)
	}
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func (g *serpApiGateway) applyDefaults(query url.Values, locale Locale) {
	query.Set("engine", Engine)
	query.Set("api_key", g.apiKey)
	query.Set("currency", firstNonEmpty(locale.Currency, g.defaults.Currency))
	query.Set("gl", firstNonEmpty(locale.Country, g.defaults.Country))
	query.Set("hl", firstNonEmpty(locale.Language, g.defaults.Language))
}

func (g *serpApiGateway) fetch(ctx context.Context, query url.Values) (Payload, error) {
	resp, err := g.client.GET(ctx, "", query, nil)
	return decode(resp, err)
}

// decode folds transport errors, non-2xx statuses, undecodable bodies and
// bodies carrying an "error" field into ErrNoResult.
func decode(resp *client.Response, err error) (Payload, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", hotelserrors.ErrNoResult, hotelserrors.ErrUpstreamUnavailable, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %w: status %d", hotelserrors.ErrNoResult, hotelserrors.ErrUpstreamRejected, resp.StatusCode)
	}

	var payload Payload
	if err := resp.DecodeJSON(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w: %v", hotelserrors.ErrNoResult, hotelserrors.ErrUpstreamRejected, err)
	}
	if upstreamErr, ok := payload["error"]; ok {
		return nil, fmt.Errorf("%w: %w: %v", hotelserrors.ErrNoResult, hotelserrors.ErrUpstreamRejected, upstreamErr)
	}
	return payload, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
