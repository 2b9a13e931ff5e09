package chembl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/pharmatlas/targetroll/graph"
	"github.com/pharmatlas/targetroll/target"
)

// Client talks to the ChEMBL REST API. It implements graph.TargetFinder
// and graph.RelationLister. Safe for concurrent use.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
	tracer trace.Tracer
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the structured logger for request logging.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTracer sets the OpenTelemetry tracer for request spans.
func WithTracer(tracer trace.Tracer) ClientOption {
	return func(c *Client) {
		c.tracer = tracer
	}
}

// NewClient creates a REST client from the config.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.GetTimeout()},
		logger: slog.Default(),
		tracer: noop.NewTracerProvider().Tracer("targetroll/chembl"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// targetRecord is the wire shape of one /target entry.
type targetRecord struct {
	TargetChemblID string `json:"target_chembl_id"`
	PrefName       string `json:"pref_name"`
	TargetType     string `json:"target_type"`
}

type targetPage struct {
	Targets []targetRecord `json:"targets"`
}

// relationRecord is the wire shape of one /target_relation entry.
type relationRecord struct {
	RelatedTargetChemblID string `json:"related_target_chembl_id"`
	Relationship          string `json:"relationship"`
}

type relationPage struct {
	TargetRelations []relationRecord `json:"target_relations"`
}

// FindTarget resolves an id into its target record. Anything other than
// exactly one match fails with target.ErrNotFound.
func (c *Client) FindTarget(ctx context.Context, id string) (target.Target, error) {
	ctx, span := c.tracer.Start(ctx, "chembl.FindTarget")
	defer span.End()

	var page targetPage
	if err := c.get(ctx, "/target.json", id, &page); err != nil {
		return target.Target{}, err
	}
	if n := len(page.Targets); n != 1 {
		return target.Target{}, fmt.Errorf("%w: %d records for %s", target.ErrNotFound, n, id)
	}
	rec := page.Targets[0]
	return target.Target{
		ID:   rec.TargetChemblID,
		Name: rec.PrefName,
		Type: target.ParseType(rec.TargetType),
	}, nil
}

// RelationsFrom lists the outgoing relations of a target. The relationship
// labels are returned as-is; the graph engine normalizes them.
func (c *Client) RelationsFrom(ctx context.Context, id string) ([]graph.Relation, error) {
	ctx, span := c.tracer.Start(ctx, "chembl.RelationsFrom")
	defer span.End()

	var page relationPage
	if err := c.get(ctx, "/target_relation.json", id, &page); err != nil {
		return nil, err
	}
	relations := make([]graph.Relation, 0, len(page.TargetRelations))
	for _, rec := range page.TargetRelations {
		relations = append(relations, graph.Relation{
			Label:     rec.Relationship,
			RelatedID: rec.RelatedTargetChemblID,
		})
	}
	return relations, nil
}

func (c *Client) get(ctx context.Context, path, id string, out any) error {
	q := url.Values{"target_chembl_id": {id}}
	u := c.cfg.BaseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	c.logger.Debug("chembl request", "url", u)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", target.ErrNotFound, id)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %s", u, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decoding response: %w", u, err)
	}
	return nil
}
