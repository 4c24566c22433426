package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/katalvlaran/hn2v/graph"
)

// Config holds the connection and mapping parameters for Importer.
type Config struct {
	URI      string
	Username string
	Password string
	Database string

	// NodeKeyProperty names the node property used as its label in the
	// resulting edge list (e.g. "id" or "name"). Falls back to the node's
	// element id when the node lacks this property.
	NodeKeyProperty string

	// WeightProperty names the relationship property to use as edge
	// weight. An empty value, or a relationship missing it, defaults to 0
	// (graph.Build's "not provided" convention).
	WeightProperty string
}

// Importer pulls relationships out of a Neo4j database and converts them
// into the edge-list contract package graph.Build consumes.
type Importer struct {
	driver neo4j.DriverWithContext
	cfg    Config
}

// NewImporter opens a driver connection and verifies connectivity.
func NewImporter(ctx context.Context, cfg Config) (*Importer, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("neo4j: create driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4j: connect: %w", err)
	}

	if cfg.Database == "" {
		cfg.Database = "neo4j"
	}
	return &Importer{driver: driver, cfg: cfg}, nil
}

// Close releases the underlying driver connection.
func (im *Importer) Close(ctx context.Context) error {
	return im.driver.Close(ctx)
}

// FetchEdges runs a MATCH over relationshipType (every relationship type
// when empty) and returns the resulting edges plus a label->type map
// derived from each endpoint's first Neo4j label, for graph.WithTypeFunc.
func (im *Importer) FetchEdges(ctx context.Context, relationshipType string) ([]graph.RawEdge, map[string]string, error) {
	session := im.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: im.cfg.Database})
	defer func() { _ = session.Close(ctx) }()

	query := "MATCH (a)-[r]->(b) RETURN a, b, r"
	if relationshipType != "" {
		query = fmt.Sprintf("MATCH (a)-[r:`%s`]->(b) RETURN a, b, r", relationshipType)
	}

	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("neo4j: run query: %w", err)
	}

	var edges []graph.RawEdge
	types := make(map[string]string)

	for result.Next(ctx) {
		record := result.Record()
		a, ok := record.Values[0].(neo4j.Node)
		if !ok {
			continue
		}
		b, ok := record.Values[1].(neo4j.Node)
		if !ok {
			continue
		}
		r, ok := record.Values[2].(neo4j.Relationship)
		if !ok {
			continue
		}

		fromKey := im.nodeKey(a)
		toKey := im.nodeKey(b)

		if len(a.Labels) > 0 {
			types[fromKey] = a.Labels[0]
		}
		if len(b.Labels) > 0 {
			types[toKey] = b.Labels[0]
		}

		edges = append(edges, graph.RawEdge{
			From:   fromKey,
			To:     toKey,
			Weight: im.relationshipWeight(r),
		})
	}
	if err := result.Err(); err != nil {
		return nil, nil, fmt.Errorf("neo4j: iterate results: %w", err)
	}

	return edges, types, nil
}

func (im *Importer) nodeKey(n neo4j.Node) string {
	key := im.cfg.NodeKeyProperty
	if key == "" {
		return n.ElementId
	}
	v, ok := n.Props[key]
	if !ok {
		return n.ElementId
	}
	return fmt.Sprintf("%v", v)
}

func (im *Importer) relationshipWeight(r neo4j.Relationship) float64 {
	if im.cfg.WeightProperty == "" {
		return 0
	}
	v, ok := r.Props[im.cfg.WeightProperty]
	if !ok {
		return 0
	}
	switch w := v.(type) {
	case float64:
		return w
	case int64:
		return float64(w)
	default:
		return 0
	}
}
