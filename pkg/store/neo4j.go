package store

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/graphlift/graphlift/pkg/errors"
	"github.com/graphlift/graphlift/pkg/graph"
)

// Neo4jPublisher mirrors converted graphs into Neo4j so they can be
// queried with Cypher. Only the structural skeleton is published: node
// id, title, and type, plus typed relationships. Section detail stays
// in the document store.
type Neo4jPublisher struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewNeo4jPublisher connects to Neo4j and verifies connectivity before
// returning.
func NewNeo4jPublisher(ctx context.Context, uri, username, password, database string) (*Neo4jPublisher, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "create neo4j driver")
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "verify neo4j connectivity")
	}
	return &Neo4jPublisher{driver: driver, database: database}, nil
}

// Publish writes g's nodes and edges under the given graph id.
// Publishing the same id twice is idempotent: nodes are merged by
// (graphId, id) and relationships by endpoint pair and type.
func (p *Neo4jPublisher) Publish(ctx context.Context, id string, g *graph.Graph) error {
	nodes := make([]map[string]any, len(g.Nodes))
	for i, n := range g.Nodes {
		nodes[i] = map[string]any{
			"id":    n.ID,
			"title": n.Title,
			"type":  string(n.Type),
		}
	}
	if err := p.run(ctx, `
		UNWIND $nodes AS n
		MERGE (e:Entity {graphId: $graphId, id: n.id})
		SET e.title = n.title, e.type = n.type, e.ecosystem = $ecosystem
	`, map[string]any{
		"graphId":   id,
		"ecosystem": g.Meta.Ecosystem,
		"nodes":     nodes,
	}); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "publish nodes for graph %s", id)
	}

	edges := make([]map[string]any, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = map[string]any{
			"source": e.Source,
			"target": e.Target,
			"type":   string(e.Type),
		}
	}
	if err := p.run(ctx, `
		UNWIND $edges AS r
		MATCH (s:Entity {graphId: $graphId, id: r.source})
		MATCH (t:Entity {graphId: $graphId, id: r.target})
		MERGE (s)-[rel:RELATES {type: r.type}]->(t)
	`, map[string]any{
		"graphId": id,
		"edges":   edges,
	}); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "publish edges for graph %s", id)
	}
	return nil
}

// Remove deletes everything published under the given graph id.
func (p *Neo4jPublisher) Remove(ctx context.Context, id string) error {
	err := p.run(ctx, `
		MATCH (e:Entity {graphId: $graphId})
		DETACH DELETE e
	`, map[string]any{"graphId": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "remove graph %s", id)
	}
	return nil
}

// run executes one Cypher statement with automatic session handling.
func (p *Neo4jPublisher) run(ctx context.Context, query string, params map[string]any) error {
	_, err := neo4j.ExecuteQuery(
		ctx,
		p.driver,
		query,
		params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(p.database),
	)
	return err
}

// Close releases the driver.
func (p *Neo4jPublisher) Close(ctx context.Context) error {
	return p.driver.Close(ctx)
}
