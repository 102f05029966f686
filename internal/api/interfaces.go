package api

import "github.com/caseboard/caseboard/internal/domain"

// Handler dependencies are the canonical domain interfaces. The aliases keep
// handler constructors readable without re-declaring method sets.
type (
	// OntologyRepository defines type vocabulary operations used by the
	// ontology handlers.
	OntologyRepository = domain.OntologyService

	// EntityRepository defines entity operations used by EntityHandler.
	EntityRepository = domain.EntityService

	// RelationshipRepository defines relationship operations used by
	// RelationshipHandler.
	RelationshipRepository = domain.RelationshipService

	// GraphRepository defines exploration and stats operations used by
	// GraphHandler.
	GraphRepository = domain.GraphService
)
