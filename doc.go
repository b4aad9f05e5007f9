// Package ontomapper serves an OWL ontology to a CSV mapping editor.
//
// # Overview
//
// Ontomapper loads the Basic Formal Ontology and the Common Core Ontologies
// (or any Turtle, N-Triples or JSON-LD sources) into an in-memory triple
// store and answers the lookups a graph editor needs while a user maps CSV
// headers onto ontology classes. The edited graph can then be rendered as
// R2RML, RDF/Turtle or a Mermaid flowchart.
//
//	┌─────────────────┐
//	│  Graph editor   │
//	│  (csvui/dist)   │
//	└────────┬────────┘
//	         │ JSON
//	┌────────▼────────┐       ┌─────────────────┐
//	│  API Server     │──────►│  Serializers    │
//	│  (Echo REST)    │       │  R2RML/RDF/MMD  │
//	└────────┬────────┘       └─────────────────┘
//	         │
//	┌────────▼────────┐
//	│ Ontology store  │
//	│ (knakk/rdf,     │
//	│  json-gold)     │
//	└─────────────────┘
//
// # Usage
//
// Start the API server:
//
//	ontomapper server --config configs/config.yaml
//
// Query the ontology without a server:
//
//	ontomapper query classes
//	ontomapper query class http://purl.obolibrary.org/obo/BFO_0000040
//	ontomapper query search person --format json
//
// Render a saved graph:
//
//	ontomapper generate r2rml mapping.json > mapping.ttl
//
// # Configuration
//
// Configuration can be provided via:
//   - YAML file (config.yaml, configs/config.yaml)
//   - Environment variables (OM_ prefix)
//   - .env file
//
// Example configuration:
//
//	server:
//	  port: 5055
//	ontology:
//	  sources:
//	    - bfo-core.ttl
//	    - CommonCoreOntologiesMerged.ttl
//	logging:
//	  level: info
//	  format: json
//
// # API Endpoints
//
// Ontology:
//   - GET  /classes              - Classes with their first parent
//   - GET  /class_details        - Class record (?uri=)
//   - GET  /object_properties    - Object properties with their first parent
//   - GET  /data_properties      - Data properties with domain and range
//   - GET  /property_details     - Property record (?uri=)
//   - GET  /ontology_search      - Label search (?term=)
//   - POST /validate_property    - Property suggestion check
//
// Generators:
//   - POST /generate_r2rml       - R2RML mapping (text/turtle)
//   - POST /generate_rdf         - RDF resources (text/turtle)
//   - POST /generate_mermaid     - {mermaid, success}
//
// Other:
//   - POST /upload               - Stage a file (multipart "file")
//   - GET  /health               - Health and triple count
//   - GET  /metrics              - Prometheus metrics
//
// # Development
//
// Run tests:
//
//	go test ./...
//
// Build the binary:
//
//	go build -o ontomapper ./cmd/ontomapper
package ontomapper
