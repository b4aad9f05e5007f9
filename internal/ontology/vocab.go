package ontology

// W3C and OBO vocabulary IRIs read by the resolvers and catalogs.
const (
	RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	RDFSLabel         = "http://www.w3.org/2000/01/rdf-schema#label"
	RDFSComment       = "http://www.w3.org/2000/01/rdf-schema#comment"
	RDFSSubClassOf    = "http://www.w3.org/2000/01/rdf-schema#subClassOf"
	RDFSSubPropertyOf = "http://www.w3.org/2000/01/rdf-schema#subPropertyOf"
	RDFSDomain        = "http://www.w3.org/2000/01/rdf-schema#domain"
	RDFSRange         = "http://www.w3.org/2000/01/rdf-schema#range"

	OWLClass            = "http://www.w3.org/2002/07/owl#Class"
	OWLObjectProperty   = "http://www.w3.org/2002/07/owl#ObjectProperty"
	OWLDatatypeProperty = "http://www.w3.org/2002/07/owl#DatatypeProperty"
	OWLEquivalentClass  = "http://www.w3.org/2002/07/owl#equivalentClass"
	OWLDisjointWith     = "http://www.w3.org/2002/07/owl#disjointWith"
	OWLInverseOf        = "http://www.w3.org/2002/07/owl#inverseOf"

	// IAODefinition is the OBO "definition" annotation used by BFO and CCO.
	IAODefinition = "http://purl.obolibrary.org/obo/IAO_0000115"

	SKOSDefinition = "http://www.w3.org/2004/02/skos/core#definition"
	DCDescription  = "http://purl.org/dc/terms/description"
)

// definitionPredicates is the lookup order used by ResolveDefinition.
var definitionPredicates = []string{
	IAODefinition,
	SKOSDefinition,
	RDFSComment,
	DCDescription,
}
