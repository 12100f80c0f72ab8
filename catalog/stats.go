package catalog

// CatalogStats contains statistical information gathered while extracting a
// catalog. Counts reflect the produced catalog, not the raw document:
// deprecated operations are counted separately and contribute nothing else.
type CatalogStats struct {
	// PathCount is the number of path templates in the document.
	PathCount int `json:"pathCount"`
	// OperationCount is the number of Method entries produced.
	OperationCount int `json:"operationCount"`
	// ParameterCount is the total number of normalized parameters.
	ParameterCount int `json:"parameterCount"`
	// ResponseCount is the total number of normalized responses.
	ResponseCount int `json:"responseCount"`
	// DeprecatedSkipped is the number of operations omitted because they
	// were marked deprecated.
	DeprecatedSkipped int `json:"deprecatedSkipped"`
	// RefResolutions is the number of successful pointer lookups performed.
	RefResolutions int `json:"refResolutions"`
}
