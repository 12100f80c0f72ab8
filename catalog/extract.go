package catalog

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oascatalog/internal/httputil"
	"github.com/erraggy/oascatalog/internal/maputil"
	"github.com/erraggy/oascatalog/oaserrors"
)

// extraction carries the per-call state of one catalog extraction. The
// source document is only ever read; everything produced here is newly
// built.
type extraction struct {
	resolver *refResolver
	logger   Logger
	cat      *Catalog
}

func (x *extraction) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	x.logger.Warn(msg)
	x.cat.Warnings = append(x.cat.Warnings, msg)
}

// extractDocument walks every path and verb of the decoded document and
// fills the catalog, in declaration order when docNode is available.
// Any failure aborts with no partial catalog.
func (x *extraction) extractDocument(doc map[string]any, docNode *yaml.Node, baseURL string) error {
	pathsAny, ok := doc["paths"]
	if !ok {
		return &oaserrors.ExtractError{Message: "document has no paths object"}
	}
	paths, ok := pathsAny.(map[string]any)
	if !ok || len(paths) == 0 {
		return &oaserrors.ExtractError{Message: "document has an empty paths object"}
	}

	pathsNode := childNode(docNode, "paths")
	x.cat.Stats.PathCount = len(paths)
	x.logger.Info("extracting operations", "paths", len(paths))

	for _, pathTmpl := range orderedKeys(pathsNode, paths) {
		pathItem, ok := paths[pathTmpl].(map[string]any)
		if !ok {
			return &oaserrors.ExtractError{Path: pathTmpl, Message: "path item is not an object"}
		}
		itemNode := childNode(pathsNode, pathTmpl)

		// Path-level parameters apply to every operation beneath.
		pathParams, _ := pathItem["parameters"].([]any)

		for _, verb := range orderedKeys(itemNode, pathItem) {
			if httputil.NonOperationPathKeys[verb] || httputil.IsExtensionKey(verb) {
				continue
			}
			opData, ok := pathItem[verb].(map[string]any)
			if !ok {
				return &oaserrors.ExtractError{Path: pathTmpl, Method: verb, Message: "operation is not an object"}
			}

			method, skipped, err := x.extractMethod(verb, opData, childNode(itemNode, verb), pathTmpl, pathParams, baseURL)
			if err != nil {
				return err
			}
			if skipped {
				continue
			}
			x.cat.Methods = append(x.cat.Methods, method)
		}
	}

	x.cat.Stats.OperationCount = len(x.cat.Methods)
	x.cat.Stats.RefResolutions = x.resolver.resolutions
	return nil
}

// extractMethod builds one Method. The skipped return is true for
// deprecated operations, which are omitted silently.
func (x *extraction) extractMethod(verb string, opData map[string]any, opNode *yaml.Node, pathTmpl string, pathParams []any, baseURL string) (Method, bool, error) {
	op, err := ParseOperation(verb)
	if err != nil {
		return Method{}, false, &oaserrors.ExtractError{Path: pathTmpl, Cause: err}
	}

	if mapGetBool(opData, "deprecated") {
		x.logger.Debug("skipping deprecated operation", "path", pathTmpl, "verb", verb)
		x.cat.Stats.DeprecatedSkipped++
		return Method{}, true, nil
	}

	method := Method{
		URL:           baseURL + pathTmpl,
		Path:          pathTmpl,
		Operation:     op,
		Summary:       mapGetString(opData, "summary"),
		Description:   mapGetString(opData, "description"),
		InputFormats:  mapGetStringSlice(opData, "consumes"),
		OutputFormats: mapGetStringSlice(opData, "produces"),
	}

	// Parameters: path-level entries first, then the operation's own.
	opParams, _ := opData["parameters"].([]any)
	if len(pathParams)+len(opParams) > 0 {
		merged := make([]any, 0, len(pathParams)+len(opParams))
		merged = append(merged, pathParams...)
		merged = append(merged, opParams...)

		params, err := x.normalizeParameters(merged, pathTmpl, verb)
		if err != nil {
			return Method{}, false, err
		}
		method.Parameters = params
		x.cat.Stats.ParameterCount += len(params)
	}

	if body := mapGetMap(opData, "requestBody"); body != nil {
		rb, err := x.normalizeRequestBody(body, pathTmpl, verb)
		if err != nil {
			return Method{}, false, err
		}
		method.RequestBody = rb

		// OAS 3.x declares media types as content keys instead of consumes.
		if method.InputFormats == nil {
			if content := mapGetMap(body, "content"); content != nil {
				method.InputFormats = maputil.SortedKeys(content)
			}
		}
	}

	if respRaw := mapGetMap(opData, "responses"); respRaw != nil {
		responses, err := x.normalizeResponses(respRaw, childNode(opNode, "responses"), pathTmpl, verb)
		if err != nil {
			return Method{}, false, err
		}
		if len(responses) > 0 {
			method.Responses = responses
			x.cat.Stats.ResponseCount += len(responses)
		}
		if method.OutputFormats == nil {
			method.OutputFormats = responseMediaTypes(respRaw)
		}
	}

	return method, false, nil
}

// responseMediaTypes collects the union of content media types declared
// across all response entries, ascending.
func responseMediaTypes(responses map[string]any) []string {
	set := make(map[string]bool)
	for _, entry := range responses {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		for mt := range mapGetMap(obj, "content") {
			set[mt] = true
		}
	}
	if len(set) == 0 {
		return nil
	}
	return maputil.SortedKeys(set)
}
