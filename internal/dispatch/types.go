// Package dispatch routes incoming tool invocations: it looks the tool up
// in a flat table, materializes typed arguments, invokes the bound
// operation, and folds the outcome into a response envelope. It is the sole
// point where backend errors become ToolResponse values.
package dispatch

import "context"

// Product tags the subsystem a tool belongs to.
type Product string

const (
	ProductJira       Product = "jira"
	ProductConfluence Product = "confluence"
	ProductBitbucket  Product = "bitbucket"
	ProductLearning   Product = "learning"
	ProductSystem     Product = "system"
)

// ToolResponse is the envelope written back over the wire. An error
// response never carries content; a success response never carries an
// error message.
type ToolResponse struct {
	Product Product `json:"product"`
	Tool    string  `json:"tool"`
	Success bool    `json:"success"`
	Content string  `json:"content"`
	Error   string  `json:"error,omitempty"`
}

func successResponse(product Product, tool, content string) ToolResponse {
	return ToolResponse{Product: product, Tool: tool, Success: true, Content: content}
}

func errorResponse(product Product, tool, message string) ToolResponse {
	return ToolResponse{Product: product, Tool: tool, Success: false, Error: message}
}

// toolHandler executes one tool over already-validated string arguments and
// returns the formatted content.
type toolHandler func(ctx context.Context, args map[string]string) (string, error)

// toolSpec is one row of the dispatch table.
type toolSpec struct {
	Name        string
	Product     Product
	Description string
	// Required argument names; a blank value is a dispatch-level error.
	Required []string
	// Numeric argument names; present values must parse as integers.
	Numeric []string
	Handler  toolHandler
}

// ToolInfo is the catalog view of a registered tool.
type ToolInfo struct {
	Name        string
	Product     Product
	Description string
	Required    []string
}
