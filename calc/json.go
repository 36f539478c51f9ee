package calc

import "encoding/json"

type jsonNode struct {
	Kind  string    `json:"kind"`
	Value *int64    `json:"value,omitempty"`
	Op    string    `json:"op,omitempty"`
	Left  *jsonNode `json:"left,omitempty"`
	Right *jsonNode `json:"right,omitempty"`
	Inner *jsonNode `json:"inner,omitempty"`
}

// MarshalExpr encodes an expression tree as JSON.
func MarshalExpr(e Expr) ([]byte, error) {
	return json.Marshal(toJSON(e))
}

func toJSON(e Expr) *jsonNode {
	switch node := e.(type) {
	case Number:
		v := node.Value
		return &jsonNode{Kind: "number", Value: &v}
	case Binary:
		return &jsonNode{
			Kind:  "binary",
			Op:    opText(node.Op),
			Left:  toJSON(node.Left),
			Right: toJSON(node.Right),
		}
	case Paren:
		return &jsonNode{Kind: "paren", Inner: toJSON(node.Inner)}
	}
	return &jsonNode{Kind: "unknown"}
}
